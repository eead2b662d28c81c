package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/storage"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

const (
	defaultTransferLimit = 50
	maxTransferLimit     = 500
	maxMemoLen           = 128
)

var (
	ErrFaucetDisabled = errors.New("faucet is disabled")
	ErrFaucetLimit    = errors.New("amount exceeds the faucet limit")
)

var _ protoconnect.LedgerServiceHandler = (*LedgerService)(nil)

// Faucet controls the development funding endpoint.
type Faucet struct {
	Enabled bool
	// Max caps a single Fund call in smallest units. Zero means no cap.
	Max uint64
}

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	protoconnect.UnimplementedLedgerServiceHandler
	runtime
	faucet Faucet
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, clk clock.Clock, m *metrics.Metrics, faucet Faucet) *LedgerService {
	return &LedgerService{runtime: runtime{store: store, clock: clk, metrics: m}, faucet: faucet}
}

// addressOrCaller defaults an empty address to the caller's own.
func addressOrCaller(ctx context.Context, address string) (string, error) {
	if address == "" {
		return caller(ctx)
	}
	if err := requireIdentity("address", address); err != nil {
		return "", err
	}
	return address, nil
}

// GetBalance returns the balance held at an address.
func (s *LedgerService) GetBalance(ctx context.Context, req *connect.Request[pb.GetBalanceRequest]) (*connect.Response[pb.GetBalanceResponse], error) {
	address, err := addressOrCaller(ctx, req.Msg.Address)
	if err != nil {
		return nil, err
	}
	slog.Info("GetBalance request received", "address", address)

	balance, err := s.store.Balance(ctx, address)
	if err != nil {
		return nil, failed("GetBalance failed", err, "address", address)
	}

	return connect.NewResponse(&pb.GetBalanceResponse{
		Address:    address,
		Balance:    balance,
		BalanceSol: calculator.FormatSOL(balance),
	}), nil
}

// ListTransfers returns the most recent journal entries touching an address.
func (s *LedgerService) ListTransfers(ctx context.Context, req *connect.Request[pb.ListTransfersRequest]) (*connect.Response[pb.ListTransfersResponse], error) {
	address, err := addressOrCaller(ctx, req.Msg.Address)
	if err != nil {
		return nil, err
	}
	limit := int(req.Msg.Limit)
	switch {
	case limit < 0:
		return nil, invalidArgument("limit must not be negative")
	case limit == 0:
		limit = defaultTransferLimit
	case limit > maxTransferLimit:
		limit = maxTransferLimit
	}
	slog.Info("ListTransfers request received", "address", address, "limit", limit)

	transfers, err := s.store.ListTransfers(ctx, address, limit)
	if err != nil {
		return nil, failed("ListTransfers failed", err, "address", address)
	}

	out := make([]*pb.Transfer, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, toTransfer(t))
	}

	slog.Info("ListTransfers successful", "address", address, "count", len(out))
	return connect.NewResponse(&pb.ListTransfersResponse{Transfers: out}), nil
}

// Send pays recipient from the caller's balance. The journal memo is
// "ledger.send", followed by the caller's memo when one is given.
func (s *LedgerService) Send(ctx context.Context, req *connect.Request[pb.SendRequest]) (*connect.Response[pb.SendResponse], error) {
	from, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireIdentity("recipient", req.Msg.Recipient); err != nil {
		return nil, err
	}
	if len(req.Msg.Memo) > maxMemoLen {
		return nil, invalidArgument("memo must be %d bytes or less", maxMemoLen)
	}
	to, amount := req.Msg.Recipient, req.Msg.Amount
	slog.Info("Send request received", "from", from, "to", to, "amount", amount)

	var (
		memo    string
		balance uint64
	)
	err = s.execute(ctx, "ledger", "send", func(ctx context.Context, tx storage.Tx) error {
		memo = ledger.MemoFrom(ctx)
		if req.Msg.Memo != "" {
			memo += ": " + req.Msg.Memo
			ctx = ledger.WithMemo(ctx, memo)
		}
		if err := tx.Transfer(ctx, from, to, amount); err != nil {
			return err
		}
		balance, err = tx.Balance(ctx, from)
		return err
	})
	if err != nil {
		return nil, failed("Send failed", err, "from", from, "to", to)
	}

	slog.Info("Send successful",
		"from", from,
		"to", to,
		"amount_sol", calculator.FormatSOL(amount),
		"balance_sol", calculator.FormatSOL(balance),
	)
	return connect.NewResponse(&pb.SendResponse{
		Transfer: &pb.Transfer{
			From:      from,
			To:        to,
			Amount:    amount,
			AmountSol: calculator.FormatSOL(amount),
			Memo:      memo,
			CreatedAt: s.now(),
		},
		Balance:    balance,
		BalanceSol: calculator.FormatSOL(balance),
	}), nil
}

// Fund mints new value at an address. It is only served when the faucet is
// enabled.
func (s *LedgerService) Fund(ctx context.Context, req *connect.Request[pb.FundRequest]) (*connect.Response[pb.FundResponse], error) {
	address, err := addressOrCaller(ctx, req.Msg.Address)
	if err != nil {
		return nil, err
	}
	slog.Info("Fund request received", "address", address, "amount", req.Msg.Amount)

	if !s.faucet.Enabled {
		slog.Warn("Fund rejected", "address", address, "error", ErrFaucetDisabled)
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrFaucetDisabled)
	}
	if req.Msg.Amount == 0 {
		return nil, invalidArgument("amount must be positive")
	}
	if s.faucet.Max > 0 && req.Msg.Amount > s.faucet.Max {
		slog.Warn("Fund rejected", "address", address, "error", ErrFaucetLimit, "max", s.faucet.Max)
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrFaucetLimit)
	}

	var balance uint64
	err = s.execute(ctx, "ledger", "fund", func(ctx context.Context, tx storage.Tx) error {
		if err := tx.Mint(ctx, address, req.Msg.Amount); err != nil {
			return err
		}
		balance, err = tx.Balance(ctx, address)
		return err
	})
	if err != nil {
		return nil, failed("Fund failed", err, "address", address)
	}

	slog.Info("Fund successful",
		"address", address,
		"amount_sol", calculator.FormatSOL(req.Msg.Amount),
		"balance_sol", calculator.FormatSOL(balance),
	)
	return connect.NewResponse(&pb.FundResponse{
		Address:    address,
		Balance:    balance,
		BalanceSol: calculator.FormatSOL(balance),
	}), nil
}
