package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/fault"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/squad"
	"github.com/mmynk/rally/internal/storage"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

var _ protoconnect.SquadServiceHandler = (*SquadService)(nil)

// SquadService implements the Connect SquadService.
type SquadService struct {
	protoconnect.UnimplementedSquadServiceHandler
	runtime
}

// NewSquadService creates a new SquadService with the given storage backend.
func NewSquadService(store storage.Store, clk clock.Clock, m *metrics.Metrics) *SquadService {
	return &SquadService{runtime: runtime{store: store, clock: clk, metrics: m}}
}

// failed logs a rejected or failed request and converts err for the wire.
func failed(msg string, err error, args ...any) error {
	args = append(args, "error", err)
	var fe *fault.Error
	if errors.As(err, &fe) {
		slog.Warn(msg, append(args, "code", fe.Code)...)
	} else {
		slog.Error(msg, args...)
	}
	return toConnectError(err)
}

// updateSquad applies fn to the squad at address inside one transaction and
// returns the squad as committed.
func (s *SquadService) updateSquad(ctx context.Context, op, address string, fn func(ctx context.Context, tx storage.Tx, sq *models.Squad) error) (*pb.Squad, error) {
	var out *pb.Squad
	err := s.execute(ctx, "squad", op, func(ctx context.Context, tx storage.Tx) error {
		sq, err := tx.GetSquad(ctx, address)
		if err != nil {
			return err
		}
		if err := fn(ctx, tx, sq); err != nil {
			return err
		}
		if err := tx.UpdateSquad(ctx, sq); err != nil {
			return err
		}
		balance, err := tx.Balance(ctx, sq.Vault)
		if err != nil {
			return err
		}
		out = toSquad(sq, balance)
		return nil
	})
	return out, err
}

// InitializeSquad creates a squad with the caller as authority.
func (s *SquadService) InitializeSquad(ctx context.Context, req *connect.Request[pb.InitializeSquadRequest]) (*connect.Response[pb.InitializeSquadResponse], error) {
	slog.Info("InitializeSquad request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
		"spend_threshold", req.Msg.SpendThreshold,
	)

	authority, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range req.Msg.Members {
		if err := requireIdentity("member", m); err != nil {
			return nil, err
		}
	}

	now := s.now()
	var out *pb.Squad
	err = s.execute(ctx, "squad", "initialize", func(ctx context.Context, tx storage.Tx) error {
		sq, err := squad.Initialize(authority, req.Msg.Name, req.Msg.Members, req.Msg.SpendThreshold, now)
		if err != nil {
			return err
		}
		if err := tx.CreateSquad(ctx, sq); err != nil {
			return err
		}
		// The vault address is deterministic and may hold funds already.
		balance, err := tx.Balance(ctx, sq.Vault)
		if err != nil {
			return err
		}
		out = toSquad(sq, balance)
		return nil
	})
	if err != nil {
		return nil, failed("InitializeSquad failed", err, "authority", authority)
	}

	slog.Info("Squad initialized", "squad", out.Address, "authority", authority)
	return connect.NewResponse(&pb.InitializeSquadResponse{Squad: out}), nil
}

// AddMember adds a member. Only the authority may call it.
func (s *SquadService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	slog.Info("AddMember request received", "squad", req.Msg.Squad, "member", req.Msg.Member)

	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireIdentity("member", req.Msg.Member); err != nil {
		return nil, err
	}

	out, err := s.updateSquad(ctx, "add_member", req.Msg.Squad, func(_ context.Context, _ storage.Tx, sq *models.Squad) error {
		return squad.AddMember(sq, identity, req.Msg.Member)
	})
	if err != nil {
		return nil, failed("AddMember failed", err, "squad", req.Msg.Squad)
	}

	slog.Info("Member added", "squad", out.Address, "member", req.Msg.Member)
	return connect.NewResponse(&pb.AddMemberResponse{Squad: out}), nil
}

// RemoveMember removes a member. Only the authority may call it.
func (s *SquadService) RemoveMember(ctx context.Context, req *connect.Request[pb.RemoveMemberRequest]) (*connect.Response[pb.RemoveMemberResponse], error) {
	slog.Info("RemoveMember request received", "squad", req.Msg.Squad, "member", req.Msg.Member)

	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.updateSquad(ctx, "remove_member", req.Msg.Squad, func(_ context.Context, _ storage.Tx, sq *models.Squad) error {
		return squad.RemoveMember(sq, identity, req.Msg.Member)
	})
	if err != nil {
		return nil, failed("RemoveMember failed", err, "squad", req.Msg.Squad)
	}

	slog.Info("Member removed", "squad", out.Address, "member", req.Msg.Member)
	return connect.NewResponse(&pb.RemoveMemberResponse{Squad: out}), nil
}

// Deposit moves value from the caller into the squad vault.
func (s *SquadService) Deposit(ctx context.Context, req *connect.Request[pb.DepositRequest]) (*connect.Response[pb.DepositResponse], error) {
	slog.Info("Deposit request received", "squad", req.Msg.Squad, "amount", req.Msg.Amount)

	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.updateSquad(ctx, "deposit", req.Msg.Squad, func(ctx context.Context, tx storage.Tx, sq *models.Squad) error {
		return squad.Deposit(ctx, tx, sq, identity, req.Msg.Amount)
	})
	if err != nil {
		return nil, failed("Deposit failed", err, "squad", req.Msg.Squad, "member", identity)
	}

	slog.Info("Deposit successful",
		"squad", out.Address,
		"amount_sol", calculator.FormatSOL(req.Msg.Amount),
		"vault_balance_sol", out.VaultBalanceSol,
	)
	return connect.NewResponse(&pb.DepositResponse{Squad: out}), nil
}

// Withdraw spends from the squad vault.
func (s *SquadService) Withdraw(ctx context.Context, req *connect.Request[pb.WithdrawRequest]) (*connect.Response[pb.WithdrawResponse], error) {
	slog.Info("Withdraw request received",
		"squad", req.Msg.Squad,
		"recipient", req.Msg.Recipient,
		"amount", req.Msg.Amount,
		"vote_passed", req.Msg.VotePassed,
	)

	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireIdentity("recipient", req.Msg.Recipient); err != nil {
		return nil, err
	}

	out, err := s.updateSquad(ctx, "withdraw", req.Msg.Squad, func(ctx context.Context, tx storage.Tx, sq *models.Squad) error {
		return squad.Withdraw(ctx, tx, sq, identity, req.Msg.Recipient, req.Msg.Amount, req.Msg.VotePassed)
	})
	if err != nil {
		return nil, failed("Withdraw failed", err, "squad", req.Msg.Squad, "member", identity)
	}

	slog.Info("Withdraw successful",
		"squad", out.Address,
		"recipient", req.Msg.Recipient,
		"amount_sol", calculator.FormatSOL(req.Msg.Amount),
		"vault_balance_sol", out.VaultBalanceSol,
	)
	return connect.NewResponse(&pb.WithdrawResponse{Squad: out}), nil
}

// GetSquad retrieves a squad by address.
func (s *SquadService) GetSquad(ctx context.Context, req *connect.Request[pb.GetSquadRequest]) (*connect.Response[pb.GetSquadResponse], error) {
	slog.Info("GetSquad request received", "squad", req.Msg.Squad)

	sq, err := s.store.GetSquad(ctx, req.Msg.Squad)
	if err != nil {
		return nil, failed("GetSquad failed", err, "squad", req.Msg.Squad)
	}
	balance, err := s.store.Balance(ctx, sq.Vault)
	if err != nil {
		return nil, failed("GetSquad failed", err, "squad", req.Msg.Squad)
	}

	return connect.NewResponse(&pb.GetSquadResponse{Squad: toSquad(sq, balance)}), nil
}

// ListSquads lists the squads a member belongs to, the caller by default.
func (s *SquadService) ListSquads(ctx context.Context, req *connect.Request[pb.ListSquadsRequest]) (*connect.Response[pb.ListSquadsResponse], error) {
	member := req.Msg.Member
	if member == "" {
		identity, err := caller(ctx)
		if err != nil {
			return nil, err
		}
		member = identity
	}
	slog.Info("ListSquads request received", "member", member)

	squads, err := s.store.ListSquadsByMember(ctx, member)
	if err != nil {
		return nil, failed("ListSquads failed", err, "member", member)
	}

	out := make([]*pb.Squad, 0, len(squads))
	for _, sq := range squads {
		balance, err := s.store.Balance(ctx, sq.Vault)
		if err != nil {
			return nil, failed("ListSquads failed", err, "member", member)
		}
		out = append(out, toSquad(sq, balance))
	}

	slog.Info("ListSquads successful", "member", member, "count", len(out))
	return connect.NewResponse(&pb.ListSquadsResponse{Squads: out}), nil
}

// GetVaultBalance returns the balance of a squad's vault.
func (s *SquadService) GetVaultBalance(ctx context.Context, req *connect.Request[pb.GetVaultBalanceRequest]) (*connect.Response[pb.GetVaultBalanceResponse], error) {
	slog.Info("GetVaultBalance request received", "squad", req.Msg.Squad)

	sq, err := s.store.GetSquad(ctx, req.Msg.Squad)
	if err != nil {
		return nil, failed("GetVaultBalance failed", err, "squad", req.Msg.Squad)
	}
	balance, err := s.store.Balance(ctx, sq.Vault)
	if err != nil {
		return nil, failed("GetVaultBalance failed", err, "squad", req.Msg.Squad)
	}

	return connect.NewResponse(&pb.GetVaultBalanceResponse{
		Vault:      sq.Vault,
		Balance:    balance,
		BalanceSol: calculator.FormatSOL(balance),
	}), nil
}
