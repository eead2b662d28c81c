package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/split"
	"github.com/mmynk/rally/internal/storage"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

var _ protoconnect.SplitServiceHandler = (*SplitService)(nil)

// SplitService implements the Connect SplitService
type SplitService struct {
	protoconnect.UnimplementedSplitServiceHandler
	runtime
}

// NewSplitService creates a new SplitService with the given storage backend.
func NewSplitService(store storage.Store, clk clock.Clock, m *metrics.Metrics) *SplitService {
	return &SplitService{runtime: runtime{store: store, clock: clk, metrics: m}}
}

func toCalculatorItems(items []*pb.Item) []calculator.Item {
	out := make([]calculator.Item, len(items))
	for i, item := range items {
		slog.Debug("Processing item",
			"index", i+1,
			"description", item.Description,
			"amount", item.Amount,
			"participants", item.ParticipantIds,
		)
		out[i] = calculator.Item{
			Description: item.Description,
			Amount:      item.Amount,
			AssignedTo:  item.ParticipantIds,
		}
	}
	return out
}

// CalculateSplit handles bill split calculation
func (s *SplitService) CalculateSplit(ctx context.Context, req *connect.Request[pb.CalculateSplitRequest]) (*connect.Response[pb.CalculateSplitResponse], error) {
	shares, err := calculator.CalculateSplit(toCalculatorItems(req.Msg.Items), req.Msg.Total, req.Msg.ParticipantIds)
	if err != nil {
		return nil, failed("CalculateSplit failed", err)
	}

	resp := &pb.CalculateSplitResponse{Splits: make([]*pb.PersonSplit, 0, len(shares))}
	for _, share := range shares {
		slog.Debug("Person split",
			"person", share.Participant,
			"subtotal", share.Subtotal,
			"extra", share.Extra,
			"total", share.Total,
		)
		resp.Splits = append(resp.Splits, &pb.PersonSplit{
			Participant: share.Participant,
			Subtotal:    share.Subtotal,
			Extra:       share.Extra,
			Total:       share.Total,
			TotalSol:    calculator.FormatSOL(share.Total),
		})
		// Shares sum to the request total, so neither sum can overflow.
		resp.Subtotal += share.Subtotal
		resp.Extra += share.Extra
	}
	return connect.NewResponse(resp), nil
}

// CreateSplit records an expense the caller paid. Shares are taken as given,
// or computed from items and participant_ids.
func (s *SplitService) CreateSplit(ctx context.Context, req *connect.Request[pb.CreateSplitRequest]) (*connect.Response[pb.CreateSplitResponse], error) {
	creator, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateSplit request received",
		"creator", creator,
		"squad", req.Msg.Squad,
		"total_amount", req.Msg.TotalAmount,
		"shares", len(req.Msg.Shares),
		"items", len(req.Msg.Items),
	)

	var shares []split.Share
	switch {
	case len(req.Msg.Shares) > 0 && (len(req.Msg.Items) > 0 || len(req.Msg.ParticipantIds) > 0):
		return nil, invalidArgument("give either shares or items with participant_ids, not both")
	case len(req.Msg.Shares) > 0:
		shares = make([]split.Share, 0, len(req.Msg.Shares))
		for _, sh := range req.Msg.Shares {
			if err := requireIdentity("debtor", sh.Debtor); err != nil {
				return nil, err
			}
			shares = append(shares, split.Share{Debtor: sh.Debtor, Amount: sh.Amount})
		}
	case len(req.Msg.ParticipantIds) > 0:
		calculated, err := calculator.CalculateSplit(toCalculatorItems(req.Msg.Items), req.Msg.TotalAmount, req.Msg.ParticipantIds)
		if err != nil {
			return nil, failed("CreateSplit failed", err, "creator", creator)
		}
		shares = split.FromShares(calculated)
	}

	params := split.Params{
		Creator:     creator,
		Description: req.Msg.Description,
		TotalAmount: req.Msg.TotalAmount,
		Shares:      shares,
	}

	var out *pb.Split
	err = s.execute(ctx, "split", "create", func(ctx context.Context, tx storage.Tx) error {
		var sq *models.Squad
		if req.Msg.Squad != "" {
			var err error
			if sq, err = tx.GetSquad(ctx, req.Msg.Squad); err != nil {
				return err
			}
		}
		sp, err := split.Create(params, sq, s.now())
		if err != nil {
			return err
		}
		if err := tx.CreateSplit(ctx, sp); err != nil {
			return err
		}
		out = toSplit(sp)
		return nil
	})
	if err != nil {
		return nil, failed("CreateSplit failed", err, "creator", creator)
	}

	slog.Info("CreateSplit successful",
		"split_id", out.Id,
		"creator", creator,
		"total_sol", out.TotalAmountSol,
		"debtors", len(out.Items),
	)
	return connect.NewResponse(&pb.CreateSplitResponse{Split: out}), nil
}

// SettleSplit pays the caller's share of a split to its creator.
func (s *SplitService) SettleSplit(ctx context.Context, req *connect.Request[pb.SettleSplitRequest]) (*connect.Response[pb.SettleSplitResponse], error) {
	debtor, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireIdentity("split_id", req.Msg.SplitId); err != nil {
		return nil, err
	}
	slog.Info("SettleSplit request received", "split_id", req.Msg.SplitId, "debtor", debtor)

	var (
		out    *pb.Split
		amount uint64
	)
	err = s.execute(ctx, "split", "settle", func(ctx context.Context, tx storage.Tx) error {
		sp, err := tx.GetSplit(ctx, req.Msg.SplitId)
		if err != nil {
			return err
		}
		if amount, err = split.Settle(ctx, tx, sp, debtor, s.now()); err != nil {
			return err
		}
		if err := tx.UpdateSplit(ctx, sp); err != nil {
			return err
		}
		out = toSplit(sp)
		return nil
	})
	if err != nil {
		return nil, failed("SettleSplit failed", err, "split_id", req.Msg.SplitId, "debtor", debtor)
	}

	slog.Info("SettleSplit successful",
		"split_id", out.Id,
		"debtor", debtor,
		"amount_sol", calculator.FormatSOL(amount),
		"remaining_unsettled", out.RemainingUnsettled,
	)
	return connect.NewResponse(&pb.SettleSplitResponse{
		Split:              out,
		Amount:             amount,
		RemainingUnsettled: out.RemainingUnsettled,
	}), nil
}

// GetSplit retrieves a split by ID from storage.
func (s *SplitService) GetSplit(ctx context.Context, req *connect.Request[pb.GetSplitRequest]) (*connect.Response[pb.GetSplitResponse], error) {
	if err := requireIdentity("split_id", req.Msg.SplitId); err != nil {
		return nil, err
	}
	slog.Info("GetSplit request received", "split_id", req.Msg.SplitId)

	sp, err := s.store.GetSplit(ctx, req.Msg.SplitId)
	if err != nil {
		return nil, failed("GetSplit failed", err, "split_id", req.Msg.SplitId)
	}
	return connect.NewResponse(&pb.GetSplitResponse{Split: toSplit(sp)}), nil
}

// ListSplits lists the splits a party created or owes on, newest first.
func (s *SplitService) ListSplits(ctx context.Context, req *connect.Request[pb.ListSplitsRequest]) (*connect.Response[pb.ListSplitsResponse], error) {
	party := req.Msg.Party
	if party == "" {
		identity, err := caller(ctx)
		if err != nil {
			return nil, err
		}
		party = identity
	}
	slog.Info("ListSplits request received", "party", party)

	splits, err := s.store.ListSplitsByParty(ctx, party)
	if err != nil {
		return nil, failed("ListSplits failed", err, "party", party)
	}

	out := make([]*pb.Split, 0, len(splits))
	for _, sp := range splits {
		out = append(out, toSplit(sp))
	}

	slog.Info("ListSplits successful", "party", party, "count", len(out))
	return connect.NewResponse(&pb.ListSplitsResponse{Splits: out}), nil
}
