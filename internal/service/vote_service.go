package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/storage"
	"github.com/mmynk/rally/internal/vote"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

var _ protoconnect.VoteServiceHandler = (*VoteService)(nil)

// VoteService implements the Connect VoteService.
//
// Proposals are not linked to squad funds: executing one moves nothing, and
// the squad reference of a proposal is not checked on creation.
type VoteService struct {
	protoconnect.UnimplementedVoteServiceHandler
	runtime
}

// NewVoteService creates a new VoteService with the given storage backend.
func NewVoteService(store storage.Store, clk clock.Clock, m *metrics.Metrics) *VoteService {
	return &VoteService{runtime: runtime{store: store, clock: clk, metrics: m}}
}

// memberCount is the size of the squad a proposal names, or 0 when that
// squad does not exist.
func (s *VoteService) memberCount(ctx context.Context, squadAddress string) (uint32, error) {
	sq, err := s.store.GetSquad(ctx, squadAddress)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return uint32(len(sq.Members)), nil
}

// CreateProposal opens a proposal for a vote.
func (s *VoteService) CreateProposal(ctx context.Context, req *connect.Request[pb.CreateProposalRequest]) (*connect.Response[pb.CreateProposalResponse], error) {
	slog.Info("CreateProposal request received",
		"squad", req.Msg.Squad,
		"proposal_id", req.Msg.ProposalId,
		"amount", req.Msg.Amount,
		"voting_deadline", req.Msg.VotingDeadline,
	)

	proposer, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireIdentity("squad", req.Msg.Squad); err != nil {
		return nil, err
	}
	if err := requireIdentity("recipient", req.Msg.Recipient); err != nil {
		return nil, err
	}

	now := s.now()
	var out *pb.Proposal
	err = s.execute(ctx, "vote", "create_proposal", func(ctx context.Context, tx storage.Tx) error {
		p, err := vote.CreateProposal(vote.Params{
			Squad:          req.Msg.Squad,
			Proposer:       proposer,
			ProposalID:     req.Msg.ProposalId,
			Title:          req.Msg.Title,
			Description:    req.Msg.Description,
			Amount:         req.Msg.Amount,
			Recipient:      req.Msg.Recipient,
			VotingDeadline: req.Msg.VotingDeadline,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.CreateProposal(ctx, p); err != nil {
			return err
		}
		out = toProposal(p, 0, now)
		return nil
	})
	if err != nil {
		return nil, failed("CreateProposal failed", err, "squad", req.Msg.Squad, "proposer", proposer)
	}

	slog.Info("Proposal created", "proposal", out.Address, "squad", out.Squad, "proposer", proposer)
	return connect.NewResponse(&pb.CreateProposalResponse{Proposal: out}), nil
}

// updateProposal applies fn to the proposal at address inside one transaction.
func (s *VoteService) updateProposal(ctx context.Context, op, address string, now int64, totalMembers uint32, fn func(p *models.Proposal) error) (*pb.Proposal, error) {
	var out *pb.Proposal
	err := s.execute(ctx, "vote", op, func(ctx context.Context, tx storage.Tx) error {
		p, err := tx.GetProposal(ctx, address)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		if err := tx.UpdateProposal(ctx, p); err != nil {
			return err
		}
		out = toProposal(p, totalMembers, now)
		return nil
	})
	return out, err
}

// CastVote records the caller's ballot.
func (s *VoteService) CastVote(ctx context.Context, req *connect.Request[pb.CastVoteRequest]) (*connect.Response[pb.CastVoteResponse], error) {
	slog.Info("CastVote request received", "proposal", req.Msg.Proposal, "vote", req.Msg.Vote)

	voter, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out, err := s.updateProposal(ctx, "cast_vote", req.Msg.Proposal, now, 0, func(p *models.Proposal) error {
		return vote.CastVote(p, voter, req.Msg.Vote, now)
	})
	if err != nil {
		return nil, failed("CastVote failed", err, "proposal", req.Msg.Proposal, "voter", voter)
	}

	slog.Info("Vote cast", "proposal", out.Address, "yes", out.YesVotes, "no", out.NoVotes)
	return connect.NewResponse(&pb.CastVoteResponse{Proposal: out}), nil
}

// ExecuteProposal marks a passing proposal executed. The quorum is computed
// from the member count the caller supplies.
func (s *VoteService) ExecuteProposal(ctx context.Context, req *connect.Request[pb.ExecuteProposalRequest]) (*connect.Response[pb.ExecuteProposalResponse], error) {
	slog.Info("ExecuteProposal request received", "proposal", req.Msg.Proposal, "total_members", req.Msg.TotalMembers)

	if _, err := caller(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	out, err := s.updateProposal(ctx, "execute_proposal", req.Msg.Proposal, now, req.Msg.TotalMembers, func(p *models.Proposal) error {
		return vote.ExecuteProposal(p, req.Msg.TotalMembers, now)
	})
	if err != nil {
		return nil, failed("ExecuteProposal failed", err, "proposal", req.Msg.Proposal)
	}

	slog.Info("Proposal executed", "proposal", out.Address, "yes", out.YesVotes, "no", out.NoVotes)
	return connect.NewResponse(&pb.ExecuteProposalResponse{Proposal: out}), nil
}

// GetProposal retrieves a proposal and its status at the current time.
func (s *VoteService) GetProposal(ctx context.Context, req *connect.Request[pb.GetProposalRequest]) (*connect.Response[pb.GetProposalResponse], error) {
	slog.Info("GetProposal request received", "proposal", req.Msg.Proposal)

	p, err := s.store.GetProposal(ctx, req.Msg.Proposal)
	if err != nil {
		return nil, failed("GetProposal failed", err, "proposal", req.Msg.Proposal)
	}
	total := req.Msg.TotalMembers
	if total == 0 {
		if total, err = s.memberCount(ctx, p.Squad); err != nil {
			return nil, failed("GetProposal failed", err, "proposal", req.Msg.Proposal)
		}
	}

	return connect.NewResponse(&pb.GetProposalResponse{Proposal: toProposal(p, total, s.now())}), nil
}

// ListProposals lists the proposals filed against a squad.
func (s *VoteService) ListProposals(ctx context.Context, req *connect.Request[pb.ListProposalsRequest]) (*connect.Response[pb.ListProposalsResponse], error) {
	slog.Info("ListProposals request received", "squad", req.Msg.Squad)

	if err := requireIdentity("squad", req.Msg.Squad); err != nil {
		return nil, err
	}
	proposals, err := s.store.ListProposalsBySquad(ctx, req.Msg.Squad)
	if err != nil {
		return nil, failed("ListProposals failed", err, "squad", req.Msg.Squad)
	}
	total := req.Msg.TotalMembers
	if total == 0 {
		if total, err = s.memberCount(ctx, req.Msg.Squad); err != nil {
			return nil, failed("ListProposals failed", err, "squad", req.Msg.Squad)
		}
	}

	now := s.now()
	out := make([]*pb.Proposal, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposal(p, total, now))
	}

	slog.Info("ListProposals successful", "squad", req.Msg.Squad, "count", len(out))
	return connect.NewResponse(&pb.ListProposalsResponse{Proposals: out}), nil
}
