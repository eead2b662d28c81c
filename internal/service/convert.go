package service

import (
	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/stream"
	"github.com/mmynk/rally/internal/vote"
	pb "github.com/mmynk/rally/pkg/proto"
)

func toUser(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Handle:      u.Handle,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toSquad(sq *models.Squad, vaultBalance uint64) *pb.Squad {
	return &pb.Squad{
		Address:           sq.Address,
		Authority:         sq.Authority,
		Name:              sq.Name,
		Members:           sq.Members,
		Vault:             sq.Vault,
		SpendThreshold:    sq.SpendThreshold,
		SpendThresholdSol: calculator.FormatSOL(sq.SpendThreshold),
		TotalDeposited:    sq.TotalDeposited,
		VaultBalance:      vaultBalance,
		VaultBalanceSol:   calculator.FormatSOL(vaultBalance),
		CreatedAt:         sq.CreatedAt,
	}
}

// toStream converts s with its accrual previewed at now. A stream whose
// counters break the accrual invariant previews zero.
func toStream(s *models.PaymentStream, vaultBalance uint64, now int64) *pb.Stream {
	earned, err := stream.Earned(s, now)
	if err != nil {
		earned = 0
	}
	withdrawable := calculator.SaturatingSub(earned, s.TotalWithdrawn)
	if s.IsCancelled {
		withdrawable = 0
	}
	return &pb.Stream{
		Address:         s.Address,
		Sender:          s.Sender,
		Recipient:       s.Recipient,
		StreamId:        s.StreamID,
		AmountPerSecond: s.AmountPerSecond,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		TotalDeposited:  s.TotalDeposited,
		TotalWithdrawn:  s.TotalWithdrawn,
		IsCancelled:     s.IsCancelled,
		Vault:           s.Vault,
		VaultBalance:    vaultBalance,
		CreatedAt:       s.CreatedAt,
		Earned:          earned,
		Withdrawable:    calculator.Min(withdrawable, vaultBalance),
		AsOf:            now,
	}
}

func toProposal(p *models.Proposal, totalMembers uint32, now int64) *pb.Proposal {
	return &pb.Proposal{
		Address:        p.Address,
		Squad:          p.Squad,
		Proposer:       p.Proposer,
		ProposalId:     p.ProposalID,
		Title:          p.Title,
		Description:    p.Description,
		Amount:         p.Amount,
		AmountSol:      calculator.FormatSOL(p.Amount),
		Recipient:      p.Recipient,
		YesVotes:       p.YesVotes,
		NoVotes:        p.NoVotes,
		Voters:         p.Voters,
		VotingDeadline: p.VotingDeadline,
		IsExecuted:     p.IsExecuted,
		Status:         string(vote.Status(p, totalMembers, now)),
		CreatedAt:      p.CreatedAt,
	}
}

func toTransfer(t *models.Transfer) *pb.Transfer {
	return &pb.Transfer{
		Id:        t.ID,
		From:      t.From,
		To:        t.To,
		Amount:    t.Amount,
		AmountSol: calculator.FormatSOL(t.Amount),
		Memo:      t.Memo,
		CreatedAt: t.CreatedAt,
	}
}

func toSplit(sp *models.Split) *pb.Split {
	items := make([]*pb.SplitItem, 0, len(sp.Items))
	for _, item := range sp.Items {
		items = append(items, &pb.SplitItem{
			Debtor:    item.Debtor,
			Amount:    item.Amount,
			AmountSol: calculator.FormatSOL(item.Amount),
			Settled:   item.Settled,
			SettledAt: item.SettledAt,
		})
	}
	return &pb.Split{
		Id:                 sp.ID,
		Creator:            sp.Creator,
		Description:        sp.Description,
		TotalAmount:        sp.TotalAmount,
		TotalAmountSol:     calculator.FormatSOL(sp.TotalAmount),
		Squad:              sp.Squad,
		Status:             sp.Status,
		Items:              items,
		RemainingUnsettled: uint32(sp.Unsettled()),
		CreatedAt:          sp.CreatedAt,
	}
}
