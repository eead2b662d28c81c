// Package vote implements squad governance: spending proposals, one vote per
// identity before the deadline, and quorum-gated execution afterwards.
//
// Executing a proposal marks it executed and nothing else; squad withdrawals
// never look at proposals.
package vote

import (
	"github.com/mmynk/rally/internal/address"
	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/fault"
	"github.com/mmynk/rally/internal/models"
)

const (
	MaxTitleLen       = 64
	MaxDescriptionLen = 256
	// MaxVoters is the capacity of a proposal's voter set.
	MaxVoters = 10
)

var (
	ErrTitleTooLong       = fault.New(fault.KindInvalid, "TitleTooLong", "title must be 64 bytes or less")
	ErrDescriptionTooLong = fault.New(fault.KindInvalid, "DescriptionTooLong", "description must be 256 bytes or less")
	ErrDeadlineInPast     = fault.New(fault.KindTiming, "DeadlineInPast", "voting deadline must be in the future")
	ErrInvalidAmount      = fault.New(fault.KindInvalid, "InvalidAmount", "amount must be greater than 0")
	ErrVotingClosed       = fault.New(fault.KindTiming, "VotingClosed", "voting period has ended")
	ErrVotingStillOpen    = fault.New(fault.KindTiming, "VotingStillOpen", "voting period is still open")
	ErrAlreadyVoted       = fault.New(fault.KindConflict, "AlreadyVoted", "you have already voted on this proposal")
	ErrAlreadyExecuted    = fault.New(fault.KindTerminal, "AlreadyExecuted", "proposal has already been executed")
	ErrQuorumNotReached   = fault.New(fault.KindInsufficient, "QuorumNotReached", "quorum not reached: not enough yes votes")
	ErrProposalRejected   = fault.New(fault.KindInsufficient, "ProposalRejected", "proposal rejected: yes votes do not outnumber no votes")
	ErrTooManyVoters      = fault.New(fault.KindCapacity, "TooManyVoters", "proposal can record at most 10 voters")
)

// Params describes a new proposal.
type Params struct {
	Squad          string
	Proposer       string
	ProposalID     uint64
	Title          string
	Description    string
	Amount         uint64
	Recipient      string
	VotingDeadline int64
}

// CreateProposal validates p and returns an open proposal with no votes.
func CreateProposal(p Params, now int64) (*models.Proposal, error) {
	if len(p.Title) > MaxTitleLen {
		return nil, ErrTitleTooLong
	}
	if len(p.Description) > MaxDescriptionLen {
		return nil, ErrDescriptionTooLong
	}
	if p.VotingDeadline <= now {
		return nil, ErrDeadlineInPast
	}
	if p.Amount == 0 {
		return nil, ErrInvalidAmount
	}
	return &models.Proposal{
		Address:        address.Proposal(p.Squad, p.ProposalID),
		Squad:          p.Squad,
		Proposer:       p.Proposer,
		ProposalID:     p.ProposalID,
		Title:          p.Title,
		Description:    p.Description,
		Amount:         p.Amount,
		Recipient:      p.Recipient,
		Voters:         []string{},
		VotingDeadline: p.VotingDeadline,
		CreatedAt:      now,
	}, nil
}

// CheckBinding verifies the proposal's address matches its derivation.
func CheckBinding(p *models.Proposal) error {
	return address.Check(p.Address, address.DomainProposal, []byte(p.Squad), address.Nonce(p.ProposalID))
}

// CastVote records voter's ballot.
func CastVote(p *models.Proposal, voter string, yes bool, now int64) error {
	if now > p.VotingDeadline {
		return ErrVotingClosed
	}
	if p.IsExecuted {
		return ErrAlreadyExecuted
	}
	if p.HasVoted(voter) {
		return ErrAlreadyVoted
	}
	if len(p.Voters) >= MaxVoters {
		return ErrTooManyVoters
	}

	yesVotes, noVotes := p.YesVotes, p.NoVotes
	var err error
	if yes {
		yesVotes, err = calculator.Add(yesVotes, 1)
	} else {
		noVotes, err = calculator.Add(noVotes, 1)
	}
	if err != nil {
		return err
	}
	p.Voters = append(p.Voters, voter)
	p.YesVotes, p.NoVotes = yesVotes, noVotes
	return nil
}

// Tally decides whether the proposal passes for a squad of totalMembers.
// It returns nil when it passes.
func Tally(p *models.Proposal, totalMembers uint32) error {
	if p.YesVotes < calculator.Quorum(totalMembers) {
		return ErrQuorumNotReached
	}
	if p.YesVotes <= p.NoVotes {
		return ErrProposalRejected
	}
	return nil
}

// ExecuteProposal marks a passing proposal executed once its deadline is reached.
func ExecuteProposal(p *models.Proposal, totalMembers uint32, now int64) error {
	if p.IsExecuted {
		return ErrAlreadyExecuted
	}
	if now < p.VotingDeadline {
		return ErrVotingStillOpen
	}
	if err := Tally(p, totalMembers); err != nil {
		return err
	}
	p.IsExecuted = true
	return nil
}

// Status is the lazily computed state of p at now. Without a member count
// (totalMembers == 0) a closed proposal is judged on yes > no alone.
func Status(p *models.Proposal, totalMembers uint32, now int64) models.ProposalStatus {
	switch {
	case p.IsExecuted:
		return models.ProposalExecuted
	case now < p.VotingDeadline:
		return models.ProposalOpen
	}
	if totalMembers == 0 {
		if p.YesVotes > p.NoVotes {
			return models.ProposalPassed
		}
		return models.ProposalRejected
	}
	if Tally(p, totalMembers) != nil {
		return models.ProposalRejected
	}
	return models.ProposalPassed
}
