// Package split implements expense splits: one member pays, the others owe
// their share back and settle it through the ledger.
package split

import (
	"context"
	"fmt"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/fault"
	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/models"
)

const (
	MaxDescriptionLen = 256
	// MaxItems matches the largest squad.
	MaxItems = 10
)

var (
	ErrDescriptionRequired = fault.New(fault.KindInvalid, "DescriptionRequired", "description is required")
	ErrDescriptionTooLong  = fault.New(fault.KindInvalid, "DescriptionTooLong", "description must be 256 bytes or less")
	ErrInvalidAmount       = fault.New(fault.KindInvalid, "InvalidAmount", "amount must be greater than 0")
	ErrNoItems             = fault.New(fault.KindInvalid, "NoItems", "split needs at least one debtor")
	ErrTooManyItems        = fault.New(fault.KindCapacity, "TooManyItems", "split can have at most 10 debtors")
	ErrDuplicateDebtor     = fault.New(fault.KindConflict, "DuplicateDebtor", "debtor appears more than once")
	ErrAmountMismatch      = fault.New(fault.KindInvalid, "AmountMismatch", "item amounts must add up to the total")
	ErrNotAMember          = fault.New(fault.KindUnauthorized, "NotAMember", "user is not a member of this squad")
	ErrNotADebtor          = fault.New(fault.KindUnauthorized, "NotADebtor", "you do not owe anything on this split")
	ErrAlreadySettled      = fault.New(fault.KindTerminal, "AlreadySettled", "this share is already settled")
)

// Share is one debtor's part of a new split.
type Share struct {
	Debtor string
	Amount uint64
}

// Params describes a new split.
type Params struct {
	Creator     string
	Description string
	TotalAmount uint64
	Shares      []Share
}

// Create validates p and returns a pending split. When squad is non-nil the
// creator and every debtor must be members of it. A share owed by the
// creator is settled from the start.
func Create(p Params, squad *models.Squad, now int64) (*models.Split, error) {
	switch {
	case p.Description == "":
		return nil, ErrDescriptionRequired
	case len(p.Description) > MaxDescriptionLen:
		return nil, ErrDescriptionTooLong
	case p.TotalAmount == 0:
		return nil, ErrInvalidAmount
	case len(p.Shares) == 0:
		return nil, ErrNoItems
	case len(p.Shares) > MaxItems:
		return nil, ErrTooManyItems
	}

	sp := &models.Split{
		Creator:     p.Creator,
		Description: p.Description,
		TotalAmount: p.TotalAmount,
		Status:      models.SplitPending,
		Items:       make([]models.SplitItem, 0, len(p.Shares)),
		CreatedAt:   now,
	}
	if squad != nil {
		if !squad.IsMember(p.Creator) {
			return nil, ErrNotAMember
		}
		sp.Squad = squad.Address
	}

	var sum uint64
	seen := make(map[string]struct{}, len(p.Shares))
	for _, s := range p.Shares {
		if s.Amount == 0 {
			return nil, ErrInvalidAmount
		}
		if _, dup := seen[s.Debtor]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDebtor, s.Debtor)
		}
		seen[s.Debtor] = struct{}{}
		if squad != nil && !squad.IsMember(s.Debtor) {
			return nil, fmt.Errorf("%w: %s", ErrNotAMember, s.Debtor)
		}
		var err error
		if sum, err = calculator.Add(sum, s.Amount); err != nil {
			return nil, err
		}

		item := models.SplitItem{Debtor: s.Debtor, Amount: s.Amount}
		if s.Debtor == p.Creator {
			item.Settled = true
			item.SettledAt = now
		}
		sp.Items = append(sp.Items, item)
	}
	if sum != p.TotalAmount {
		return nil, ErrAmountMismatch
	}

	if sp.Unsettled() == 0 {
		sp.Status = models.SplitSettled
	}
	return sp, nil
}

// FromShares turns calculated shares into split shares, dropping the ones
// that owe nothing.
func FromShares(shares []calculator.Share) []Share {
	out := make([]Share, 0, len(shares))
	for _, s := range shares {
		if s.Total > 0 {
			out = append(out, Share{Debtor: s.Participant, Amount: s.Total})
		}
	}
	return out
}

// Settle pays debtor's item to the creator through l and marks it settled.
// The split becomes settled with its last item. It returns the amount paid.
func Settle(ctx context.Context, l ledger.Ledger, sp *models.Split, debtor string, now int64) (uint64, error) {
	item := sp.Item(debtor)
	if item == nil {
		return 0, ErrNotADebtor
	}
	if item.Settled {
		return 0, ErrAlreadySettled
	}
	if err := l.Transfer(ctx, debtor, sp.Creator, item.Amount); err != nil {
		return 0, err
	}
	item.Settled = true
	item.SettledAt = now
	if sp.Unsettled() == 0 {
		sp.Status = models.SplitSettled
	}
	return item.Amount, nil
}
