package calculator

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"

	"github.com/mmynk/rally/internal/fault"
)

var (
	ErrNoParticipants       = fault.New(fault.KindInvalid, "NoParticipants", "must have at least one participant")
	ErrDuplicateParticipant = fault.New(fault.KindInvalid, "DuplicateParticipant", "participant appears more than once")
	ErrUnknownParticipant   = fault.New(fault.KindInvalid, "UnknownParticipant", "item is assigned to someone outside the participants")
	ErrUnassignedItem       = fault.New(fault.KindInvalid, "UnassignedItem", "every item must be assigned to at least one participant")
	ErrZeroItem             = fault.New(fault.KindInvalid, "InvalidAmount", "item amount must be greater than 0")
	ErrTotalBelowItems      = fault.New(fault.KindInvalid, "TotalBelowItems", "total must be at least the sum of the items")
)

// Item is one line of a bill in smallest units.
type Item struct {
	Description string
	Amount      uint64
	AssignedTo  []string
}

// Share is what one participant owes. Extra is the participant's part of
// total minus the item subtotal (tax, tip).
type Share struct {
	Participant string
	Subtotal    uint64
	Extra       uint64
	Total       uint64
}

// CalculateSplit computes how much each participant owes of a bill.
//
// Each item is divided among its assignees, the first assignees taking the
// odd units. The extra on top of the item subtotal is spread in proportion:
// person_extra = person_subtotal × extra / subtotal, with the units lost to
// rounding going to the largest remainders. Without items the total is
// divided equally. The shares always sum to total.
func CalculateSplit(items []Item, total uint64, participants []string) ([]Share, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	shares := make([]Share, len(participants))
	index := make(map[string]int, len(participants))
	for i, p := range participants {
		if _, dup := index[p]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParticipant, p)
		}
		index[p] = i
		shares[i].Participant = p
	}

	if len(items) == 0 {
		n := uint64(len(participants))
		for i := range shares {
			shares[i].Subtotal = total / n
			if uint64(i) < total%n {
				shares[i].Subtotal++
			}
			shares[i].Total = shares[i].Subtotal
		}
		return shares, nil
	}

	var subtotal uint64
	for _, item := range items {
		if item.Amount == 0 {
			return nil, fmt.Errorf("%w: %q", ErrZeroItem, item.Description)
		}
		if len(item.AssignedTo) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnassignedItem, item.Description)
		}
		var err error
		if subtotal, err = Add(subtotal, item.Amount); err != nil {
			return nil, err
		}

		k := uint64(len(item.AssignedTo))
		per, rem := item.Amount/k, item.Amount%k
		for j, person := range item.AssignedTo {
			i, ok := index[person]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownParticipant, person)
			}
			part := per
			if uint64(j) < rem {
				part++
			}
			shares[i].Subtotal += part
		}
	}
	if total < subtotal {
		return nil, ErrTotalBelowItems
	}

	extra := total - subtotal
	var spread uint64
	remainders := make([]uint64, len(shares))
	for i := range shares {
		// Subtotal <= subtotal, so hi < subtotal and the quotient fits.
		hi, lo := bits.Mul64(shares[i].Subtotal, extra)
		shares[i].Extra, remainders[i] = bits.Div64(hi, lo, subtotal)
		spread += shares[i].Extra
	}
	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(remainders[b], remainders[a])
	})
	for _, i := range order[:extra-spread] {
		shares[i].Extra++
	}
	for i := range shares {
		shares[i].Total = shares[i].Subtotal + shares[i].Extra
	}
	return shares, nil
}
