// Package squad implements the shared wallet: membership managed by an
// authority, deposits from any member into a pooled vault, and withdrawals
// gated by a spend threshold.
package squad

import (
	"context"
	"fmt"

	"github.com/mmynk/rally/internal/address"
	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/fault"
	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/models"
)

const (
	// MaxNameLen is the maximum squad name length in bytes.
	MaxNameLen = 32
	// MaxMembers is the capacity of the member set, authority included.
	MaxMembers = 10
)

var (
	ErrNameTooLong           = fault.New(fault.KindInvalid, "NameTooLong", "squad name must be 32 bytes or less")
	ErrTooManyMembers        = fault.New(fault.KindCapacity, "TooManyMembers", "squad can have at most 10 members")
	ErrInvalidThreshold      = fault.New(fault.KindInvalid, "InvalidThreshold", "spend threshold must be greater than 0")
	ErrInvalidAmount         = fault.New(fault.KindInvalid, "InvalidAmount", "amount must be greater than 0")
	ErrAlreadyMember         = fault.New(fault.KindConflict, "AlreadyMember", "user is already a member of this squad")
	ErrNotAMember            = fault.New(fault.KindUnauthorized, "NotAMember", "user is not a member of this squad")
	ErrCannotRemoveAuthority = fault.New(fault.KindInvalid, "CannotRemoveAuthority", "cannot remove the squad authority")
	ErrInsufficientFunds     = fault.New(fault.KindInsufficient, "InsufficientFunds", "insufficient funds in squad vault")
	ErrVoteRequired          = fault.New(fault.KindUnauthorized, "VoteRequired", "withdrawal above threshold requires a passed vote")
	ErrUnauthorized          = fault.New(fault.KindUnauthorized, "Unauthorized", "only the squad authority can manage members")
)

// Initialize creates the squad owned by authority. The authority is added to
// members when missing; duplicate members are rejected.
func Initialize(authority, name string, members []string, threshold uint64, now int64) (*models.Squad, error) {
	if len(name) > MaxNameLen {
		return nil, ErrNameTooLong
	}
	if len(members) > MaxMembers {
		return nil, ErrTooManyMembers
	}
	if threshold == 0 {
		return nil, ErrInvalidThreshold
	}

	set := make([]string, 0, len(members)+1)
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, dup := seen[m]; dup {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyMember, m)
		}
		seen[m] = struct{}{}
		set = append(set, m)
	}
	if _, ok := seen[authority]; !ok {
		set = append(set, authority)
	}
	if len(set) > MaxMembers {
		return nil, ErrTooManyMembers
	}

	addr := address.Squad(authority)
	return &models.Squad{
		Address:        addr,
		Authority:      authority,
		Name:           name,
		Members:        set,
		Vault:          address.Vault(addr),
		SpendThreshold: threshold,
		CreatedAt:      now,
	}, nil
}

// CheckBinding verifies the squad's address and vault match their derivation.
func CheckBinding(sq *models.Squad) error {
	if err := address.Check(sq.Address, address.DomainSquad, []byte(sq.Authority)); err != nil {
		return err
	}
	return address.Check(sq.Vault, address.DomainVault, []byte(sq.Address))
}

// AddMember appends newMember. Only the authority may call it.
func AddMember(sq *models.Squad, caller, newMember string) error {
	if caller != sq.Authority {
		return ErrUnauthorized
	}
	if len(sq.Members) >= MaxMembers {
		return ErrTooManyMembers
	}
	if sq.IsMember(newMember) {
		return ErrAlreadyMember
	}
	sq.Members = append(sq.Members, newMember)
	return nil
}

// RemoveMember filters member out of the set. Only the authority may call it,
// and the authority itself cannot be removed.
func RemoveMember(sq *models.Squad, caller, member string) error {
	if caller != sq.Authority {
		return ErrUnauthorized
	}
	if member == sq.Authority {
		return ErrCannotRemoveAuthority
	}
	kept := make([]string, 0, len(sq.Members))
	for _, m := range sq.Members {
		if m != member {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(sq.Members) {
		return ErrNotAMember
	}
	sq.Members = kept
	return nil
}

// Deposit moves amount from caller into the squad vault and counts it in
// TotalDeposited.
func Deposit(ctx context.Context, l ledger.Ledger, sq *models.Squad, caller string, amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	if !sq.IsMember(caller) {
		return ErrNotAMember
	}
	total, err := calculator.Add(sq.TotalDeposited, amount)
	if err != nil {
		return err
	}
	if err := CheckBinding(sq); err != nil {
		return err
	}
	if err := l.Transfer(ctx, caller, sq.Vault, amount); err != nil {
		return err
	}
	sq.TotalDeposited = total
	return nil
}

// Withdraw moves amount from the vault to recipient. Amounts above the spend
// threshold need votePassed; the flag is the caller's assertion and is not
// checked against any proposal.
func Withdraw(ctx context.Context, l ledger.Ledger, sq *models.Squad, caller, recipient string, amount uint64, votePassed bool) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	if !sq.IsMember(caller) {
		return ErrNotAMember
	}
	if amount > sq.SpendThreshold && !votePassed {
		return ErrVoteRequired
	}
	if err := CheckBinding(sq); err != nil {
		return err
	}
	balance, err := l.Balance(ctx, sq.Vault)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientFunds
	}
	return l.Transfer(ctx, sq.Vault, recipient, amount)
}
