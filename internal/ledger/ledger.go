// Package ledger defines the balance-transfer primitive the custody modules
// use to move value between holders.
package ledger

import (
	"context"

	"github.com/mmynk/rally/internal/fault"
)

var (
	// ErrInsufficientFunds is returned when the source balance cannot cover a transfer.
	ErrInsufficientFunds = fault.New(fault.KindInsufficient, "InsufficientFunds", "insufficient funds")
	// ErrInvalidTransfer is returned for zero-amount or self transfers.
	ErrInvalidTransfer = fault.New(fault.KindInvalid, "InvalidTransfer", "transfer must move a positive amount between two holders")
)

// Ledger reads balances and moves value. A Transfer either moves the whole
// amount or returns an error and changes nothing.
type Ledger interface {
	Balance(ctx context.Context, address string) (uint64, error)
	Transfer(ctx context.Context, from, to string, amount uint64) error
}

type memoKey struct{}

// WithMemo labels the transfers made with ctx, e.g. "stream.cancel".
func WithMemo(ctx context.Context, memo string) context.Context {
	return context.WithValue(ctx, memoKey{}, memo)
}

// MemoFrom returns the label set by WithMemo, or "".
func MemoFrom(ctx context.Context) string {
	memo, _ := ctx.Value(memoKey{}).(string)
	return memo
}
