package split

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/squad"
)

const now = int64(1_700_000_000)

func dinner() Params {
	return Params{
		Creator:     "alice",
		Description: "Dinner",
		TotalAmount: 900,
		Shares: []Share{
			{Debtor: "alice", Amount: 300},
			{Debtor: "bob", Amount: 300},
			{Debtor: "carol", Amount: 300},
		},
	}
}

func TestCreate(t *testing.T) {
	sp, err := Create(dinner(), nil, now)
	require.NoError(t, err)

	assert.Equal(t, "alice", sp.Creator)
	assert.Equal(t, models.SplitPending, sp.Status)
	assert.Empty(t, sp.Squad)
	assert.Equal(t, now, sp.CreatedAt)
	require.Len(t, sp.Items, 3)
	assert.True(t, sp.Items[0].Settled, "the creator's own share is settled")
	assert.Equal(t, now, sp.Items[0].SettledAt)
	assert.False(t, sp.Items[1].Settled)
	assert.Equal(t, 2, sp.Unsettled())
}

func TestCreateOnlyCreatorIsSettled(t *testing.T) {
	sp, err := Create(Params{
		Creator: "alice", Description: "Solo", TotalAmount: 5,
		Shares: []Share{{Debtor: "alice", Amount: 5}},
	}, nil, now)
	require.NoError(t, err)
	assert.Equal(t, models.SplitSettled, sp.Status)
}

func TestCreateValidation(t *testing.T) {
	eleven := make([]Share, MaxItems+1)
	for i := range eleven {
		eleven[i] = Share{Debtor: fmt.Sprintf("m%d", i), Amount: 1}
	}

	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr error
	}{
		{name: "empty description", mutate: func(p *Params) { p.Description = "" }, wantErr: ErrDescriptionRequired},
		{name: "description too long", mutate: func(p *Params) { p.Description = strings.Repeat("x", 257) }, wantErr: ErrDescriptionTooLong},
		{name: "description at limit", mutate: func(p *Params) { p.Description = strings.Repeat("x", 256) }},
		{name: "zero total", mutate: func(p *Params) { p.TotalAmount = 0 }, wantErr: ErrInvalidAmount},
		{name: "no shares", mutate: func(p *Params) { p.Shares = nil }, wantErr: ErrNoItems},
		{name: "too many shares", mutate: func(p *Params) { p.Shares, p.TotalAmount = eleven, 11 }, wantErr: ErrTooManyItems},
		{name: "zero share", mutate: func(p *Params) { p.Shares[1].Amount = 0 }, wantErr: ErrInvalidAmount},
		{name: "duplicate debtor", mutate: func(p *Params) { p.Shares[2].Debtor = "bob" }, wantErr: ErrDuplicateDebtor},
		{name: "shares below total", mutate: func(p *Params) { p.TotalAmount = 901 }, wantErr: ErrAmountMismatch},
		{
			name: "share overflow",
			mutate: func(p *Params) {
				p.Shares = []Share{{Debtor: "bob", Amount: math.MaxUint64}, {Debtor: "carol", Amount: 1}}
			},
			wantErr: calculator.ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := dinner()
			tt.mutate(&p)
			_, err := Create(p, nil, now)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateInSquad(t *testing.T) {
	sq, err := squad.Initialize("alice", "Trip", []string{"bob", "carol"}, 1, now)
	require.NoError(t, err)

	sp, err := Create(dinner(), sq, now)
	require.NoError(t, err)
	assert.Equal(t, sq.Address, sp.Squad)

	p := dinner()
	p.Shares[2].Debtor = "dave"
	_, err = Create(p, sq, now)
	require.ErrorIs(t, err, ErrNotAMember)

	p = dinner()
	p.Creator = "dave"
	_, err = Create(p, sq, now)
	require.ErrorIs(t, err, ErrNotAMember)
}

func TestFromShares(t *testing.T) {
	shares, err := calculator.CalculateSplit([]calculator.Item{
		{Description: "Steak", Amount: 5000, AssignedTo: []string{"bob"}},
	}, 5500, []string{"alice", "bob"})
	require.NoError(t, err)

	assert.Equal(t, []Share{{Debtor: "bob", Amount: 5500}}, FromShares(shares))
}

func TestSettle(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory()
	require.NoError(t, l.Mint("bob", 1000))
	require.NoError(t, l.Mint("carol", 100))

	sp, err := Create(dinner(), nil, now)
	require.NoError(t, err)

	paid, err := Settle(ctx, l, sp, "bob", now+10)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), paid)
	assert.True(t, sp.Item("bob").Settled)
	assert.Equal(t, now+10, sp.Item("bob").SettledAt)
	assert.Equal(t, models.SplitPending, sp.Status)

	alice, err := l.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(300), alice)

	_, err = Settle(ctx, l, sp, "bob", now+11)
	require.ErrorIs(t, err, ErrAlreadySettled)

	_, err = Settle(ctx, l, sp, "alice", now+11)
	require.ErrorIs(t, err, ErrAlreadySettled)

	_, err = Settle(ctx, l, sp, "dave", now+11)
	require.ErrorIs(t, err, ErrNotADebtor)

	_, err = Settle(ctx, l, sp, "carol", now+12)
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.False(t, sp.Item("carol").Settled, "a failed transfer leaves the item owed")

	require.NoError(t, l.Mint("carol", 200))
	_, err = Settle(ctx, l, sp, "carol", now+13)
	require.NoError(t, err)
	assert.Equal(t, models.SplitSettled, sp.Status)
	assert.Zero(t, sp.Unsettled())
}
