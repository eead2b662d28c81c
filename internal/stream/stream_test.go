package stream

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rally/internal/address"
	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/models"
)

const t0 = int64(1_700_000_000)

func newStream(t *testing.T, l *ledger.Memory, rate uint64, duration int64) *models.PaymentStream {
	t.Helper()
	require.NoError(t, l.Mint("alice", rate*uint64(duration)))
	s, err := Create(context.Background(), l, Params{
		Sender:          "alice",
		Recipient:       "bob",
		StreamID:        7,
		AmountPerSecond: rate,
		StartTime:       t0,
		EndTime:         t0 + duration,
	}, t0)
	require.NoError(t, err)
	return s
}

func balance(t *testing.T, l *ledger.Memory, addr string) uint64 {
	t.Helper()
	b, err := l.Balance(context.Background(), addr)
	require.NoError(t, err)
	return b
}

func TestCreateFundsVault(t *testing.T) {
	l := ledger.NewMemory()
	s := newStream(t, l, 10, 100)

	assert.Equal(t, address.Stream("alice", 7), s.Address)
	assert.Equal(t, address.StreamVault(s.Address), s.Vault)
	assert.Equal(t, uint64(1000), s.TotalDeposited)
	assert.Equal(t, uint64(1000), balance(t, l, s.Vault))
	assert.Zero(t, balance(t, l, "alice"))
	assert.False(t, s.IsCancelled)
	require.NoError(t, CheckBinding(s))
}

func TestCreateValidation(t *testing.T) {
	base := Params{Sender: "alice", Recipient: "bob", StreamID: 1, AmountPerSecond: 1, StartTime: t0, EndTime: t0 + 10}

	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr error
	}{
		{name: "start within grace", mutate: func(p *Params) { p.StartTime = t0 - StartGrace; p.EndTime = t0 + 1 }},
		{name: "start too far in the past", mutate: func(p *Params) { p.StartTime = t0 - StartGrace - 1 }, wantErr: ErrInvalidStartTime},
		{name: "end before start", mutate: func(p *Params) { p.EndTime = p.StartTime }, wantErr: ErrInvalidEndTime},
		{name: "zero rate", mutate: func(p *Params) { p.AmountPerSecond = 0 }, wantErr: ErrInvalidRate},
		{name: "overflowing entitlement", mutate: func(p *Params) { p.AmountPerSecond = math.MaxUint64 }, wantErr: calculator.ErrOverflow},
		{name: "sender cannot fund", mutate: func(p *Params) { p.AmountPerSecond = 1_000_000 }, wantErr: ledger.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.NewMemory()
			require.NoError(t, l.Mint("alice", 1000))
			p := base
			tt.mutate(&p)

			s, err := Create(context.Background(), l, p, t0)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				assert.Equal(t, uint64(1000), balance(t, l, "alice"))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWithdrawAccrual(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory()
	s := newStream(t, l, 10, 100)

	_, err := Withdraw(ctx, l, s, "bob", t0)
	assert.ErrorIs(t, err, ErrNothingToWithdraw)

	_, err = Withdraw(ctx, l, s, "alice", t0+10)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var prev uint64
	for _, at := range []int64{t0 + 10, t0 + 25, t0 + 100, t0 + 500} {
		_, err := Withdraw(ctx, l, s, "bob", at)
		if at == t0+500 {
			assert.ErrorIs(t, err, ErrNothingToWithdraw, "everything was paid at end time")
			continue
		}
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.TotalWithdrawn, prev)
		prev = s.TotalWithdrawn
		earned, _ := Earned(s, at)
		assert.Equal(t, earned, s.TotalWithdrawn)
	}

	assert.Equal(t, uint64(1000), s.TotalWithdrawn)
	assert.Equal(t, uint64(1000), balance(t, l, "bob"))
	assert.Zero(t, balance(t, l, s.Vault))
}

func TestWithdrawClampsToVaultBalance(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory()
	s := newStream(t, l, 10, 100)

	// Drain part of the vault behind the stream's back.
	require.NoError(t, l.Transfer(ctx, s.Vault, "elsewhere", 950))

	paid, err := Withdraw(ctx, l, s, "bob", t0+20)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), paid)
	assert.Equal(t, uint64(50), s.TotalWithdrawn, "high-water mark counts what was actually paid")

	_, err = Withdraw(ctx, l, s, "bob", t0+30)
	assert.ErrorIs(t, err, ErrNothingToWithdraw)
}

func TestWithdrawInvariantViolation(t *testing.T) {
	l := ledger.NewMemory()
	s := newStream(t, l, 10, 100)
	s.TotalWithdrawn = 500

	_, err := Withdraw(context.Background(), l, s, "bob", t0+10)
	assert.ErrorIs(t, err, calculator.ErrOverflow)
}

func TestCancelSettlesRecipientFirst(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory()
	s := newStream(t, l, 10, 100)

	_, err := Withdraw(ctx, l, s, "bob", t0+20)
	require.NoError(t, err)

	_, err = Cancel(ctx, l, s, "bob", t0+40)
	assert.ErrorIs(t, err, ErrUnauthorized)

	settlement, err := Cancel(ctx, l, s, "alice", t0+40)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), settlement.PaidToRecipient)
	assert.Equal(t, uint64(600), settlement.ReturnedToSender)

	assert.True(t, s.IsCancelled)
	assert.Equal(t, uint64(400), s.TotalWithdrawn)
	assert.Equal(t, uint64(400), balance(t, l, "bob"))
	assert.Equal(t, uint64(600), balance(t, l, "alice"))
	assert.Zero(t, balance(t, l, s.Vault))

	_, err = Cancel(ctx, l, s, "alice", t0+50)
	assert.ErrorIs(t, err, ErrStreamCancelled)
	_, err = Withdraw(ctx, l, s, "bob", t0+50)
	assert.ErrorIs(t, err, ErrStreamCancelled)
}

func TestCancelBeforeStartReturnsEverything(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory()
	require.NoError(t, l.Mint("alice", 100))
	s, err := Create(ctx, l, Params{Sender: "alice", Recipient: "bob", StreamID: 1, AmountPerSecond: 1, StartTime: t0 + 50, EndTime: t0 + 150}, t0)
	require.NoError(t, err)

	settlement, err := Cancel(ctx, l, s, "alice", t0+10)
	require.NoError(t, err)
	assert.Zero(t, settlement.PaidToRecipient)
	assert.Equal(t, uint64(100), settlement.ReturnedToSender)
	assert.Equal(t, uint64(100), balance(t, l, "alice"))
}

func TestCancelAfterEndPaysRemainder(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemory()
	s := newStream(t, l, 3, 10)

	settlement, err := Cancel(ctx, l, s, "alice", t0+1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), settlement.PaidToRecipient)
	assert.Zero(t, settlement.ReturnedToSender)
	assert.Equal(t, s.TotalDeposited, s.TotalWithdrawn)
}
