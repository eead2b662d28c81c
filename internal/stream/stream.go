// Package stream implements continuous payment streams. A sender funds the
// full entitlement up front; the recipient withdraws what has accrued; the
// sender may cancel, settling the recipient first and reclaiming the rest.
package stream

import (
	"context"

	"github.com/mmynk/rally/internal/address"
	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/fault"
	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/models"
)

// StartGrace is how far in the past, in seconds, a stream may start.
const StartGrace = 60

var (
	ErrInvalidStartTime  = fault.New(fault.KindTiming, "InvalidStartTime", "start time cannot be in the past")
	ErrInvalidEndTime    = fault.New(fault.KindInvalid, "InvalidEndTime", "end time must be after start time")
	ErrInvalidRate       = fault.New(fault.KindInvalid, "InvalidRate", "rate must be greater than 0")
	ErrInvalidAmount     = fault.New(fault.KindInvalid, "InvalidAmount", "amount must be greater than 0")
	ErrStreamCancelled   = fault.New(fault.KindTerminal, "StreamCancelled", "stream has been cancelled")
	ErrUnauthorized      = fault.New(fault.KindUnauthorized, "Unauthorized", "only the sender or recipient can perform this action")
	ErrNothingToWithdraw = fault.New(fault.KindInsufficient, "NothingToWithdraw", "nothing to withdraw yet")
)

// Params describes a new stream.
type Params struct {
	Sender          string
	Recipient       string
	StreamID        uint64
	AmountPerSecond uint64
	StartTime       int64
	EndTime         int64
}

// Create validates p, moves the whole entitlement from the sender into the
// stream vault and returns the new stream.
func Create(ctx context.Context, l ledger.Ledger, p Params, now int64) (*models.PaymentStream, error) {
	if p.StartTime < now-StartGrace {
		return nil, ErrInvalidStartTime
	}
	if p.EndTime <= p.StartTime {
		return nil, ErrInvalidEndTime
	}
	if p.AmountPerSecond == 0 {
		return nil, ErrInvalidRate
	}
	total, err := calculator.Entitlement(p.AmountPerSecond, p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrInvalidAmount
	}

	addr := address.Stream(p.Sender, p.StreamID)
	s := &models.PaymentStream{
		Address:         addr,
		Sender:          p.Sender,
		Recipient:       p.Recipient,
		StreamID:        p.StreamID,
		AmountPerSecond: p.AmountPerSecond,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		TotalDeposited:  total,
		Vault:           address.StreamVault(addr),
		CreatedAt:       now,
	}
	if err := l.Transfer(ctx, p.Sender, s.Vault, total); err != nil {
		return nil, err
	}
	return s, nil
}

// CheckBinding verifies the stream's address and vault match their derivation.
func CheckBinding(s *models.PaymentStream) error {
	if err := address.Check(s.Address, address.DomainStream, []byte(s.Sender), address.Nonce(s.StreamID)); err != nil {
		return err
	}
	return address.Check(s.Vault, address.DomainStreamVault, []byte(s.Address))
}

// Earned is the recipient's entitlement at now.
func Earned(s *models.PaymentStream, now int64) (uint64, error) {
	return calculator.Earned(s.AmountPerSecond, s.StartTime, s.EndTime, now)
}

// Withdrawable is what the recipient could take at now, before clamping to
// the vault balance.
func Withdrawable(s *models.PaymentStream, now int64) (uint64, error) {
	earned, err := Earned(s, now)
	if err != nil {
		return 0, err
	}
	return calculator.Sub(earned, s.TotalWithdrawn)
}

// Withdraw pays the recipient everything accrued and not yet withdrawn,
// limited by the vault balance. It returns the amount transferred.
func Withdraw(ctx context.Context, l ledger.Ledger, s *models.PaymentStream, caller string, now int64) (uint64, error) {
	if s.IsCancelled {
		return 0, ErrStreamCancelled
	}
	if caller != s.Recipient {
		return 0, ErrUnauthorized
	}
	withdrawable, err := Withdrawable(s, now)
	if err != nil {
		return 0, err
	}
	if withdrawable == 0 {
		return 0, ErrNothingToWithdraw
	}
	if err := CheckBinding(s); err != nil {
		return 0, err
	}

	balance, err := l.Balance(ctx, s.Vault)
	if err != nil {
		return 0, err
	}
	amount := calculator.Min(withdrawable, balance)
	if amount == 0 {
		return 0, ErrNothingToWithdraw
	}
	withdrawn, err := calculator.Add(s.TotalWithdrawn, amount)
	if err != nil {
		return 0, err
	}
	if err := l.Transfer(ctx, s.Vault, s.Recipient, amount); err != nil {
		return 0, err
	}
	s.TotalWithdrawn = withdrawn
	return amount, nil
}

// Settlement reports what a cancellation moved.
type Settlement struct {
	PaidToRecipient  uint64
	ReturnedToSender uint64
}

// Cancel settles the stream at now: the recipient is paid what it earned and
// has not withdrawn, the rest of the vault goes back to the sender, and the
// stream becomes terminal. The caller runs this inside one transaction so
// both transfers and the flag commit together.
func Cancel(ctx context.Context, l ledger.Ledger, s *models.PaymentStream, caller string, now int64) (Settlement, error) {
	var out Settlement
	if s.IsCancelled {
		return out, ErrStreamCancelled
	}
	if caller != s.Sender {
		return out, ErrUnauthorized
	}
	earned, err := Earned(s, now)
	if err != nil {
		return out, err
	}
	if err := CheckBinding(s); err != nil {
		return out, err
	}
	owed := calculator.SaturatingSub(earned, s.TotalWithdrawn)

	balance, err := l.Balance(ctx, s.Vault)
	if err != nil {
		return out, err
	}
	withdrawn := s.TotalWithdrawn
	if pay := calculator.Min(owed, balance); pay > 0 {
		if withdrawn, err = calculator.Add(withdrawn, pay); err != nil {
			return out, err
		}
		if err := l.Transfer(ctx, s.Vault, s.Recipient, pay); err != nil {
			return out, err
		}
		out.PaidToRecipient = pay
	}

	remaining, err := l.Balance(ctx, s.Vault)
	if err != nil {
		return out, err
	}
	if remaining > 0 {
		if err := l.Transfer(ctx, s.Vault, s.Sender, remaining); err != nil {
			return out, err
		}
		out.ReturnedToSender = remaining
	}

	s.TotalWithdrawn = withdrawn
	s.IsCancelled = true
	return out, nil
}
