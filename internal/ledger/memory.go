package ledger

import (
	"context"
	"sync"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/models"
)

// Memory is an in-process Ledger. It keeps a journal of transfers so tests
// can assert on what moved.
type Memory struct {
	mu       sync.Mutex
	balances map[string]uint64
	journal  []models.Transfer
}

// NewMemory returns an empty ledger.
func NewMemory() *Memory {
	return &Memory{balances: make(map[string]uint64)}
}

// Mint credits address with amount out of thin air.
func (m *Memory) Mint(address string, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, err := calculator.Add(m.balances[address], amount)
	if err != nil {
		return err
	}
	m.balances[address] = next
	return nil
}

// Balance implements Ledger.
func (m *Memory) Balance(_ context.Context, address string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[address], nil
}

// Transfer implements Ledger.
func (m *Memory) Transfer(ctx context.Context, from, to string, amount uint64) error {
	if amount == 0 || from == to {
		return ErrInvalidTransfer
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	src := m.balances[from]
	if src < amount {
		return ErrInsufficientFunds
	}
	dst, err := calculator.Add(m.balances[to], amount)
	if err != nil {
		return err
	}
	m.balances[from] = src - amount
	m.balances[to] = dst
	m.journal = append(m.journal, models.Transfer{From: from, To: to, Amount: amount, Memo: MemoFrom(ctx)})
	return nil
}

// Journal returns a copy of every transfer made so far.
func (m *Memory) Journal() []models.Transfer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Transfer, len(m.journal))
	copy(out, m.journal)
	return out
}
