package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/models"
)

// mintSource is the from_address of faucet journal entries.
const mintSource = "mint"

// Balance returns the balance of address, 0 when it has none.
func (q queries) Balance(ctx context.Context, address string) (uint64, error) {
	var amount int64
	err := q.db.QueryRowContext(ctx,
		"SELECT amount FROM balances WHERE address = ?",
		address,
	).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return uint64(amount), nil
}

// ListTransfers returns up to limit journal entries touching address, newest first.
func (q queries) ListTransfers(ctx context.Context, address string, limit int) ([]*models.Transfer, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, from_address, to_address, amount, memo, created_at
		FROM transfers
		WHERE from_address = ? OR to_address = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`,
		address, address, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer rows.Close()

	transfers := []*models.Transfer{}
	for rows.Next() {
		var (
			tr     models.Transfer
			amount int64
		)
		if err := rows.Scan(&tr.ID, &tr.From, &tr.To, &amount, &tr.Memo, &tr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		tr.Amount = uint64(amount)
		transfers = append(transfers, &tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfers: %w", err)
	}
	return transfers, nil
}

func (t *sqliteTx) setBalance(ctx context.Context, address string, amount uint64) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO balances (address, amount) VALUES (?, ?)
		ON CONFLICT(address) DO UPDATE SET amount = excluded.amount`,
		address, int64(amount),
	)
	if err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}
	return nil
}

func (t *sqliteTx) journal(ctx context.Context, from, to string, amount uint64, memo string) error {
	_, err := t.db.ExecContext(ctx,
		"INSERT INTO transfers (id, from_address, to_address, amount, memo, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		uuid.New().String(), from, to, int64(amount), memo, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record transfer: %w", err)
	}
	return nil
}

// Transfer moves amount from one balance to another and journals it.
func (t *sqliteTx) Transfer(ctx context.Context, from, to string, amount uint64) error {
	if amount == 0 || from == to {
		return ledger.ErrInvalidTransfer
	}
	fromBalance, err := t.Balance(ctx, from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return ledger.ErrInsufficientFunds
	}
	toBalance, err := t.Balance(ctx, to)
	if err != nil {
		return err
	}
	credited, err := calculator.Add(toBalance, amount)
	if err != nil {
		return err
	}

	if err := t.setBalance(ctx, from, fromBalance-amount); err != nil {
		return err
	}
	if err := t.setBalance(ctx, to, credited); err != nil {
		return err
	}
	return t.journal(ctx, from, to, amount, ledger.MemoFrom(ctx))
}

// Mint credits amount to address.
func (t *sqliteTx) Mint(ctx context.Context, address string, amount uint64) error {
	if amount == 0 {
		return ledger.ErrInvalidTransfer
	}
	balance, err := t.Balance(ctx, address)
	if err != nil {
		return err
	}
	credited, err := calculator.Add(balance, amount)
	if err != nil {
		return err
	}
	if err := t.setBalance(ctx, address, credited); err != nil {
		return err
	}
	return t.journal(ctx, mintSource, address, amount, ledger.MemoFrom(ctx))
}
