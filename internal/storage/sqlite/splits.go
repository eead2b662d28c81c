package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/storage"
)

const splitColumns = "id, creator, description, total_amount, squad, status, created_at"

// CreateSplit persists a new split and its items.
func (t *sqliteTx) CreateSplit(ctx context.Context, sp *models.Split) error {
	// Generate ID if not set
	if sp.ID == "" {
		sp.ID = uuid.New().String()
	}

	var squad interface{} = nil
	if sp.Squad != "" {
		squad = sp.Squad
	}

	_, err := t.db.ExecContext(ctx,
		`INSERT INTO splits (`+splitColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sp.ID, sp.Creator, sp.Description, int64(sp.TotalAmount), squad, sp.Status, sp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert split: %w", err)
	}

	for i, item := range sp.Items {
		_, err := t.db.ExecContext(ctx,
			`INSERT INTO split_items (split_id, position, debtor, amount, settled, settled_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			sp.ID, i, item.Debtor, int64(item.Amount), item.Settled, item.SettledAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split item: %w", err)
		}
	}

	return nil
}

// GetSplit retrieves a split and its items by ID.
func (q queries) GetSplit(ctx context.Context, id string) (*models.Split, error) {
	sp, err := scanSplit(q.db.QueryRowContext(ctx,
		`SELECT `+splitColumns+` FROM splits WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("split %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}

	if sp.Items, err = q.splitItems(ctx, sp.ID); err != nil {
		return nil, err
	}
	return sp, nil
}

// UpdateSplit writes back a split's status and the settlement of its items.
func (t *sqliteTx) UpdateSplit(ctx context.Context, sp *models.Split) error {
	result, err := t.db.ExecContext(ctx,
		"UPDATE splits SET status = ? WHERE id = ?",
		sp.Status, sp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update split: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("split %s: %w", sp.ID, storage.ErrNotFound)
	}

	for _, item := range sp.Items {
		_, err := t.db.ExecContext(ctx,
			"UPDATE split_items SET settled = ?, settled_at = ? WHERE split_id = ? AND debtor = ?",
			item.Settled, item.SettledAt, sp.ID, item.Debtor,
		)
		if err != nil {
			return fmt.Errorf("failed to update split item: %w", err)
		}
	}

	return nil
}

// ListSplitsByParty returns the splits identity created or owes on, newest
// first.
func (q queries) ListSplitsByParty(ctx context.Context, identity string) ([]*models.Split, error) {
	splits, err := q.listSplits(ctx, `
		SELECT `+splitColumns+` FROM splits
		WHERE creator = ? OR id IN (SELECT split_id FROM split_items WHERE debtor = ?)
		ORDER BY created_at DESC, rowid DESC`,
		identity, identity,
	)
	if err != nil {
		return nil, err
	}

	// Items are loaded once the split rows are closed; the store has a
	// single connection.
	for _, sp := range splits {
		if sp.Items, err = q.splitItems(ctx, sp.ID); err != nil {
			return nil, err
		}
	}
	return splits, nil
}

func (q queries) listSplits(ctx context.Context, query string, args ...any) ([]*models.Split, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	splits := []*models.Split{}
	for rows.Next() {
		sp, err := scanSplit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

func (q queries) splitItems(ctx context.Context, splitID string) ([]models.SplitItem, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT debtor, amount, settled, settled_at FROM split_items
		 WHERE split_id = ? ORDER BY position`,
		splitID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list split items: %w", err)
	}
	defer rows.Close()

	var items []models.SplitItem
	for rows.Next() {
		var (
			item   models.SplitItem
			amount int64
		)
		if err := rows.Scan(&item.Debtor, &amount, &item.Settled, &item.SettledAt); err != nil {
			return nil, fmt.Errorf("failed to scan split item: %w", err)
		}
		item.Amount = uint64(amount)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split items: %w", err)
	}
	return items, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSplit(row rowScanner) (*models.Split, error) {
	var (
		sp    models.Split
		total int64
		squad sql.NullString
	)
	if err := row.Scan(&sp.ID, &sp.Creator, &sp.Description, &total, &squad, &sp.Status, &sp.CreatedAt); err != nil {
		return nil, err
	}
	sp.TotalAmount = uint64(total)
	if squad.Valid {
		sp.Squad = squad.String
	}
	return &sp, nil
}
