package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/rally/internal/layout"
	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/storage"
)

const (
	kindSquad    = "squad"
	kindStream   = "stream"
	kindProposal = "proposal"

	roleMember    = "member"
	roleSender    = "sender"
	roleRecipient = "recipient"
	roleSquad     = "squad"
)

type party struct {
	identity string
	role     string
}

func squadParties(sq *models.Squad) []party {
	parties := make([]party, 0, len(sq.Members))
	for _, m := range sq.Members {
		parties = append(parties, party{identity: m, role: roleMember})
	}
	return parties
}

func streamParties(s *models.PaymentStream) []party {
	return []party{{identity: s.Sender, role: roleSender}, {identity: s.Recipient, role: roleRecipient}}
}

func proposalParties(p *models.Proposal) []party {
	return []party{{identity: p.Squad, role: roleSquad}}
}

// repeatPlaceholder returns ", ?" repeated n times, for IN clauses.
func repeatPlaceholder(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(", ?", n)
}

// getAccount loads the encoded record at address, checking its kind.
func (q queries) getAccount(ctx context.Context, address, kind string) ([]byte, error) {
	var (
		gotKind string
		data    []byte
	)
	err := q.db.QueryRowContext(ctx,
		"SELECT kind, data FROM accounts WHERE address = ?",
		address,
	).Scan(&gotKind, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", kind, address, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if gotKind != kind {
		return nil, fmt.Errorf("%s %s: %w", kind, address, storage.ErrNotFound)
	}
	return data, nil
}

// listAccounts loads every record of kind that has a party matching identity
// in one of roles, oldest first.
func (q queries) listAccounts(ctx context.Context, kind, identity string, roles ...string) ([][]byte, error) {
	query := `
		SELECT DISTINCT a.address, a.data, a.created_at
		FROM accounts a
		JOIN account_parties p ON p.address = a.address
		WHERE a.kind = ? AND p.identity = ? AND p.role IN (?` + repeatPlaceholder(len(roles)-1) + `)
		ORDER BY a.created_at, a.address`

	args := make([]any, 0, len(roles)+2)
	args = append(args, kind, identity)
	for _, r := range roles {
		args = append(args, r)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var (
			address   string
			data      []byte
			createdAt int64
		)
		if err := rows.Scan(&address, &data, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		out = append(out, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %ss: %w", kind, err)
	}
	return out, nil
}

func (q queries) GetSquad(ctx context.Context, address string) (*models.Squad, error) {
	data, err := q.getAccount(ctx, address, kindSquad)
	if err != nil {
		return nil, err
	}
	return layout.DecodeSquad(data)
}

func (q queries) GetStream(ctx context.Context, address string) (*models.PaymentStream, error) {
	data, err := q.getAccount(ctx, address, kindStream)
	if err != nil {
		return nil, err
	}
	return layout.DecodeStream(data)
}

func (q queries) GetProposal(ctx context.Context, address string) (*models.Proposal, error) {
	data, err := q.getAccount(ctx, address, kindProposal)
	if err != nil {
		return nil, err
	}
	return layout.DecodeProposal(data)
}

// ListSquadsByMember returns the squads identity belongs to.
func (q queries) ListSquadsByMember(ctx context.Context, identity string) ([]*models.Squad, error) {
	blobs, err := q.listAccounts(ctx, kindSquad, identity, roleMember)
	if err != nil {
		return nil, err
	}
	squads := make([]*models.Squad, 0, len(blobs))
	for _, b := range blobs {
		sq, err := layout.DecodeSquad(b)
		if err != nil {
			return nil, err
		}
		squads = append(squads, sq)
	}
	return squads, nil
}

// ListStreamsByParty returns the streams identity sends or receives.
func (q queries) ListStreamsByParty(ctx context.Context, identity string) ([]*models.PaymentStream, error) {
	blobs, err := q.listAccounts(ctx, kindStream, identity, roleSender, roleRecipient)
	if err != nil {
		return nil, err
	}
	streams := make([]*models.PaymentStream, 0, len(blobs))
	for _, b := range blobs {
		s, err := layout.DecodeStream(b)
		if err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}
	return streams, nil
}

// ListProposalsBySquad returns the proposals filed against squad.
func (q queries) ListProposalsBySquad(ctx context.Context, squad string) ([]*models.Proposal, error) {
	blobs, err := q.listAccounts(ctx, kindProposal, squad, roleSquad)
	if err != nil {
		return nil, err
	}
	proposals := make([]*models.Proposal, 0, len(blobs))
	for _, b := range blobs {
		p, err := layout.DecodeProposal(b)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}

// createAccount inserts a new record and its parties.
func (t *sqliteTx) createAccount(ctx context.Context, address, kind string, data []byte, createdAt int64, parties []party) error {
	var exists int
	err := t.db.QueryRowContext(ctx, "SELECT 1 FROM accounts WHERE address = ?", address).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%s %s: %w", kind, address, storage.ErrAlreadyExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check %s: %w", kind, err)
	}

	_, err = t.db.ExecContext(ctx,
		"INSERT INTO accounts (address, kind, data, created_at) VALUES (?, ?, ?, ?)",
		address, kind, data, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert %s: %w", kind, err)
	}
	return t.insertParties(ctx, address, parties)
}

// updateAccount rewrites the record at address and replaces its parties.
func (t *sqliteTx) updateAccount(ctx context.Context, address, kind string, data []byte, parties []party) error {
	result, err := t.db.ExecContext(ctx,
		"UPDATE accounts SET data = ? WHERE address = ? AND kind = ?",
		data, address, kind,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, address, storage.ErrNotFound)
	}

	if _, err := t.db.ExecContext(ctx, "DELETE FROM account_parties WHERE address = ?", address); err != nil {
		return fmt.Errorf("failed to clear %s parties: %w", kind, err)
	}
	return t.insertParties(ctx, address, parties)
}

func (t *sqliteTx) insertParties(ctx context.Context, address string, parties []party) error {
	for _, p := range parties {
		_, err := t.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO account_parties (address, identity, role) VALUES (?, ?, ?)",
			address, p.identity, p.role,
		)
		if err != nil {
			return fmt.Errorf("failed to insert party: %w", err)
		}
	}
	return nil
}

func (t *sqliteTx) CreateSquad(ctx context.Context, sq *models.Squad) error {
	data, err := layout.EncodeSquad(sq)
	if err != nil {
		return err
	}
	return t.createAccount(ctx, sq.Address, kindSquad, data, sq.CreatedAt, squadParties(sq))
}

func (t *sqliteTx) UpdateSquad(ctx context.Context, sq *models.Squad) error {
	data, err := layout.EncodeSquad(sq)
	if err != nil {
		return err
	}
	return t.updateAccount(ctx, sq.Address, kindSquad, data, squadParties(sq))
}

func (t *sqliteTx) CreateStream(ctx context.Context, s *models.PaymentStream) error {
	data, err := layout.EncodeStream(s)
	if err != nil {
		return err
	}
	return t.createAccount(ctx, s.Address, kindStream, data, s.CreatedAt, streamParties(s))
}

func (t *sqliteTx) UpdateStream(ctx context.Context, s *models.PaymentStream) error {
	data, err := layout.EncodeStream(s)
	if err != nil {
		return err
	}
	return t.updateAccount(ctx, s.Address, kindStream, data, streamParties(s))
}

func (t *sqliteTx) CreateProposal(ctx context.Context, p *models.Proposal) error {
	data, err := layout.EncodeProposal(p)
	if err != nil {
		return err
	}
	return t.createAccount(ctx, p.Address, kindProposal, data, p.CreatedAt, proposalParties(p))
}

func (t *sqliteTx) UpdateProposal(ctx context.Context, p *models.Proposal) error {
	data, err := layout.EncodeProposal(p)
	if err != nil {
		return err
	}
	return t.updateAccount(ctx, p.Address, kindProposal, data, proposalParties(p))
}
