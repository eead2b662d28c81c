// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/models"
)

var (
	// ErrNotFound is returned when a record or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a record whose address is taken.
	ErrAlreadyExists = errors.New("already exists")
)

// Records reads custody records by address.
type Records interface {
	GetSquad(ctx context.Context, address string) (*models.Squad, error)
	GetStream(ctx context.Context, address string) (*models.PaymentStream, error)
	GetProposal(ctx context.Context, address string) (*models.Proposal, error)
	GetSplit(ctx context.Context, id string) (*models.Split, error)
}

// Tx is a unit of work. Every balance change and record write made through a
// Tx commits together or not at all. A Tx is also the ledger the custody
// modules move value with; each transfer is journaled under the memo carried
// by its context.
type Tx interface {
	Records
	ledger.Ledger

	// Mint credits amount to address out of thin air. Only the dev faucet uses it.
	Mint(ctx context.Context, address string, amount uint64) error

	CreateSquad(ctx context.Context, sq *models.Squad) error
	UpdateSquad(ctx context.Context, sq *models.Squad) error
	CreateStream(ctx context.Context, s *models.PaymentStream) error
	UpdateStream(ctx context.Context, s *models.PaymentStream) error
	CreateProposal(ctx context.Context, p *models.Proposal) error
	UpdateProposal(ctx context.Context, p *models.Proposal) error
	CreateSplit(ctx context.Context, sp *models.Split) error
	UpdateSplit(ctx context.Context, sp *models.Split) error
}

// Store defines the interface for custody storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	Records

	// WithTx runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise. Transactions are serialized.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	ListSquadsByMember(ctx context.Context, identity string) ([]*models.Squad, error)
	ListStreamsByParty(ctx context.Context, identity string) ([]*models.PaymentStream, error)
	ListProposalsBySquad(ctx context.Context, squad string) ([]*models.Proposal, error)
	// ListSplitsByParty returns the splits identity created or owes on, newest first.
	ListSplitsByParty(ctx context.Context, identity string) ([]*models.Split, error)

	// Balance returns the ledger balance of address, 0 when it never held value.
	Balance(ctx context.Context, address string) (uint64, error)

	// ListTransfers returns the newest journal entries touching address.
	ListTransfers(ctx context.Context, address string, limit int) ([]*models.Transfer, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByHandle(ctx context.Context, handle string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Ping checks the database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
