package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/models"
	"github.com/mmynk/rally/internal/split"
	"github.com/mmynk/rally/internal/squad"
	"github.com/mmynk/rally/internal/storage"
	"github.com/mmynk/rally/internal/stream"
	"github.com/mmynk/rally/internal/vote"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { store.Close() })
	return store
}

func mint(t *testing.T, store *SQLiteStore, address string, amount uint64) {
	t.Helper()
	err := store.WithTx(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		return tx.Mint(ledger.WithMemo(ctx, "test.mint"), address, amount)
	})
	require.NoError(t, err)
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sq, err := squad.Initialize("alice", "Roommates", []string{"bob"}, 1000, 1_700_000_000)
	require.NoError(t, err)

	t.Run("CreateSquad persists the record", func(t *testing.T) {
		err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			return tx.CreateSquad(ctx, sq)
		})
		require.NoError(t, err)

		got, err := store.GetSquad(ctx, sq.Address)
		require.NoError(t, err)
		assert.Equal(t, sq, got)
	})

	t.Run("CreateSquad rejects a taken address", func(t *testing.T) {
		err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			return tx.CreateSquad(ctx, sq)
		})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("UpdateSquad replaces members", func(t *testing.T) {
		err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			current, err := tx.GetSquad(ctx, sq.Address)
			if err != nil {
				return err
			}
			if err := squad.AddMember(current, "alice", "carol"); err != nil {
				return err
			}
			if err := squad.RemoveMember(current, "alice", "bob"); err != nil {
				return err
			}
			return tx.UpdateSquad(ctx, current)
		})
		require.NoError(t, err)

		carols, err := store.ListSquadsByMember(ctx, "carol")
		require.NoError(t, err)
		require.Len(t, carols, 1)
		assert.Equal(t, sq.Address, carols[0].Address)

		bobs, err := store.ListSquadsByMember(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, bobs)
	})

	t.Run("GetSquad returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetSquad(ctx, "nonexistent")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("GetStream does not return a squad", func(t *testing.T) {
		_, err := store.GetStream(ctx, sq.Address)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLedger(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mint(t, store, "alice", 100)

	t.Run("Transfer moves value and journals it", func(t *testing.T) {
		err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			return tx.Transfer(ledger.WithMemo(ctx, "test.pay"), "alice", "bob", 40)
		})
		require.NoError(t, err)

		alice, err := store.Balance(ctx, "alice")
		require.NoError(t, err)
		bob, err := store.Balance(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, uint64(60), alice)
		assert.Equal(t, uint64(40), bob)

		transfers, err := store.ListTransfers(ctx, "bob", 10)
		require.NoError(t, err)
		require.Len(t, transfers, 1)
		assert.Equal(t, "alice", transfers[0].From)
		assert.Equal(t, uint64(40), transfers[0].Amount)
		assert.Equal(t, "test.pay", transfers[0].Memo)
	})

	t.Run("Transfer rejects overdraft", func(t *testing.T) {
		err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			return tx.Transfer(ctx, "alice", "bob", 61)
		})
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})

	t.Run("Transfer rejects self and zero transfers", func(t *testing.T) {
		err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			return tx.Transfer(ctx, "alice", "alice", 1)
		})
		assert.ErrorIs(t, err, ledger.ErrInvalidTransfer)
	})

	t.Run("Unknown address has zero balance", func(t *testing.T) {
		b, err := store.Balance(ctx, "nobody")
		require.NoError(t, err)
		assert.Zero(t, b)
	})

	t.Run("Balances above MaxInt64 survive storage", func(t *testing.T) {
		mint(t, store, "whale", 1<<63+5)
		b, err := store.Balance(ctx, "whale")
		require.NoError(t, err)
		assert.Equal(t, uint64(1<<63+5), b)
	})

	t.Run("ListTransfers honours limit, newest first", func(t *testing.T) {
		transfers, err := store.ListTransfers(ctx, "alice", 1)
		require.NoError(t, err)
		require.Len(t, transfers, 1)
		assert.Equal(t, "test.pay", transfers[0].Memo)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mint(t, store, "alice", 1_000)

	failure := errors.New("boom")
	var created *models.PaymentStream
	err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		s, err := stream.Create(ctx, tx, stream.Params{
			Sender: "alice", Recipient: "bob", StreamID: 1,
			AmountPerSecond: 1, StartTime: 1_700_000_000, EndTime: 1_700_000_100,
		}, 1_700_000_000)
		if err != nil {
			return err
		}
		created = s
		if err := tx.CreateStream(ctx, s); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)
	require.NotNil(t, created)

	balance, err := store.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000), balance, "funding transfer must be rolled back")

	_, err = store.GetStream(ctx, created.Address)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	transfers, err := store.ListTransfers(ctx, created.Vault, 10)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestStreamsAndProposals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mint(t, store, "alice", 1_000)

	var s *models.PaymentStream
	err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		s, err = stream.Create(ctx, tx, stream.Params{
			Sender: "alice", Recipient: "bob", StreamID: 9,
			AmountPerSecond: 2, StartTime: 1_700_000_000, EndTime: 1_700_000_100,
		}, 1_700_000_000)
		if err != nil {
			return err
		}
		return tx.CreateStream(ctx, s)
	})
	require.NoError(t, err)

	for _, who := range []string{"alice", "bob"} {
		streams, err := store.ListStreamsByParty(ctx, who)
		require.NoError(t, err)
		require.Len(t, streams, 1, who)
		assert.Equal(t, s.Address, streams[0].Address)
	}
	vaultBalance, err := store.Balance(ctx, s.Vault)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), vaultBalance)

	p, err := vote.CreateProposal(vote.Params{
		Squad: "squad-1", Proposer: "alice", ProposalID: 1, Title: "Couch",
		Amount: 10, Recipient: "shop", VotingDeadline: 1_700_000_100,
	}, 1_700_000_000)
	require.NoError(t, err)
	err = store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.CreateProposal(ctx, p); err != nil {
			return err
		}
		if err := vote.CastVote(p, "bob", true, 1_700_000_001); err != nil {
			return err
		}
		return tx.UpdateProposal(ctx, p)
	})
	require.NoError(t, err)

	proposals, err := store.ListProposalsBySquad(ctx, "squad-1")
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, []string{"bob"}, proposals[0].Voters)
	assert.Equal(t, uint32(1), proposals[0].YesVotes)
}

func TestSplits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mint(t, store, "bob", 1_000)

	sp, err := split.Create(split.Params{
		Creator: "alice", Description: "Groceries", TotalAmount: 300,
		Shares: []split.Share{{Debtor: "bob", Amount: 200}, {Debtor: "alice", Amount: 100}},
	}, nil, 1_700_000_000)
	require.NoError(t, err)

	t.Run("CreateSplit assigns an ID and persists the items", func(t *testing.T) {
		err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			return tx.CreateSplit(ctx, sp)
		})
		require.NoError(t, err)
		require.NotEmpty(t, sp.ID)

		got, err := store.GetSplit(ctx, sp.ID)
		require.NoError(t, err)
		assert.Equal(t, sp, got)
	})

	t.Run("UpdateSplit stores the settlement", func(t *testing.T) {
		err := store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			got, err := tx.GetSplit(ctx, sp.ID)
			if err != nil {
				return err
			}
			if _, err := split.Settle(ledger.WithMemo(ctx, "split.settle"), tx, got, "bob", 1_700_000_060); err != nil {
				return err
			}
			return tx.UpdateSplit(ctx, got)
		})
		require.NoError(t, err)

		got, err := store.GetSplit(ctx, sp.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SplitSettled, got.Status)
		assert.True(t, got.Item("bob").Settled)
		assert.Equal(t, int64(1_700_000_060), got.Item("bob").SettledAt)

		balance, err := store.Balance(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, uint64(200), balance)
	})

	t.Run("ListSplitsByParty covers creator and debtors", func(t *testing.T) {
		later, err := split.Create(split.Params{
			Creator: "carol", Description: "Taxi", TotalAmount: 50,
			Shares: []split.Share{{Debtor: "bob", Amount: 50}},
		}, nil, 1_700_000_100)
		require.NoError(t, err)
		err = store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			return tx.CreateSplit(ctx, later)
		})
		require.NoError(t, err)

		bobs, err := store.ListSplitsByParty(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, bobs, 2)
		assert.Equal(t, later.ID, bobs[0].ID, "newest first")
		assert.Len(t, bobs[1].Items, 2)

		alices, err := store.ListSplitsByParty(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, alices, 1)
		assert.Equal(t, sp.ID, alices[0].ID)

		nobody, err := store.ListSplitsByParty(ctx, "dave")
		require.NoError(t, err)
		assert.Empty(t, nobody)
	})

	t.Run("missing split", func(t *testing.T) {
		_, err := store.GetSplit(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		err = store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
			return tx.UpdateSplit(ctx, &models.Split{ID: "missing", Status: models.SplitSettled})
		})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("alice", "Alice", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	byHandle, err := store.GetUserByHandle(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user, byHandle)

	byID, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	err = store.CreateUser(ctx, models.NewUser("alice", "Other", "hash"))
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = store.GetUserByHandle(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
