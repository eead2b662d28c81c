package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/rally/pkg/proto"
)

func TestFaucet(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		s := setupTestServer(t, Faucet{})
		alice := s.register(t, "alice")

		_, err := s.ledger.Fund(ctx, as(alice, &pb.FundRequest{Amount: 1}))
		requireCode(t, err, connect.CodeFailedPrecondition, "")
		assert.Zero(t, s.balance(t, alice.id))
	})

	t.Run("capped", func(t *testing.T) {
		s := setupTestServer(t, Faucet{Enabled: true, Max: 1_000_000_000})
		alice := s.register(t, "alice")
		bob := s.register(t, "bob")

		funded, err := s.ledger.Fund(ctx, as(alice, &pb.FundRequest{Amount: 1_000_000_000}))
		require.NoError(t, err)
		assert.Equal(t, alice.id, funded.Msg.Address)
		assert.Equal(t, "1", funded.Msg.BalanceSol)

		_, err = s.ledger.Fund(ctx, as(alice, &pb.FundRequest{Amount: 1_000_000_001}))
		requireCode(t, err, connect.CodeInvalidArgument, "")

		_, err = s.ledger.Fund(ctx, as(alice, &pb.FundRequest{}))
		requireCode(t, err, connect.CodeInvalidArgument, "")

		gift, err := s.ledger.Fund(ctx, as(alice, &pb.FundRequest{Address: bob.id, Amount: 5}))
		require.NoError(t, err)
		assert.Equal(t, uint64(5), gift.Msg.Balance)

		_, err = s.ledger.Fund(ctx, connect.NewRequest(&pb.FundRequest{Amount: 5}))
		requireCode(t, err, connect.CodeUnauthenticated, "")
	})
}

func TestListTransfers(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	for range 3 {
		s.fund(t, alice, 10)
	}

	mine, err := s.ledger.ListTransfers(ctx, as(alice, &pb.ListTransfersRequest{}))
	require.NoError(t, err)
	require.Len(t, mine.Msg.Transfers, 3)
	assert.Equal(t, "mint", mine.Msg.Transfers[0].From)
	assert.Equal(t, "ledger.fund", mine.Msg.Transfers[0].Memo)

	limited, err := s.ledger.ListTransfers(ctx, as(alice, &pb.ListTransfersRequest{Limit: 2}))
	require.NoError(t, err)
	assert.Len(t, limited.Msg.Transfers, 2)

	_, err = s.ledger.ListTransfers(ctx, as(alice, &pb.ListTransfersRequest{Limit: -1}))
	requireCode(t, err, connect.CodeInvalidArgument, "")

	_, err = s.ledger.ListTransfers(ctx, connect.NewRequest(&pb.ListTransfersRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated, "")

	assert.Equal(t, uint64(30), s.balance(t, alice.id))
}

func TestSend(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	s.fund(t, alice, 1000)

	sent, err := s.ledger.Send(ctx, as(alice, &pb.SendRequest{Recipient: bob.id, Amount: 400, Memo: "rent"}))
	require.NoError(t, err)
	assert.Equal(t, alice.id, sent.Msg.Transfer.From)
	assert.Equal(t, bob.id, sent.Msg.Transfer.To)
	assert.Equal(t, uint64(400), sent.Msg.Transfer.Amount)
	assert.Equal(t, "ledger.send: rent", sent.Msg.Transfer.Memo)
	assert.Equal(t, t0.Unix(), sent.Msg.Transfer.CreatedAt)
	assert.Equal(t, uint64(600), sent.Msg.Balance)
	assert.Equal(t, uint64(400), s.balance(t, bob.id))

	_, err = s.ledger.Send(ctx, as(bob, &pb.SendRequest{Recipient: alice.id, Amount: 100}))
	require.NoError(t, err)

	journal, err := s.ledger.ListTransfers(ctx, as(bob, &pb.ListTransfersRequest{}))
	require.NoError(t, err)
	require.Len(t, journal.Msg.Transfers, 2)
	assert.Equal(t, "ledger.send", journal.Msg.Transfers[0].Memo)
	assert.Equal(t, "ledger.send: rent", journal.Msg.Transfers[1].Memo)

	_, err = s.ledger.Send(ctx, as(alice, &pb.SendRequest{Recipient: bob.id, Amount: 10_000}))
	requireCode(t, err, connect.CodeFailedPrecondition, "InsufficientFunds")

	_, err = s.ledger.Send(ctx, as(alice, &pb.SendRequest{Recipient: alice.id, Amount: 1}))
	requireCode(t, err, connect.CodeInvalidArgument, "InvalidTransfer")

	_, err = s.ledger.Send(ctx, as(alice, &pb.SendRequest{Recipient: bob.id}))
	requireCode(t, err, connect.CodeInvalidArgument, "InvalidTransfer")

	_, err = s.ledger.Send(ctx, as(alice, &pb.SendRequest{Amount: 1}))
	requireCode(t, err, connect.CodeInvalidArgument, "")

	_, err = s.ledger.Send(ctx, as(alice, &pb.SendRequest{Recipient: bob.id, Amount: 1, Memo: strings.Repeat("x", 129)}))
	requireCode(t, err, connect.CodeInvalidArgument, "")

	_, err = s.ledger.Send(ctx, connect.NewRequest(&pb.SendRequest{Recipient: bob.id, Amount: 1}))
	requireCode(t, err, connect.CodeUnauthenticated, "")

	assert.Equal(t, uint64(700), s.balance(t, alice.id))
	assert.Equal(t, uint64(300), s.balance(t, bob.id))
	assert.Contains(t, scrape(t, s), `rally_transferred_total{memo="ledger.send"} 500`,
		"the caller's memo stays out of metric labels")
}
