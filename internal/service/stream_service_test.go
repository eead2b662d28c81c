package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rally/internal/address"
	pb "github.com/mmynk/rally/pkg/proto"
)

func TestStreamWithdrawAndCancel(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	s.fund(t, alice, 10_000)

	created, err := s.streams.CreateStream(ctx, as(alice, &pb.CreateStreamRequest{
		Recipient:       bob.id,
		StreamId:        1,
		AmountPerSecond: 10,
		StartTime:       t0.Unix(),
		EndTime:         t0.Unix() + 100,
	}))
	require.NoError(t, err)
	ps := created.Msg.Stream
	assert.Equal(t, address.Stream(alice.id, 1), ps.Address)
	assert.Equal(t, uint64(1000), ps.TotalDeposited)
	assert.Equal(t, uint64(1000), s.balance(t, ps.Vault))
	assert.Equal(t, uint64(9000), s.balance(t, alice.id))

	s.clock.Advance(30 * time.Second)

	preview, err := s.streams.GetStream(ctx, connect.NewRequest(&pb.GetStreamRequest{Stream: ps.Address}))
	require.NoError(t, err)
	assert.Equal(t, uint64(300), preview.Msg.Stream.Earned)
	assert.Equal(t, uint64(300), preview.Msg.Stream.Withdrawable)
	assert.Equal(t, t0.Unix()+30, preview.Msg.Stream.AsOf)

	_, err = s.streams.WithdrawFromStream(ctx, as(alice, &pb.WithdrawFromStreamRequest{Stream: ps.Address}))
	requireCode(t, err, connect.CodePermissionDenied, "Unauthorized")

	withdrawn, err := s.streams.WithdrawFromStream(ctx, as(bob, &pb.WithdrawFromStreamRequest{Stream: ps.Address}))
	require.NoError(t, err)
	assert.Equal(t, uint64(300), withdrawn.Msg.Amount)
	assert.Equal(t, uint64(300), withdrawn.Msg.Stream.TotalWithdrawn)
	assert.Equal(t, uint64(700), withdrawn.Msg.Stream.VaultBalance)

	_, err = s.streams.WithdrawFromStream(ctx, as(bob, &pb.WithdrawFromStreamRequest{Stream: ps.Address}))
	requireCode(t, err, connect.CodeFailedPrecondition, "NothingToWithdraw")

	s.clock.Advance(20 * time.Second)

	_, err = s.streams.CancelStream(ctx, as(bob, &pb.CancelStreamRequest{Stream: ps.Address}))
	requireCode(t, err, connect.CodePermissionDenied, "Unauthorized")

	cancelled, err := s.streams.CancelStream(ctx, as(alice, &pb.CancelStreamRequest{Stream: ps.Address}))
	require.NoError(t, err)
	assert.Equal(t, uint64(200), cancelled.Msg.PaidToRecipient)
	assert.Equal(t, uint64(500), cancelled.Msg.ReturnedToSender)
	assert.True(t, cancelled.Msg.Stream.IsCancelled)
	assert.Equal(t, uint64(500), cancelled.Msg.Stream.TotalWithdrawn)
	assert.Zero(t, cancelled.Msg.Stream.Withdrawable)

	assert.Zero(t, s.balance(t, ps.Vault))
	assert.Equal(t, uint64(500), s.balance(t, bob.id))
	assert.Equal(t, uint64(9500), s.balance(t, alice.id))

	_, err = s.streams.CancelStream(ctx, as(alice, &pb.CancelStreamRequest{Stream: ps.Address}))
	requireCode(t, err, connect.CodeFailedPrecondition, "StreamCancelled")
	_, err = s.streams.WithdrawFromStream(ctx, as(bob, &pb.WithdrawFromStreamRequest{Stream: ps.Address}))
	requireCode(t, err, connect.CodeFailedPrecondition, "StreamCancelled")

	history, err := s.ledger.ListTransfers(ctx, connect.NewRequest(&pb.ListTransfersRequest{Address: ps.Vault}))
	require.NoError(t, err)
	require.Len(t, history.Msg.Transfers, 4)
	assert.Equal(t, "stream.cancel", history.Msg.Transfers[0].Memo)
	assert.Equal(t, alice.id, history.Msg.Transfers[0].To, "the sweep follows the recipient payment")
	assert.Equal(t, bob.id, history.Msg.Transfers[1].To)
}

func TestStreamCreateRejections(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	s.fund(t, alice, 1000)

	start := t0.Unix()
	tests := []struct {
		name      string
		req       *pb.CreateStreamRequest
		code      connect.Code
		errorCode string
	}{
		{
			name:      "start too far in the past",
			req:       &pb.CreateStreamRequest{Recipient: bob.id, StreamId: 1, AmountPerSecond: 1, StartTime: start - 61, EndTime: start + 10},
			code:      connect.CodeFailedPrecondition,
			errorCode: "InvalidStartTime",
		},
		{
			name:      "end before start",
			req:       &pb.CreateStreamRequest{Recipient: bob.id, StreamId: 1, AmountPerSecond: 1, StartTime: start, EndTime: start},
			code:      connect.CodeInvalidArgument,
			errorCode: "InvalidEndTime",
		},
		{
			name:      "zero rate",
			req:       &pb.CreateStreamRequest{Recipient: bob.id, StreamId: 1, StartTime: start, EndTime: start + 10},
			code:      connect.CodeInvalidArgument,
			errorCode: "InvalidRate",
		},
		{
			name:      "entitlement overflows",
			req:       &pb.CreateStreamRequest{Recipient: bob.id, StreamId: 1, AmountPerSecond: 1 << 62, StartTime: start, EndTime: start + 10},
			code:      connect.CodeOutOfRange,
			errorCode: "Overflow",
		},
		{
			name:      "sender cannot cover the entitlement",
			req:       &pb.CreateStreamRequest{Recipient: bob.id, StreamId: 1, AmountPerSecond: 100, StartTime: start, EndTime: start + 11},
			code:      connect.CodeFailedPrecondition,
			errorCode: "InsufficientFunds",
		},
		{
			name: "missing recipient",
			req:  &pb.CreateStreamRequest{StreamId: 1, AmountPerSecond: 1, StartTime: start, EndTime: start + 10},
			code: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.streams.CreateStream(ctx, as(alice, tt.req))
			requireCode(t, err, tt.code, tt.errorCode)
			assert.Equal(t, uint64(1000), s.balance(t, alice.id), "rejected creates move nothing")
		})
	}
}

func TestStreamDuplicateIDRollsBack(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	s.fund(t, alice, 1000)

	req := &pb.CreateStreamRequest{
		Recipient: bob.id, StreamId: 7, AmountPerSecond: 1, StartTime: t0.Unix(), EndTime: t0.Unix() + 100,
	}
	_, err := s.streams.CreateStream(ctx, as(alice, req))
	require.NoError(t, err)

	_, err = s.streams.CreateStream(ctx, as(alice, req))
	requireCode(t, err, connect.CodeAlreadyExists, "")
	assert.Equal(t, uint64(900), s.balance(t, alice.id), "the second deposit was rolled back")

	mine, err := s.streams.ListStreams(ctx, as(bob, &pb.ListStreamsRequest{}))
	require.NoError(t, err)
	require.Len(t, mine.Msg.Streams, 1)
	assert.Equal(t, uint64(7), mine.Msg.Streams[0].StreamId)

	sent, err := s.streams.ListStreams(ctx, connect.NewRequest(&pb.ListStreamsRequest{Party: alice.id}))
	require.NoError(t, err)
	assert.Len(t, sent.Msg.Streams, 1)
}

func TestStreamWithdrawAfterEndIsCapped(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	s.fund(t, alice, 1000)

	created, err := s.streams.CreateStream(ctx, as(alice, &pb.CreateStreamRequest{
		Recipient: bob.id, StreamId: 1, AmountPerSecond: 5, StartTime: t0.Unix() + 10, EndTime: t0.Unix() + 110,
	}))
	require.NoError(t, err)
	streamAddr := created.Msg.Stream.Address

	_, err = s.streams.WithdrawFromStream(ctx, as(bob, &pb.WithdrawFromStreamRequest{Stream: streamAddr}))
	requireCode(t, err, connect.CodeFailedPrecondition, "NothingToWithdraw")

	s.clock.Advance(time.Hour)
	withdrawn, err := s.streams.WithdrawFromStream(ctx, as(bob, &pb.WithdrawFromStreamRequest{Stream: streamAddr}))
	require.NoError(t, err)
	assert.Equal(t, uint64(500), withdrawn.Msg.Amount)
	assert.Equal(t, "0.0000005", withdrawn.Msg.AmountSol)

	cancelled, err := s.streams.CancelStream(ctx, as(alice, &pb.CancelStreamRequest{Stream: streamAddr}))
	require.NoError(t, err)
	assert.Zero(t, cancelled.Msg.PaidToRecipient)
	assert.Zero(t, cancelled.Msg.ReturnedToSender)
	assert.True(t, cancelled.Msg.Stream.IsCancelled)
}
