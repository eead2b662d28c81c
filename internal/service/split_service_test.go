package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/rally/pkg/proto"
)

func TestCalculateSplit_EqualSplit(t *testing.T) {
	s := setupTestServer(t, Faucet{})

	resp, err := s.splits.CalculateSplit(context.Background(), connect.NewRequest(&pb.CalculateSplitRequest{
		Total:          101,
		ParticipantIds: []string{"alice", "bob"},
	}))
	require.NoError(t, err)

	require.Len(t, resp.Msg.Splits, 2)
	assert.Equal(t, "alice", resp.Msg.Splits[0].Participant)
	assert.Equal(t, uint64(51), resp.Msg.Splits[0].Total, "the first participant takes the odd unit")
	assert.Equal(t, uint64(50), resp.Msg.Splits[1].Total)
	assert.Equal(t, uint64(101), resp.Msg.Subtotal)
	assert.Zero(t, resp.Msg.Extra)
}

func TestCalculateSplit_WithItems(t *testing.T) {
	s := setupTestServer(t, Faucet{})

	resp, err := s.splits.CalculateSplit(context.Background(), connect.NewRequest(&pb.CalculateSplitRequest{
		Items: []*pb.Item{
			{Description: "Pizza", Amount: 2000, ParticipantIds: []string{"alice"}},
			{Description: "Salad", Amount: 1000, ParticipantIds: []string{"bob"}},
		},
		Total:          3300, // 300 tax
		ParticipantIds: []string{"alice", "bob"},
	}))
	require.NoError(t, err)

	// alice: 2000 subtotal, 200 tax (2000/3000 * 300), 2200 total
	// bob: 1000 subtotal, 100 tax (1000/3000 * 300), 1100 total
	alice, bob := resp.Msg.Splits[0], resp.Msg.Splits[1]
	assert.Equal(t, uint64(2000), alice.Subtotal)
	assert.Equal(t, uint64(200), alice.Extra)
	assert.Equal(t, uint64(2200), alice.Total)
	assert.Equal(t, "0.0000022", alice.TotalSol)
	assert.Equal(t, uint64(1000), bob.Subtotal)
	assert.Equal(t, uint64(100), bob.Extra)
	assert.Equal(t, uint64(1100), bob.Total)

	assert.Equal(t, uint64(3000), resp.Msg.Subtotal)
	assert.Equal(t, uint64(300), resp.Msg.Extra)
}

func TestCalculateSplit_Invalid(t *testing.T) {
	s := setupTestServer(t, Faucet{})

	tests := []struct {
		name      string
		req       *pb.CalculateSplitRequest
		errorCode string
	}{
		{
			name:      "no participants",
			req:       &pb.CalculateSplitRequest{Total: 100},
			errorCode: "NoParticipants",
		},
		{
			name:      "duplicate participant",
			req:       &pb.CalculateSplitRequest{Total: 100, ParticipantIds: []string{"alice", "alice"}},
			errorCode: "DuplicateParticipant",
		},
		{
			name: "unknown participant",
			req: &pb.CalculateSplitRequest{
				Items:          []*pb.Item{{Description: "Wine", Amount: 50, ParticipantIds: []string{"carol"}}},
				Total:          100,
				ParticipantIds: []string{"alice", "bob"},
			},
			errorCode: "UnknownParticipant",
		},
		{
			name: "total below items",
			req: &pb.CalculateSplitRequest{
				Items:          []*pb.Item{{Description: "Wine", Amount: 150, ParticipantIds: []string{"alice"}}},
				Total:          100,
				ParticipantIds: []string{"alice"},
			},
			errorCode: "TotalBelowItems",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.splits.CalculateSplit(context.Background(), connect.NewRequest(tt.req))
			requireCode(t, err, connect.CodeInvalidArgument, tt.errorCode)
		})
	}
}

// dinner creates a 900 unit split alice paid, shared evenly with bob and carol.
func dinner(t *testing.T, s *testServer, alice, bob, carol testUser) *pb.Split {
	t.Helper()
	resp, err := s.splits.CreateSplit(context.Background(), as(alice, &pb.CreateSplitRequest{
		Description: "Dinner",
		TotalAmount: 900,
		Shares: []*pb.SplitShare{
			{Debtor: alice.id, Amount: 300},
			{Debtor: bob.id, Amount: 300},
			{Debtor: carol.id, Amount: 300},
		},
	}))
	require.NoError(t, err)
	return resp.Msg.Split
}

func TestCreateSplit_Shares(t *testing.T) {
	s := setupTestServer(t, Faucet{})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	carol := s.register(t, "carol")

	sp := dinner(t, s, alice, bob, carol)
	assert.NotEmpty(t, sp.Id)
	assert.Equal(t, alice.id, sp.Creator)
	assert.Equal(t, "pending", sp.Status)
	assert.Equal(t, t0.Unix(), sp.CreatedAt)
	assert.Equal(t, uint32(2), sp.RemainingUnsettled)
	require.Len(t, sp.Items, 3)
	assert.True(t, sp.Items[0].Settled, "the creator's own share is settled")
	assert.False(t, sp.Items[1].Settled)

	got, err := s.splits.GetSplit(context.Background(), connect.NewRequest(&pb.GetSplitRequest{SplitId: sp.Id}))
	require.NoError(t, err)
	assert.Equal(t, sp.Description, got.Msg.Split.Description)
	assert.Equal(t, sp.RemainingUnsettled, got.Msg.Split.RemainingUnsettled)
}

func TestCreateSplit_FromItems(t *testing.T) {
	s := setupTestServer(t, Faucet{})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	resp, err := s.splits.CreateSplit(context.Background(), as(alice, &pb.CreateSplitRequest{
		Description: "Steakhouse",
		TotalAmount: 5500,
		Items: []*pb.Item{
			{Description: "Steak", Amount: 5000, ParticipantIds: []string{bob.id}},
		},
		ParticipantIds: []string{alice.id, bob.id},
	}))
	require.NoError(t, err)

	sp := resp.Msg.Split
	require.Len(t, sp.Items, 1, "participants owing nothing are left out")
	assert.Equal(t, bob.id, sp.Items[0].Debtor)
	assert.Equal(t, uint64(5500), sp.Items[0].Amount)
	assert.Equal(t, uint32(1), sp.RemainingUnsettled)
}

func TestCreateSplit_InSquad(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	carol := s.register(t, "carol")

	created, err := s.squads.InitializeSquad(ctx, as(alice, &pb.InitializeSquadRequest{
		Name:    "Flat",
		Members: []string{bob.id},
	}))
	require.NoError(t, err)
	squad := created.Msg.Squad.Address

	resp, err := s.splits.CreateSplit(ctx, as(alice, &pb.CreateSplitRequest{
		Description: "Groceries",
		TotalAmount: 80,
		Squad:       squad,
		Shares:      []*pb.SplitShare{{Debtor: bob.id, Amount: 80}},
	}))
	require.NoError(t, err)
	assert.Equal(t, squad, resp.Msg.Split.Squad)

	_, err = s.splits.CreateSplit(ctx, as(alice, &pb.CreateSplitRequest{
		Description: "Groceries",
		TotalAmount: 80,
		Squad:       squad,
		Shares:      []*pb.SplitShare{{Debtor: carol.id, Amount: 80}},
	}))
	requireCode(t, err, connect.CodePermissionDenied, "NotAMember")

	_, err = s.splits.CreateSplit(ctx, as(carol, &pb.CreateSplitRequest{
		Description: "Groceries",
		TotalAmount: 80,
		Squad:       squad,
		Shares:      []*pb.SplitShare{{Debtor: bob.id, Amount: 80}},
	}))
	requireCode(t, err, connect.CodePermissionDenied, "NotAMember")
}

func TestCreateSplit_Rejections(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	valid := func() *pb.CreateSplitRequest {
		return &pb.CreateSplitRequest{
			Description: "Taxi",
			TotalAmount: 40,
			Shares:      []*pb.SplitShare{{Debtor: bob.id, Amount: 40}},
		}
	}

	_, err := s.splits.CreateSplit(ctx, connect.NewRequest(valid()))
	requireCode(t, err, connect.CodeUnauthenticated, "")

	both := valid()
	both.ParticipantIds = []string{alice.id, bob.id}
	_, err = s.splits.CreateSplit(ctx, as(alice, both))
	requireCode(t, err, connect.CodeInvalidArgument, "")

	mismatch := valid()
	mismatch.TotalAmount = 41
	_, err = s.splits.CreateSplit(ctx, as(alice, mismatch))
	requireCode(t, err, connect.CodeInvalidArgument, "AmountMismatch")

	duplicate := valid()
	duplicate.TotalAmount = 80
	duplicate.Shares = append(duplicate.Shares, &pb.SplitShare{Debtor: bob.id, Amount: 40})
	_, err = s.splits.CreateSplit(ctx, as(alice, duplicate))
	requireCode(t, err, connect.CodeAlreadyExists, "DuplicateDebtor")

	untitled := valid()
	untitled.Description = ""
	_, err = s.splits.CreateSplit(ctx, as(alice, untitled))
	requireCode(t, err, connect.CodeInvalidArgument, "DescriptionRequired")

	empty := valid()
	empty.Shares = nil
	_, err = s.splits.CreateSplit(ctx, as(alice, empty))
	requireCode(t, err, connect.CodeInvalidArgument, "NoItems")

	noSquad := valid()
	noSquad.Squad = "missing"
	_, err = s.splits.CreateSplit(ctx, as(alice, noSquad))
	requireCode(t, err, connect.CodeNotFound, "")

	mine, err := s.splits.ListSplits(ctx, as(alice, &pb.ListSplitsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, mine.Msg.Splits, "rejected splits are not stored")
}

func TestSettleSplit(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	carol := s.register(t, "carol")
	dave := s.register(t, "dave")
	s.fund(t, bob, 1000)

	sp := dinner(t, s, alice, bob, carol)

	settled, err := s.splits.SettleSplit(ctx, as(bob, &pb.SettleSplitRequest{SplitId: sp.Id}))
	require.NoError(t, err)
	assert.Equal(t, uint64(300), settled.Msg.Amount)
	assert.Equal(t, uint32(1), settled.Msg.RemainingUnsettled)
	assert.Equal(t, "pending", settled.Msg.Split.Status)
	assert.Equal(t, uint64(700), s.balance(t, bob.id))
	assert.Equal(t, uint64(300), s.balance(t, alice.id))

	_, err = s.splits.SettleSplit(ctx, as(bob, &pb.SettleSplitRequest{SplitId: sp.Id}))
	requireCode(t, err, connect.CodeFailedPrecondition, "AlreadySettled")

	_, err = s.splits.SettleSplit(ctx, as(dave, &pb.SettleSplitRequest{SplitId: sp.Id}))
	requireCode(t, err, connect.CodePermissionDenied, "NotADebtor")

	_, err = s.splits.SettleSplit(ctx, as(carol, &pb.SettleSplitRequest{SplitId: sp.Id}))
	requireCode(t, err, connect.CodeFailedPrecondition, "InsufficientFunds")

	got, err := s.splits.GetSplit(ctx, connect.NewRequest(&pb.GetSplitRequest{SplitId: sp.Id}))
	require.NoError(t, err)
	assert.False(t, got.Msg.Split.Items[2].Settled, "a failed settlement leaves the share owed")

	s.fund(t, carol, 300)
	settled, err = s.splits.SettleSplit(ctx, as(carol, &pb.SettleSplitRequest{SplitId: sp.Id}))
	require.NoError(t, err)
	assert.Equal(t, "settled", settled.Msg.Split.Status)
	assert.Zero(t, settled.Msg.RemainingUnsettled)
	assert.Equal(t, uint64(600), s.balance(t, alice.id))

	_, err = s.splits.SettleSplit(ctx, as(bob, &pb.SettleSplitRequest{SplitId: uuid.NewString()}))
	requireCode(t, err, connect.CodeNotFound, "")

	_, err = s.splits.SettleSplit(ctx, connect.NewRequest(&pb.SettleSplitRequest{SplitId: sp.Id}))
	requireCode(t, err, connect.CodeUnauthenticated, "")

	transfers, err := s.ledger.ListTransfers(ctx, as(alice, &pb.ListTransfersRequest{}))
	require.NoError(t, err)
	require.Len(t, transfers.Msg.Transfers, 2)
	assert.Equal(t, carol.id, transfers.Msg.Transfers[0].From)
	assert.Equal(t, "split.settle", transfers.Msg.Transfers[0].Memo)

	body := scrape(t, s)
	assert.Contains(t, body, `rally_transferred_total{memo="split.settle"} 600`)
	assert.Contains(t, body, `rally_operations_total{module="split",operation="settle",outcome="rejected"} 3`)
}

func TestListSplits(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	carol := s.register(t, "carol")

	first := dinner(t, s, alice, bob, carol)
	second, err := s.splits.CreateSplit(ctx, as(alice, &pb.CreateSplitRequest{
		Description: "Taxi",
		TotalAmount: 40,
		Shares:      []*pb.SplitShare{{Debtor: bob.id, Amount: 40}},
	}))
	require.NoError(t, err)

	mine, err := s.splits.ListSplits(ctx, as(bob, &pb.ListSplitsRequest{}))
	require.NoError(t, err)
	require.Len(t, mine.Msg.Splits, 2)
	assert.Equal(t, second.Msg.Split.Id, mine.Msg.Splits[0].Id, "newest first")
	assert.Equal(t, first.Id, mine.Msg.Splits[1].Id)

	theirs, err := s.splits.ListSplits(ctx, connect.NewRequest(&pb.ListSplitsRequest{Party: carol.id}))
	require.NoError(t, err)
	require.Len(t, theirs.Msg.Splits, 1)
	assert.Equal(t, first.Id, theirs.Msg.Splits[0].Id)

	_, err = s.splits.ListSplits(ctx, connect.NewRequest(&pb.ListSplitsRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated, "")
}
