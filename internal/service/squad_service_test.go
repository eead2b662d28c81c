package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rally/internal/address"
	pb "github.com/mmynk/rally/pkg/proto"
)

func TestSquadDepositWithdrawFlow(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	s.fund(t, alice, 10_000)

	created, err := s.squads.InitializeSquad(ctx, as(alice, &pb.InitializeSquadRequest{
		Name:           "Road Trip",
		Members:        []string{bob.id},
		SpendThreshold: 1000,
	}))
	require.NoError(t, err)
	sq := created.Msg.Squad
	assert.Equal(t, address.Squad(alice.id), sq.Address)
	assert.Equal(t, address.Vault(sq.Address), sq.Vault)
	assert.Equal(t, alice.id, sq.Authority)
	assert.ElementsMatch(t, []string{alice.id, bob.id}, sq.Members)

	deposited, err := s.squads.Deposit(ctx, as(alice, &pb.DepositRequest{Squad: sq.Address, Amount: 5000}))
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), deposited.Msg.Squad.VaultBalance)
	assert.Equal(t, uint64(5000), deposited.Msg.Squad.TotalDeposited)
	assert.Equal(t, uint64(5000), s.balance(t, alice.id))

	small, err := s.squads.Withdraw(ctx, as(alice, &pb.WithdrawRequest{
		Squad: sq.Address, Recipient: bob.id, Amount: 500,
	}))
	require.NoError(t, err)
	assert.Equal(t, uint64(4500), small.Msg.Squad.VaultBalance)

	_, err = s.squads.Withdraw(ctx, as(alice, &pb.WithdrawRequest{
		Squad: sq.Address, Recipient: bob.id, Amount: 2000,
	}))
	requireCode(t, err, connect.CodePermissionDenied, "VoteRequired")

	large, err := s.squads.Withdraw(ctx, as(alice, &pb.WithdrawRequest{
		Squad: sq.Address, Recipient: bob.id, Amount: 2000, VotePassed: true,
	}))
	require.NoError(t, err)
	assert.Equal(t, uint64(2500), large.Msg.Squad.VaultBalance)
	assert.Equal(t, uint64(5000), large.Msg.Squad.TotalDeposited, "withdrawals never touch total deposited")
	assert.Equal(t, uint64(2500), s.balance(t, bob.id))

	vault, err := s.squads.GetVaultBalance(ctx, connect.NewRequest(&pb.GetVaultBalanceRequest{Squad: sq.Address}))
	require.NoError(t, err)
	assert.Equal(t, uint64(2500), vault.Msg.Balance)
	assert.Equal(t, "0.0000025", vault.Msg.BalanceSol)

	history, err := s.ledger.ListTransfers(ctx, connect.NewRequest(&pb.ListTransfersRequest{Address: sq.Vault}))
	require.NoError(t, err)
	require.Len(t, history.Msg.Transfers, 3)
	assert.Equal(t, "squad.withdraw", history.Msg.Transfers[0].Memo)
	assert.Equal(t, uint64(2000), history.Msg.Transfers[0].Amount)
	assert.Equal(t, "squad.deposit", history.Msg.Transfers[2].Memo)

	count, err := testutil.GatherAndCount(s.metrics.Registry(), "rally_transferred_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "faucet mints are not transfers")
	assert.Contains(t, scrape(t, s), `rally_transferred_total{memo="squad.withdraw"} 2500`,
		"only committed withdrawals are counted")
}

func TestSquadRejections(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	carol := s.register(t, "carol")
	s.fund(t, carol, 1000)

	created, err := s.squads.InitializeSquad(ctx, as(alice, &pb.InitializeSquadRequest{
		Name: "Flat", Members: []string{bob.id}, SpendThreshold: 100,
	}))
	require.NoError(t, err)
	squad := created.Msg.Squad.Address

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := s.squads.Deposit(ctx, connect.NewRequest(&pb.DepositRequest{Squad: squad, Amount: 1}))
		requireCode(t, err, connect.CodeUnauthenticated, "")
	})

	t.Run("second squad for the same authority", func(t *testing.T) {
		_, err := s.squads.InitializeSquad(ctx, as(alice, &pb.InitializeSquadRequest{
			Name: "Other", SpendThreshold: 100,
		}))
		requireCode(t, err, connect.CodeAlreadyExists, "")
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := s.squads.InitializeSquad(ctx, as(bob, &pb.InitializeSquadRequest{
			Name: "this squad name is definitely too long", SpendThreshold: 100,
		}))
		requireCode(t, err, connect.CodeInvalidArgument, "NameTooLong")
	})

	t.Run("non-member deposit", func(t *testing.T) {
		_, err := s.squads.Deposit(ctx, as(carol, &pb.DepositRequest{Squad: squad, Amount: 10}))
		requireCode(t, err, connect.CodePermissionDenied, "NotAMember")
		assert.Equal(t, uint64(1000), s.balance(t, carol.id))
	})

	t.Run("member deposit without funds", func(t *testing.T) {
		_, err := s.squads.Deposit(ctx, as(bob, &pb.DepositRequest{Squad: squad, Amount: 10}))
		requireCode(t, err, connect.CodeFailedPrecondition, "InsufficientFunds")
	})

	t.Run("withdraw more than the vault holds", func(t *testing.T) {
		_, err := s.squads.Withdraw(ctx, as(bob, &pb.WithdrawRequest{
			Squad: squad, Recipient: bob.id, Amount: 50,
		}))
		requireCode(t, err, connect.CodeFailedPrecondition, "InsufficientFunds")
	})

	t.Run("only the authority manages members", func(t *testing.T) {
		_, err := s.squads.AddMember(ctx, as(bob, &pb.AddMemberRequest{Squad: squad, Member: carol.id}))
		requireCode(t, err, connect.CodePermissionDenied, "Unauthorized")
	})

	t.Run("authority cannot be removed", func(t *testing.T) {
		_, err := s.squads.RemoveMember(ctx, as(alice, &pb.RemoveMemberRequest{Squad: squad, Member: alice.id}))
		requireCode(t, err, connect.CodeInvalidArgument, "CannotRemoveAuthority")
	})

	t.Run("unknown squad", func(t *testing.T) {
		_, err := s.squads.GetSquad(ctx, connect.NewRequest(&pb.GetSquadRequest{Squad: "missing"}))
		requireCode(t, err, connect.CodeNotFound, "")
	})
}

func TestSquadMembership(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	carol := s.register(t, "carol")

	created, err := s.squads.InitializeSquad(ctx, as(alice, &pb.InitializeSquadRequest{
		Name: "Band", Members: []string{bob.id}, SpendThreshold: 1,
	}))
	require.NoError(t, err)
	squad := created.Msg.Squad.Address

	added, err := s.squads.AddMember(ctx, as(alice, &pb.AddMemberRequest{Squad: squad, Member: carol.id}))
	require.NoError(t, err)
	assert.Len(t, added.Msg.Squad.Members, 3)

	_, err = s.squads.AddMember(ctx, as(alice, &pb.AddMemberRequest{Squad: squad, Member: carol.id}))
	requireCode(t, err, connect.CodeAlreadyExists, "AlreadyMember")

	mine, err := s.squads.ListSquads(ctx, as(carol, &pb.ListSquadsRequest{}))
	require.NoError(t, err)
	require.Len(t, mine.Msg.Squads, 1)
	assert.Equal(t, squad, mine.Msg.Squads[0].Address)

	removed, err := s.squads.RemoveMember(ctx, as(alice, &pb.RemoveMemberRequest{Squad: squad, Member: carol.id}))
	require.NoError(t, err)
	assert.NotContains(t, removed.Msg.Squad.Members, carol.id)

	_, err = s.squads.RemoveMember(ctx, as(alice, &pb.RemoveMemberRequest{Squad: squad, Member: carol.id}))
	requireCode(t, err, connect.CodePermissionDenied, "NotAMember")

	mine, err = s.squads.ListSquads(ctx, as(carol, &pb.ListSquadsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, mine.Msg.Squads)

	_, err = s.squads.ListSquads(ctx, connect.NewRequest(&pb.ListSquadsRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated, "")
}

func TestInitializeSquadReportsVaultBalance(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{Enabled: true})
	alice := s.register(t, "alice")

	vault := address.Vault(address.Squad(alice.id))
	_, err := s.ledger.Fund(ctx, as(alice, &pb.FundRequest{Address: vault, Amount: 750}))
	require.NoError(t, err)

	created, err := s.squads.InitializeSquad(ctx, as(alice, &pb.InitializeSquadRequest{
		Name: "Prefunded", SpendThreshold: 100,
	}))
	require.NoError(t, err)
	assert.Equal(t, vault, created.Msg.Squad.Vault)
	assert.Equal(t, uint64(750), created.Msg.Squad.VaultBalance)
	assert.Zero(t, created.Msg.Squad.TotalDeposited)
}
