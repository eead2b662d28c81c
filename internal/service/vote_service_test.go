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

func TestProposalLifecycle(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	carol := s.register(t, "carol")

	created, err := s.squads.InitializeSquad(ctx, as(alice, &pb.InitializeSquadRequest{
		Name: "Club", Members: []string{bob.id, carol.id}, SpendThreshold: 100,
	}))
	require.NoError(t, err)
	squad := created.Msg.Squad.Address

	deadline := t0.Unix() + 3600
	opened, err := s.votes.CreateProposal(ctx, as(bob, &pb.CreateProposalRequest{
		Squad:          squad,
		ProposalId:     1,
		Title:          "New amp",
		Description:    "The old one caught fire",
		Amount:         750,
		Recipient:      bob.id,
		VotingDeadline: deadline,
	}))
	require.NoError(t, err)
	p := opened.Msg.Proposal
	assert.Equal(t, address.Proposal(squad, 1), p.Address)
	assert.Equal(t, bob.id, p.Proposer)
	assert.Equal(t, "open", p.Status)

	_, err = s.votes.CastVote(ctx, as(alice, &pb.CastVoteRequest{Proposal: p.Address, Vote: true}))
	require.NoError(t, err)
	_, err = s.votes.CastVote(ctx, as(bob, &pb.CastVoteRequest{Proposal: p.Address, Vote: true}))
	require.NoError(t, err)
	_, err = s.votes.CastVote(ctx, as(bob, &pb.CastVoteRequest{Proposal: p.Address, Vote: false}))
	requireCode(t, err, connect.CodeAlreadyExists, "AlreadyVoted")

	_, err = s.votes.ExecuteProposal(ctx, as(alice, &pb.ExecuteProposalRequest{Proposal: p.Address, TotalMembers: 3}))
	requireCode(t, err, connect.CodeFailedPrecondition, "VotingStillOpen")

	// Votes are still accepted at the deadline itself.
	s.clock.Set(time.Unix(deadline, 0))
	voted, err := s.votes.CastVote(ctx, as(carol, &pb.CastVoteRequest{Proposal: p.Address, Vote: false}))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), voted.Msg.Proposal.YesVotes)
	assert.Equal(t, uint32(1), voted.Msg.Proposal.NoVotes)
	assert.ElementsMatch(t, []string{alice.id, bob.id, carol.id}, voted.Msg.Proposal.Voters)

	got, err := s.votes.GetProposal(ctx, connect.NewRequest(&pb.GetProposalRequest{Proposal: p.Address}))
	require.NoError(t, err)
	assert.Equal(t, "passed", got.Msg.Proposal.Status, "quorum comes from the squad when no count is given")

	executed, err := s.votes.ExecuteProposal(ctx, as(carol, &pb.ExecuteProposalRequest{Proposal: p.Address, TotalMembers: 3}))
	require.NoError(t, err)
	assert.True(t, executed.Msg.Proposal.IsExecuted)
	assert.Equal(t, "executed", executed.Msg.Proposal.Status)

	_, err = s.votes.ExecuteProposal(ctx, as(carol, &pb.ExecuteProposalRequest{Proposal: p.Address, TotalMembers: 3}))
	requireCode(t, err, connect.CodeFailedPrecondition, "AlreadyExecuted")

	s.clock.Advance(time.Second)
	_, err = s.votes.CastVote(ctx, as(alice, &pb.CastVoteRequest{Proposal: p.Address, Vote: true}))
	requireCode(t, err, connect.CodeFailedPrecondition, "VotingClosed")

	listed, err := s.votes.ListProposals(ctx, connect.NewRequest(&pb.ListProposalsRequest{Squad: squad}))
	require.NoError(t, err)
	require.Len(t, listed.Msg.Proposals, 1)
	assert.Equal(t, "executed", listed.Msg.Proposals[0].Status)
}

func TestProposalQuorum(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})
	voters := []testUser{
		s.register(t, "voter1"),
		s.register(t, "voter2"),
		s.register(t, "voter3"),
	}

	deadline := t0.Unix() + 60
	opened, err := s.votes.CreateProposal(ctx, as(voters[0], &pb.CreateProposalRequest{
		Squad: "some-squad", ProposalId: 9, Title: "Pizza", Amount: 1, Recipient: voters[0].id, VotingDeadline: deadline,
	}))
	require.NoError(t, err)
	proposal := opened.Msg.Proposal.Address

	for _, v := range voters {
		_, err := s.votes.CastVote(ctx, as(v, &pb.CastVoteRequest{Proposal: proposal, Vote: true}))
		require.NoError(t, err)
	}
	s.clock.Set(time.Unix(deadline, 0))

	_, err = s.votes.ExecuteProposal(ctx, as(voters[0], &pb.ExecuteProposalRequest{Proposal: proposal, TotalMembers: 7}))
	requireCode(t, err, connect.CodeFailedPrecondition, "QuorumNotReached")

	got, err := s.votes.GetProposal(ctx, connect.NewRequest(&pb.GetProposalRequest{Proposal: proposal, TotalMembers: 7}))
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Msg.Proposal.Status)

	executed, err := s.votes.ExecuteProposal(ctx, as(voters[0], &pb.ExecuteProposalRequest{Proposal: proposal, TotalMembers: 5}))
	require.NoError(t, err)
	assert.True(t, executed.Msg.Proposal.IsExecuted)
}

func TestCreateProposalRejections(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})
	alice := s.register(t, "alice")

	valid := func() *pb.CreateProposalRequest {
		return &pb.CreateProposalRequest{
			Squad: "squad", ProposalId: 1, Title: "t", Amount: 1, Recipient: alice.id, VotingDeadline: t0.Unix() + 1,
		}
	}

	tests := []struct {
		name      string
		mutate    func(r *pb.CreateProposalRequest)
		code      connect.Code
		errorCode string
	}{
		{"title too long", func(r *pb.CreateProposalRequest) { r.Title = string(make([]byte, 65)) }, connect.CodeInvalidArgument, "TitleTooLong"},
		{"description too long", func(r *pb.CreateProposalRequest) { r.Description = string(make([]byte, 257)) }, connect.CodeInvalidArgument, "DescriptionTooLong"},
		{"deadline now", func(r *pb.CreateProposalRequest) { r.VotingDeadline = t0.Unix() }, connect.CodeFailedPrecondition, "DeadlineInPast"},
		{"zero amount", func(r *pb.CreateProposalRequest) { r.Amount = 0 }, connect.CodeInvalidArgument, "InvalidAmount"},
		{"missing squad", func(r *pb.CreateProposalRequest) { r.Squad = "" }, connect.CodeInvalidArgument, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := s.votes.CreateProposal(ctx, as(alice, req))
			requireCode(t, err, tt.code, tt.errorCode)
		})
	}

	_, err := s.votes.CreateProposal(ctx, as(alice, valid()))
	require.NoError(t, err)
	_, err = s.votes.CreateProposal(ctx, as(alice, valid()))
	requireCode(t, err, connect.CodeAlreadyExists, "")
}
