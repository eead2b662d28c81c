package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/rally/pkg/proto"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})

	registered, err := s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Handle: "alice", DisplayName: "Alice", Password: "correct horse",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Msg.Token)
	assert.Equal(t, "Alice", registered.Msg.User.DisplayName)

	_, err = s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Handle: "alice", Password: "another password",
	}))
	requireCode(t, err, connect.CodeAlreadyExists, "")

	_, err = s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Handle: "bob", Password: "short",
	}))
	requireCode(t, err, connect.CodeInvalidArgument, "")

	loggedIn, err := s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Handle: "alice", Password: "correct horse",
	}))
	require.NoError(t, err)
	assert.Equal(t, registered.Msg.User.Id, loggedIn.Msg.User.Id)

	_, err = s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Handle: "alice", Password: "wrong horse",
	}))
	requireCode(t, err, connect.CodeUnauthenticated, "")

	me, err := s.auth.GetCurrentUser(ctx, as(testUser{token: loggedIn.Msg.Token}, &pb.GetCurrentUserRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Msg.User.Handle)
	assert.Equal(t, registered.Msg.User.CreatedAt, me.Msg.User.CreatedAt)

	found, err := s.auth.LookupUser(ctx, connect.NewRequest(&pb.LookupUserRequest{Handle: "alice"}))
	require.NoError(t, err)
	assert.Equal(t, registered.Msg.User.Id, found.Msg.User.Id)

	_, err = s.auth.LookupUser(ctx, connect.NewRequest(&pb.LookupUserRequest{Handle: "nobody"}))
	requireCode(t, err, connect.CodeNotFound, "")
}

func TestGetCurrentUserRequiresToken(t *testing.T) {
	ctx := context.Background()
	s := setupTestServer(t, Faucet{})

	_, err := s.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated, "")

	_, err = s.auth.GetCurrentUser(ctx, as(testUser{token: "garbage"}, &pb.GetCurrentUserRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated, "")
}
