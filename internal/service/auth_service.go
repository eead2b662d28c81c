package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/rally/internal/auth"
	"github.com/mmynk/rally/internal/middleware"
	"github.com/mmynk/rally/internal/storage"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

var _ protoconnect.AuthServiceHandler = (*AuthService)(nil)

// PublicProcedures can be called without a token. Read-only procedures that
// default to the caller still need one for that default.
var PublicProcedures = []string{
	protoconnect.AuthServiceRegisterProcedure,
	protoconnect.AuthServiceLoginProcedure,
	protoconnect.AuthServiceLookupUserProcedure,
	protoconnect.SquadServiceGetSquadProcedure,
	protoconnect.SquadServiceListSquadsProcedure,
	protoconnect.SquadServiceGetVaultBalanceProcedure,
	protoconnect.StreamServiceGetStreamProcedure,
	protoconnect.StreamServiceListStreamsProcedure,
	protoconnect.VoteServiceGetProposalProcedure,
	protoconnect.VoteServiceListProposalsProcedure,
	protoconnect.LedgerServiceGetBalanceProcedure,
	protoconnect.LedgerServiceListTransfersProcedure,
	protoconnect.SplitServiceCalculateSplitProcedure,
	protoconnect.SplitServiceGetSplitProcedure,
	protoconnect.SplitServiceListSplitsProcedure,
}

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	protoconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         auth.UserStorage
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users auth.UserStorage) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[pb.RegisterRequest]) (*connect.Response[pb.RegisterResponse], error) {
	slog.Info("Register request", "handle", req.Msg.Handle)

	user, err := s.authenticator.Register(ctx, req.Msg.Handle, req.Msg.DisplayName, req.Msg.Password)
	if err != nil {
		slog.Error("Registration failed", "handle", req.Msg.Handle, "error", err)
		switch {
		case errors.Is(err, auth.ErrHandleTaken):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidHandle):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("User registered successfully", "user_id", user.ID, "handle", user.Handle)
	return connect.NewResponse(&pb.RegisterResponse{User: toUser(user), Token: token}), nil
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	slog.Info("Login request", "handle", req.Msg.Handle)

	if req.Msg.Handle == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Handle, req.Msg.Password)
	if err != nil {
		slog.Warn("Login failed", "handle", req.Msg.Handle, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("User logged in successfully", "user_id", user.ID, "handle", user.Handle)
	return connect.NewResponse(&pb.LoginResponse{User: toUser(user), Token: token}), nil
}

// GetCurrentUser returns the authenticated user's record.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[pb.GetCurrentUserRequest]) (*connect.Response[pb.GetCurrentUserResponse], error) {
	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetCurrentUser request", "user_id", identity, "handle", middleware.GetHandle(ctx))

	user, err := s.users.GetUserByID(ctx, identity)
	if err != nil {
		// A valid token for a user that no longer exists.
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
		}
		return nil, failed("GetCurrentUser failed", err, "user_id", identity)
	}

	return connect.NewResponse(&pb.GetCurrentUserResponse{User: toUser(user)}), nil
}

// LookupUser resolves a handle to the identity used for squads, streams and
// votes.
func (s *AuthService) LookupUser(ctx context.Context, req *connect.Request[pb.LookupUserRequest]) (*connect.Response[pb.LookupUserResponse], error) {
	slog.Info("LookupUser request", "handle", req.Msg.Handle)

	if req.Msg.Handle == "" {
		return nil, invalidArgument("handle is required")
	}
	user, err := s.users.GetUserByHandle(ctx, req.Msg.Handle)
	if err != nil {
		return nil, failed("LookupUser failed", err, "handle", req.Msg.Handle)
	}

	return connect.NewResponse(&pb.LookupUserResponse{User: toUser(user)}), nil
}
