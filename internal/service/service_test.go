package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/rally/internal/auth"
	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/middleware"
	"github.com/mmynk/rally/internal/storage/sqlite"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

var t0 = time.Unix(1_700_000_000, 0)

// testServer is a full rally server over a temp database.
type testServer struct {
	clock   *clock.Manual
	store   *sqlite.SQLiteStore
	metrics *metrics.Metrics

	auth    protoconnect.AuthServiceClient
	squads  protoconnect.SquadServiceClient
	streams protoconnect.StreamServiceClient
	votes   protoconnect.VoteServiceClient
	ledger  protoconnect.LedgerServiceClient
	splits  protoconnect.SplitServiceClient
}

func setupTestServer(t *testing.T, faucet Faucet) *testServer {
	t.Helper()

	store, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	clk := clock.NewManual(t0)
	m := metrics.New()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	opts := connect.WithInterceptors(
		middleware.Identify(jwtManager),
		middleware.LoggingInterceptor(),
		m.Interceptor(),
		middleware.RequireAuth(jwtManager, PublicProcedures...),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store), opts))
	mux.Handle(protoconnect.NewSquadServiceHandler(NewSquadService(store, clk, m), opts))
	mux.Handle(protoconnect.NewStreamServiceHandler(NewStreamService(store, clk, m), opts))
	mux.Handle(protoconnect.NewVoteServiceHandler(NewVoteService(store, clk, m), opts))
	mux.Handle(protoconnect.NewLedgerServiceHandler(NewLedgerService(store, clk, m, faucet), opts))
	mux.Handle(protoconnect.NewSplitServiceHandler(NewSplitService(store, clk, m), opts))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testServer{
		clock:   clk,
		store:   store,
		metrics: m,
		auth:    protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		squads:  protoconnect.NewSquadServiceClient(http.DefaultClient, server.URL),
		streams: protoconnect.NewStreamServiceClient(http.DefaultClient, server.URL),
		votes:   protoconnect.NewVoteServiceClient(http.DefaultClient, server.URL),
		ledger:  protoconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		splits:  protoconnect.NewSplitServiceClient(http.DefaultClient, server.URL),
	}
}

// testUser is a registered user and its bearer token.
type testUser struct {
	id    string
	token string
}

func (s *testServer) register(t *testing.T, handle string) testUser {
	t.Helper()
	resp, err := s.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Handle:   handle,
		Password: "password-" + handle,
	}))
	require.NoError(t, err)
	return testUser{id: resp.Msg.User.Id, token: resp.Msg.Token}
}

func (s *testServer) fund(t *testing.T, u testUser, amount uint64) {
	t.Helper()
	_, err := s.ledger.Fund(context.Background(), as(u, &pb.FundRequest{Amount: amount}))
	require.NoError(t, err)
}

func (s *testServer) balance(t *testing.T, address string) uint64 {
	t.Helper()
	resp, err := s.ledger.GetBalance(context.Background(), connect.NewRequest(&pb.GetBalanceRequest{Address: address}))
	require.NoError(t, err)
	return resp.Msg.Balance
}

// as builds a request authenticated as u.
func as[T any](u testUser, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+u.token)
	return req
}

// scrape returns the server's metrics in the exposition format.
func scrape(t *testing.T, s *testServer) string {
	t.Helper()
	rec := httptest.NewRecorder()
	s.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

// requireCode asserts err is a Connect error with the given status and
// domain code. An empty domain code asserts no Rally-Error-Code was sent.
func requireCode(t *testing.T, err error, code connect.Code, errorCode string) {
	t.Helper()
	require.Error(t, err)
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr), "expected connect error, got %v", err)
	require.Equal(t, code, connectErr.Code(), connectErr.Message())
	require.Equal(t, errorCode, connectErr.Meta().Get(middleware.ErrorCodeHeader))
}
