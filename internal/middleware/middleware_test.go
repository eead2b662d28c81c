package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/rally/internal/auth"
	"github.com/mmynk/rally/internal/fault"
	"github.com/mmynk/rally/internal/models"
)

const (
	privateProcedure = "/rally.test.EchoService/Private"
	publicProcedure  = "/rally.test.EchoService/Public"
)

// logBuffer collects log output written from server goroutines.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureLogs routes the default logger into a buffer for the test.
func captureLogs(t *testing.T) *logBuffer {
	t.Helper()
	logs := &logBuffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return logs
}

type echoServer struct {
	jwt     *auth.JWTManager
	url     string
	client  *http.Client
	handled chan string
}

// setupEchoServer serves two procedures behind the production interceptor
// chain. Each handler reports the identity it saw on handled; Private
// fails with a domain error when fail is set.
func setupEchoServer(t *testing.T, fail error) *echoServer {
	t.Helper()

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	handled := make(chan string, 1)
	opts := connect.WithInterceptors(
		Identify(jwtManager),
		LoggingInterceptor(),
		RequireAuth(jwtManager, publicProcedure),
	)
	handle := func(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
		handled <- GetIdentity(ctx)
		if fail != nil {
			cerr := connect.NewError(connect.CodeFailedPrecondition, fail)
			var fe *fault.Error
			if errors.As(fail, &fe) {
				cerr.Meta().Set(ErrorCodeHeader, fe.Code)
			}
			return nil, cerr
		}
		return connect.NewResponse(&emptypb.Empty{}), nil
	}

	mux := http.NewServeMux()
	mux.Handle(privateProcedure, connect.NewUnaryHandler(privateProcedure, handle, opts))
	mux.Handle(publicProcedure, connect.NewUnaryHandler(publicProcedure, handle, opts))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &echoServer{jwt: jwtManager, url: server.URL, client: server.Client(), handled: handled}
}

func (s *echoServer) call(procedure, token string) error {
	client := connect.NewClient[emptypb.Empty, emptypb.Empty](s.client, s.url+procedure)
	req := connect.NewRequest(&emptypb.Empty{})
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	_, err := client.CallUnary(context.Background(), req)
	return err
}

func (s *echoServer) token(t *testing.T, id string) string {
	t.Helper()
	token, err := s.jwt.Generate(&models.User{ID: id, Handle: "alice"})
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	s := setupEchoServer(t, nil)
	token := s.token(t, "user-1")

	require.NoError(t, s.call(privateProcedure, token))
	assert.Equal(t, "user-1", <-s.handled)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"missing token", "", auth.ErrMissingToken},
		{"forged token", token + "x", auth.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.call(privateProcedure, tt.token)
			var connectErr *connect.Error
			require.True(t, errors.As(err, &connectErr))
			assert.Equal(t, connect.CodeUnauthenticated, connectErr.Code())
			assert.Contains(t, connectErr.Message(), tt.want.Error())
		})
	}

	t.Run("public procedure", func(t *testing.T) {
		require.NoError(t, s.call(publicProcedure, ""))
		assert.Empty(t, <-s.handled)

		require.NoError(t, s.call(publicProcedure, token+"x"))
		assert.Empty(t, <-s.handled)

		require.NoError(t, s.call(publicProcedure, token))
		assert.Equal(t, "user-1", <-s.handled)
	})
}

func TestLoggingInterceptorIdentity(t *testing.T) {
	t.Run("authenticated call", func(t *testing.T) {
		logs := captureLogs(t)
		s := setupEchoServer(t, nil)

		require.NoError(t, s.call(privateProcedure, s.token(t, "user-1")))
		<-s.handled

		out := logs.String()
		assert.Contains(t, out, `msg="RPC ok"`)
		assert.Contains(t, out, "procedure="+privateProcedure)
		assert.Contains(t, out, "identity=user-1")
	})

	t.Run("rejected call", func(t *testing.T) {
		logs := captureLogs(t)
		s := setupEchoServer(t, fault.New(fault.KindTiming, "VotingStillOpen", "voting period is still open"))

		require.Error(t, s.call(privateProcedure, s.token(t, "user-2")))
		<-s.handled

		out := logs.String()
		assert.Contains(t, out, `msg="RPC rejected"`)
		assert.Contains(t, out, "identity=user-2")
		assert.Contains(t, out, "error_code=VotingStillOpen")
	})

	t.Run("anonymous call", func(t *testing.T) {
		logs := captureLogs(t)
		s := setupEchoServer(t, nil)

		require.Error(t, s.call(privateProcedure, ""))

		out := logs.String()
		assert.Contains(t, out, `msg="RPC rejected"`)
		assert.Contains(t, out, "identity=\"\"")
		assert.Contains(t, out, "code=unauthenticated")
	})
}
