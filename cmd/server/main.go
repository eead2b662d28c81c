package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/rally/internal/auth"
	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/config"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/middleware"
	"github.com/mmynk/rally/internal/service"
	"github.com/mmynk/rally/internal/storage/sqlite"
	"github.com/mmynk/rally/internal/telemetry"
	"github.com/mmynk/rally/pkg/logging"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

const serviceName = "rally"

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetupWithLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()
	if cfg.OTelEndpoint != "" {
		slog.Info("Tracing enabled", "endpoint", cfg.OTelEndpoint)
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	clk := clock.System{}
	m := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	faucet := service.Faucet{Enabled: cfg.FaucetEnabled, Max: cfg.FaucetMax}
	if faucet.Enabled {
		slog.Warn("Faucet enabled", "max_per_call", faucet.Max)
	}

	opts := connect.WithInterceptors(
		middleware.Identify(jwtManager),
		middleware.LoggingInterceptor(),
		m.Interceptor(),
		middleware.RequireAuth(jwtManager, service.PublicProcedures...),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, store), opts))
	mux.Handle(protoconnect.NewSquadServiceHandler(service.NewSquadService(store, clk, m), opts))
	mux.Handle(protoconnect.NewStreamServiceHandler(service.NewStreamService(store, clk, m), opts))
	mux.Handle(protoconnect.NewVoteServiceHandler(service.NewVoteService(store, clk, m), opts))
	mux.Handle(protoconnect.NewLedgerServiceHandler(service.NewLedgerService(store, clk, m, faucet), opts))
	mux.Handle(protoconnect.NewSplitServiceHandler(service.NewSplitService(store, clk, m), opts))
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			slog.Error("Health check failed", "error", err)
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	// h2c serves HTTP/2 without TLS, which Connect's gRPC protocol needs.
	handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(cfg.CORSOrigin, mux)), &http2.Server{})
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.ErrorCodeHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
