package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// ErrorCodeHeader carries the domain error code, e.g. "VoteRequired", on
// failed responses.
const ErrorCodeHeader = "Rally-Error-Code"

// serverFault reports whether code means the server, not the caller, failed.
func serverFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return true
	}
	return false
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, caller identity and duration. Rejected calls also log
// the Connect code and the domain error code. The identity is read from the
// context, so Identify must run before it.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"identity", GetIdentity(ctx), // empty for anonymous callers
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err == nil {
				slog.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			var connectErr *connect.Error
			if !errors.As(err, &connectErr) {
				slog.ErrorContext(ctx, "RPC error", append(attrs, "error", err)...)
				return resp, err
			}

			attrs = append(attrs, "code", connectErr.Code(), "error", connectErr.Message())
			if code := connectErr.Meta().Get(ErrorCodeHeader); code != "" {
				attrs = append(attrs, "error_code", code)
			}
			if serverFault(connectErr.Code()) {
				slog.ErrorContext(ctx, "RPC error", attrs...)
			} else {
				slog.WarnContext(ctx, "RPC rejected", attrs...)
			}
			return resp, err
		}
	}
}
