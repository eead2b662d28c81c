package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/rally/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// IdentityKey is the context key for the authenticated caller identity.
	IdentityKey contextKey = "identity"
	// HandleKey is the context key for the authenticated caller's handle.
	HandleKey contextKey = "handle"
)

// GetIdentity extracts the caller identity from the context.
// Returns empty string if not found.
func GetIdentity(ctx context.Context) string {
	identity, _ := ctx.Value(IdentityKey).(string)
	return identity
}

// GetHandle extracts the caller handle from the context.
func GetHandle(ctx context.Context) string {
	handle, _ := ctx.Value(HandleKey).(string)
	return handle
}

// WithIdentity returns a context carrying the given caller.
func WithIdentity(ctx context.Context, identity, handle string) context.Context {
	ctx = context.WithValue(ctx, IdentityKey, identity)
	return context.WithValue(ctx, HandleKey, handle)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// authenticate validates the Authorization header of req.
func authenticate(jwtManager *auth.JWTManager, req connect.AnyRequest) (*auth.Claims, error) {
	authHeader := req.Header().Get("Authorization")
	if authHeader == "" {
		return nil, auth.ErrMissingToken
	}
	token, ok := bearerToken(authHeader)
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return jwtManager.Validate(token)
}

// Identify returns an interceptor that puts the caller identity in the
// request context whenever a valid bearer token is present. It never rejects
// a call. Install it ahead of LoggingInterceptor so log lines carry the
// caller.
func Identify(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if claims, err := authenticate(jwtManager, req); err == nil {
				ctx = WithIdentity(ctx, claims.Identity(), claims.Handle)
			}
			return next(ctx, req)
		}
	}
}

// RequireAuth returns an interceptor that rejects calls without a valid
// bearer token and puts the caller identity in the request context.
// Procedures in public skip the check but still get the identity when a
// valid token is present. A call already identified by Identify is not
// validated twice.
func RequireAuth(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if GetIdentity(ctx) != "" {
				return next(ctx, req)
			}

			claims, err := authenticate(jwtManager, req)
			if err == nil {
				return next(WithIdentity(ctx, claims.Identity(), claims.Handle), req)
			}
			if open[req.Spec().Procedure] {
				return next(ctx, req)
			}
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
	}
}
