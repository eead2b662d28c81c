package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/rally/internal/auth"
	"github.com/mmynk/rally/internal/fault"
	"github.com/mmynk/rally/internal/layout"
	"github.com/mmynk/rally/internal/middleware"
	"github.com/mmynk/rally/internal/storage"
)

// codeForKind maps a failure kind to the Connect status clients see.
func codeForKind(k fault.Kind) connect.Code {
	switch k {
	case fault.KindInvalid:
		return connect.CodeInvalidArgument
	case fault.KindUnauthorized:
		return connect.CodePermissionDenied
	case fault.KindTiming, fault.KindInsufficient, fault.KindTerminal:
		return connect.CodeFailedPrecondition
	case fault.KindOverflow:
		return connect.CodeOutOfRange
	case fault.KindCapacity:
		return connect.CodeResourceExhausted
	case fault.KindConflict:
		return connect.CodeAlreadyExists
	default:
		return connect.CodeInternal
	}
}

// toConnectError converts an operation failure into a Connect error. Domain
// failures carry their code in the Rally-Error-Code metadata.
func toConnectError(err error) *connect.Error {
	var (
		ce *connect.Error
		fe *fault.Error
	)
	switch {
	case errors.As(err, &ce):
		return ce
	case errors.As(err, &fe):
		cerr := connect.NewError(codeForKind(fe.Kind), err)
		cerr.Meta().Set(middleware.ErrorCodeHeader, fe.Code)
		return cerr
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, layout.ErrBounds):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// invalidArgument reports a malformed request field.
func invalidArgument(format string, args ...any) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// requireIdentity checks a request field naming a holder or identity.
func requireIdentity(field, value string) error {
	if value == "" {
		return invalidArgument("%s is required", field)
	}
	if len(value) > layout.MaxIdentityLen {
		return invalidArgument("%s must be %d bytes or less", field, layout.MaxIdentityLen)
	}
	return nil
}

// unauthenticated is returned when a handler runs without a caller identity.
func unauthenticated() *connect.Error {
	return connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
}
