// Package fault defines the typed failure values returned by the custody
// modules. Every rejected operation returns one of the sentinel *Error values
// declared by the squad, stream, vote and calculator packages, so callers can
// match them with errors.Is and read a stable Code for the wire.
package fault

import "errors"

// Kind groups failures by the policy they violate.
type Kind int

const (
	// KindInvalid covers malformed input: lengths, zero amounts, bad ranges.
	KindInvalid Kind = iota + 1
	// KindUnauthorized means the caller is not in the set required by the record.
	KindUnauthorized
	// KindTiming covers deadline and clock-window violations.
	KindTiming
	// KindOverflow is an arithmetic overflow or invariant underflow.
	KindOverflow
	// KindInsufficient means a balance cannot cover the request.
	KindInsufficient
	// KindTerminal means the record already reached a terminal state.
	KindTerminal
	// KindCapacity means a fixed-capacity container is full.
	KindCapacity
	// KindConflict means the request duplicates existing state.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnauthorized:
		return "unauthorized"
	case KindTiming:
		return "timing"
	case KindOverflow:
		return "overflow"
	case KindInsufficient:
		return "insufficient"
	case KindTerminal:
		return "terminal"
	case KindCapacity:
		return "capacity"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a domain failure with a stable code and a human readable message.
type Error struct {
	Code    string
	Kind    Kind
	Message string
}

// New declares a sentinel failure.
func New(kind Kind, code, message string) *Error {
	return &Error{Code: code, Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}
