package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound        ErrKind = iota // target file absent
	ErrKindInvalidArgument                // payload longer than pattern, bad port, unresolvable host
	ErrKindPatternNotFound                // scan finished without a match; file untouched
	ErrKindIO                             // read/write/mmap/process-spawn failure
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not found"
	case ErrKindInvalidArgument:
		return "invalid argument"
	case ErrKindPatternNotFound:
		return "pattern not found"
	case ErrKindIO:
		return "i/o error"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrNotFound) matches every not-found error regardless of
// its message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates a missing target file.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrInvalidArgument indicates a rejected input.
	ErrInvalidArgument = &Error{Kind: ErrKindInvalidArgument, Msg: "invalid argument"}
	// ErrPatternNotFound indicates the placeholder does not occur in the file.
	ErrPatternNotFound = &Error{Kind: ErrKindPatternNotFound, Msg: "pattern not found"}
	// ErrIO indicates an underlying I/O, mapping or process failure.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o error"}
)

// NotFound returns an ErrKindNotFound error.
func NotFound(msg string, cause error) error {
	return &Error{Kind: ErrKindNotFound, Msg: msg, Err: cause}
}

// InvalidArgument returns an ErrKindInvalidArgument error.
func InvalidArgument(msg string, cause error) error {
	return &Error{Kind: ErrKindInvalidArgument, Msg: msg, Err: cause}
}

// PatternNotFound returns an ErrKindPatternNotFound error.
func PatternNotFound(msg string) error {
	return &Error{Kind: ErrKindPatternNotFound, Msg: msg}
}

// IO returns an ErrKindIO error.
func IO(msg string, cause error) error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
