package weather

import (
	"errors"
	"fmt"
)

// User-facing messages. The cause of a failed lookup is never shown.
const (
	MsgEmptyInput   = "Please enter a city name"
	MsgLookupFailed = "City not found. Please try again."
)

var (
	ErrEmptyInput   = errors.New("empty city name")
	ErrCityNotFound = errors.New("city not found")
)

// FailureKind tells diagnostics why a lookup failed.
type FailureKind string

const (
	FailureStatus    FailureKind = "status"
	FailureTransport FailureKind = "transport"
	FailureDecode    FailureKind = "decode"
)

// LookupError is returned by providers. Every LookupError matches
// ErrCityNotFound with errors.Is.
type LookupError struct {
	Kind       FailureKind
	StatusCode int // set for FailureStatus
	Err        error
}

func (e *LookupError) Error() string {
	if e.Kind == FailureStatus {
		return fmt.Sprintf("lookup failed (%s %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("lookup failed (%s): %v", e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool {
	return target == ErrCityNotFound
}

// NewLookupError wraps err with the given failure kind.
func NewLookupError(kind FailureKind, err error) *LookupError {
	return &LookupError{Kind: kind, Err: err}
}

// FailureKindOf reports the failure kind of err, defaulting to transport for
// errors that did not come from a provider.
func FailureKindOf(err error) FailureKind {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind
	}
	return FailureTransport
}
