// Package classify maps errors that cross an operator's RPC boundary
// onto the fixed set of error kinds the fleet's contract recognizes,
// and translates those kinds to and from gRPC status codes.
//
// The interface shape here (a Kind classifier plus an adapter for
// plain functions) is the same one bassosimone-nop's ErrClassifier
// uses for network-error classification, repurposed for this fleet's
// five error kinds instead of socket errno labels.
package classify

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Shearerbeard/PESA-equation-services/expr"
)

// Kind is one of the five error classes the core surfaces.
type Kind string

const (
	// InvalidArgument: a request's encoded expression failed to decode.
	InvalidArgument Kind = "InvalidArgument"
	// PeerUnavailable: a peer-connection slot was empty and a fresh
	// open attempt failed.
	PeerUnavailable Kind = "PeerUnavailable"
	// PeerError: a peer RPC returned a non-success status.
	PeerError Kind = "PeerError"
	// EncodingError: a sub-expression about to be sent failed to encode.
	EncodingError Kind = "EncodingError"
	// DivisionByZero: a division primitive received a zero divisor.
	DivisionByZero Kind = "DivisionByZero"
)

// Error carries a Kind alongside the underlying cause, so that callers
// can both classify (for status mapping) and log the original error.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// New wraps cause with the given Kind.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Of extracts the Kind from err, if err is (or wraps) a *Error. It
// special-cases expr.ErrDivisionByZero, since that sentinel may arrive
// unwrapped from expr.Evaluate.
func Of(err error) (Kind, bool) {
	if err == nil {
		return "", false
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	if errors.Is(err, expr.ErrDivisionByZero) {
		return DivisionByZero, true
	}
	return "", false
}

// ToStatus converts a classified error into a gRPC status. Per the
// propagation policy, InvalidArgument maps to codes.InvalidArgument;
// every other kind maps to codes.Internal, carrying the kind name as
// diagnostic payload in the message so a peer or the orchestrator can
// recover it via FromStatus.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	kind, ok := Of(err)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}
	switch kind {
	case InvalidArgument:
		return status.Error(codes.InvalidArgument, string(kind)+": "+unwrapMessage(err))
	default:
		return status.Error(codes.Internal, string(kind)+": "+unwrapMessage(err))
	}
}

func unwrapMessage(err error) string {
	var ce *Error
	if errors.As(err, &ce) && ce.Cause != nil {
		return ce.Cause.Error()
	}
	return err.Error()
}

// FromStatus recovers a Kind from a gRPC status produced by ToStatus
// (or from a raw gRPC transport failure, which is reported as
// PeerError). Used by a service delegating to a peer so that a
// DivisionByZero (or any other kind) a peer reports propagates
// transparently instead of being flattened into a generic PeerError.
func FromStatus(err error) *Error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return New(PeerError, err)
	}
	msg := st.Message()
	for _, kind := range []Kind{InvalidArgument, PeerUnavailable, PeerError, EncodingError, DivisionByZero} {
		prefix := string(kind) + ": "
		if len(msg) >= len(prefix) && msg[:len(prefix)] == prefix {
			return New(kind, errors.New(msg[len(prefix):]))
		}
	}
	if st.Code() == codes.InvalidArgument {
		return New(InvalidArgument, err)
	}
	return New(PeerError, err)
}
