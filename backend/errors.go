package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind distinguishes the failure modes of a backend call so callers can
// tell "down" from "slow" from "speaking a different dialect".
type ErrorKind string

const (
	// KindUnavailable means the endpoint refused or dropped the connection.
	KindUnavailable ErrorKind = "backend_unavailable"
	// KindTimeout means the call exceeded its deadline.
	KindTimeout ErrorKind = "backend_timeout"
	// KindProtocol means a response arrived but did not match the expected
	// wire shape for the detected protocol.
	KindProtocol ErrorKind = "backend_protocol_error"
)

// Error is the typed failure returned by adapters. Detail carries a bounded
// fragment of the offending payload for protocol errors.
type Error struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// maxDetailBytes bounds how much of an unexpected payload is kept on the
// error for diagnosis.
const maxDetailBytes = 512

func protocolError(detail string, payload []byte) *Error {
	fragment := payload
	if len(fragment) > maxDetailBytes {
		fragment = fragment[:maxDetailBytes]
	}
	if len(fragment) > 0 {
		detail = fmt.Sprintf("%s: %s", detail, fragment)
	}
	return &Error{Kind: KindProtocol, Detail: detail}
}

// classifyTransport maps an http.Client transport failure onto the error
// taxonomy. Caller-initiated cancellation is passed through untyped; it is
// not a backend failure.
func classifyTransport(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Cause: err}
	}
	return &Error{Kind: KindUnavailable, Cause: err}
}
