package backend

import (
	"errors"
	"fmt"
)

// ErrSummaryUnavailable means the order store cannot serve the
// pre-computed summary (missing endpoint or malformed body). It is a soft
// signal, not a failure: callers fall back to computing stats themselves.
var ErrSummaryUnavailable = errors.New("summary not available")

// TransportError is a network-level failure. Recoverable by a
// user-triggered retry; nothing retries automatically.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteRejection is the server explicitly declining a well-formed
// request. The remote status and body are surfaced verbatim.
type RemoteRejection struct {
	Op     string
	Status int
	Body   string
}

func (e *RemoteRejection) Error() string {
	return fmt.Sprintf("%s: server rejected request (%d): %s", e.Op, e.Status, e.Body)
}

// ProtocolError is a 2xx response whose body does not match the expected
// shape.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %s", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// NotFoundError means the order id no longer exists server-side.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order %d not found", e.ID)
}
