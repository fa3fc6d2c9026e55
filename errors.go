package g4fclient

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
// These can be checked with errors.Is().
var (
	// ErrStreamClosed indicates Recv was called on a stream that has
	// already been closed by the caller.
	ErrStreamClosed = errors.New("g4fclient: stream closed")

	// ErrBackendUnavailable indicates the conversation backend could not
	// be reached at all (connection refused, DNS failure, ...).
	ErrBackendUnavailable = errors.New("g4fclient: backend unavailable")

	// ErrTimeout indicates the configured timeout elapsed before the
	// backend responded.
	ErrTimeout = errors.New("g4fclient: request timed out")
)

// TransportError represents a failure to establish or sustain the HTTP
// exchange with the conversation backend. It is returned when the request
// cannot be sent, when no response arrives within the timeout, and when the
// stream dies mid-response.
type TransportError struct {
	URL string // The endpoint that was being called
	Op  string // "send" or "stream"
	Err error  // Underlying transport error
}

func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("transport %s failed for %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedEventError represents a single response line that could not be
// parsed as a stream event. The stream reader swallows these — one bad line
// fails only that line's extraction, never the whole stream — so this type
// only ever reaches callers that parse raw lines themselves.
type MalformedEventError struct {
	Line   string // The raw line, as received
	Reason string // Human-readable explanation
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed stream event %q: %s", e.Line, e.Reason)
}

// IsTransport checks whether an error originated in the transport layer.
// These errors abort the call; no partial result accompanies them.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}

	if errors.Is(err, ErrBackendUnavailable) {
		return true
	}

	return errors.Is(err, ErrTimeout)
}
