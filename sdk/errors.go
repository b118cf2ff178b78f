package sdk

import "github.com/pkg/errors"

var (
	// ErrClosed is returned for requests submitted after Close.
	ErrClosed = errors.New("client is closed")

	// ErrQueueFull is returned when the request queue is at capacity.
	ErrQueueFull = errors.New("request queue is full")

	// ErrServiceAccountMissing is returned when an operation requires
	// a bearer token but no service account is configured. The
	// transport is never invoked in that case.
	ErrServiceAccountMissing = errors.New("no service account configured")

	// ErrTimeout is returned when a request did not complete within
	// the configured timeout. The underlying transport operation is
	// not canceled.
	ErrTimeout = errors.New("request timed out")

	// ErrTokenAcquisition is returned when the /auth response did not
	// contain a usable bearer token. The dependent request is never
	// sent.
	ErrTokenAcquisition = errors.New("could not acquire auth token")
)
