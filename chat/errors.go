// Copyright (c) Microsoft. All rights reserved.

package chat

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrConfig indicates missing or invalid environment configuration.
	// Configuration errors are fatal and detected before any network
	// activity.
	ErrConfig = errors.New("configuration error")

	// ErrTransport is the base error for remote request failures.
	ErrTransport = errors.New("transport error")

	// ErrNetwork indicates the request never produced a usable response
	// (connection refused, reset mid-stream, and so on).
	ErrNetwork = fmt.Errorf("%w: network", ErrTransport)

	// ErrAuth indicates an authentication or authorization failure.
	ErrAuth = fmt.Errorf("%w: authentication", ErrTransport)

	// ErrRateLimit indicates the backend rejected the request for
	// exceeding a rate limit.
	ErrRateLimit = fmt.Errorf("%w: rate limit", ErrTransport)

	// ErrMalformedResponse indicates the backend returned a response
	// that could not be parsed.
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrTransport)

	// ErrInterrupt indicates an operator-issued cancellation.
	ErrInterrupt = errors.New("interrupted")
)

// TransportError provides provider context for a failed request.
// Use errors.As to extract it from a wrapped error chain.
type TransportError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("transport error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("transport error %d: %s", e.StatusCode, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Category returns a short label for an error's place in the taxonomy,
// suitable for prefixing user-facing error reports.
func Category(err error) string {
	switch {
	case errors.Is(err, ErrConfig):
		return "configuration"
	case errors.Is(err, ErrAuth):
		return "authentication"
	case errors.Is(err, ErrRateLimit):
		return "rate limit"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed response"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrInterrupt), errors.Is(err, context.Canceled):
		return "interrupted"
	default:
		return "error"
	}
}
