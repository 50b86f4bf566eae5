package services

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned for upstream-dependent operations when no
// upstream credential is available.
var ErrNotConfigured = errors.New("Google Maps API key not configured")

// ClientInputError reports a missing or malformed request parameter. It is
// raised before any upstream call is attempted.
type ClientInputError struct {
	Message string
}

func (e *ClientInputError) Error() string {
	return e.Message
}

func clientInputErrorf(format string, args ...interface{}) error {
	return &ClientInputError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamUnavailableError reports a transport or status level failure of
// the upstream call. It is never folded into an empty result.
type UpstreamUnavailableError struct {
	Operation string
	Err       error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstream %s unavailable: %v", e.Operation, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// IsClientInputError reports whether err is a ClientInputError.
func IsClientInputError(err error) bool {
	var target *ClientInputError
	return errors.As(err, &target)
}

// IsUpstreamUnavailable reports whether err is an UpstreamUnavailableError.
func IsUpstreamUnavailable(err error) bool {
	var target *UpstreamUnavailableError
	return errors.As(err, &target)
}
