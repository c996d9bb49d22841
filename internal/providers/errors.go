package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals a misconfigured or nil provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// UpstreamError captures a failed call to an upstream API with enough
// context to decide whether the call is worth retrying.
type UpstreamError struct {
	Provider   string
	Operation  string
	StatusCode int
	Message    string
	Transient  bool
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: %s (status=%d)", e.Provider, e.Operation, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Operation, msg)
}

// Retryable reports whether the failure is worth another attempt.
// Server errors and rate limits are transient; client errors are not.
func (e *UpstreamError) Retryable() bool {
	return e.Transient
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// transientStatus classifies HTTP status codes for retry purposes.
func transientStatus(code int) bool {
	return code == 429 || code >= 500
}

// NewUpstreamError builds an UpstreamError from an HTTP status code.
func NewUpstreamError(provider, operation string, statusCode int, message string) *UpstreamError {
	return &UpstreamError{
		Provider:   provider,
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
		Transient:  transientStatus(statusCode),
	}
}
