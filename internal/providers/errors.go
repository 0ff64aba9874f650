package providers

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// UpstreamError captures a non-success response from an upstream provider.
type UpstreamError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: %s (status=%d)", e.Provider, e.Endpoint, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Endpoint, msg)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
