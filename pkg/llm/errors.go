package llm

import "errors"

// Error kinds surfaced by clients. Callers match them with errors.Is to
// decide between retrying and reporting.
var (
	// ErrServiceUnavailable covers transport failures, timeouts and rate
	// limits. Retryable with backoff.
	ErrServiceUnavailable = errors.New("generation service unavailable")

	// ErrMalformedResponse means the provider replied but did not produce
	// the expected structured content. Not retryable.
	ErrMalformedResponse = errors.New("malformed generation response")
)
