package llm

import "errors"

var (
	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("llm backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrRetryExhausted indicates all retry attempts failed with a non
	// transport error.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
