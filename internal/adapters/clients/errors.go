// Package clients provides the instrumented HTTP client used to reach the
// remote quote API.
package clients

import (
	"errors"
	"fmt"
)

// Client errors are infrastructure failures. The acl package translates
// them into domain errors.
var (
	// ErrCircuitOpen is returned when the circuit breaker blocks a request.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded is returned after all retry attempts have been
	// exhausted. The last attempt's error is wrapped with it.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// StatusError records a retryable HTTP status that survived every attempt.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error: %d", e.Code)
}
