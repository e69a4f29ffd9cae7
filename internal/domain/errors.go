package domain

import (
	"fmt"
	"time"
)

// RateLimitError is returned by a sender when the destination throttles delivery.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: retry after %s", e.RetryAfter)
}
