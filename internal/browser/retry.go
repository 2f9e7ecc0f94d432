package browser

import (
	"context"
	"log"
	"time"
)

// Retry runs fn up to attempts times, doubling the delay between attempts.
// Returns the last error if every attempt fails, or the context error if
// cancelled while waiting. Intended for interactions that are flaky under
// page re-renders (footer clicks, modal opens), not as a substitute for
// explicit waits.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		log.Printf("[RETRY] Attempt %d/%d failed: %v", attempt, attempts, lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return lastErr
}
