package utils

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig holds the parameters for the retry strategy.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *Logger
}

// Do executes fn with exponential back-off retry logic. The delay starts at
// BaseDelay and doubles after every failed attempt.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	maxAttempts := r.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = r.BaseDelay
	expBackoff.Multiplier = 2
	expBackoff.RandomizationFactor = 0
	expBackoff.MaxElapsedTime = 0
	expBackoff.Reset()

	attempt := 0
	operation := func() error {
		attempt++
		return fn()
	}
	notify := func(err error, delay time.Duration) {
		if r.Logger != nil {
			r.Logger.Warn("[retry] %s failed (attempt %d/%d): %v, retrying in %v",
				operationName, attempt, maxAttempts, err, delay)
		}
	}

	err := backoff.RetryNotify(operation, backoff.WithMaxRetries(expBackoff, uint64(maxAttempts-1)), notify)
	if err != nil {
		return fmt.Errorf("%s failed after %d attempts: %w", operationName, attempt, err)
	}
	return nil
}
