package helper

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var ErrMaxAttempts = errors.New("max attempts reached")

// Retry calls fn until it returns nil or maxAttempts calls have failed.
// A maxAttempts below one is treated as one.
// The returned error wraps ErrMaxAttempts and every error fn returned.
func Retry(maxAttempts int, fn func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var errs error
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		errs = multierr.Append(errs, err)
		if attempt >= maxAttempts {
			return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, attempt, errs)
		}
	}
}
