package pure

import (
	"errors"

	"github.com/on-the-ground/cachedfn/shared/helper"
)

// ErrInvalid is the panic value (wrapped) raised when an invocation reaches a
// cell in the Invalid state. It always wraps the reason the cell became invalid.
var ErrInvalid = errors.New("cached fn is invalid")

// Reasons a cell can be invalid.
var (
	// ErrInFlight means the computation is currently running.
	// Seeing it from an invocation means the computation re-entered its own cell.
	ErrInFlight = errors.New("computation in flight")

	// ErrAborted means the computation panicked and never returned.
	ErrAborted = errors.New("computation aborted")

	// ErrPoisoned means a poisoning call returned an error. It wraps that error.
	ErrPoisoned = errors.New("poisoned by error")

	// ErrConsumed means the payload was moved out by a consuming operation.
	ErrConsumed = errors.New("consumed")
)

var ErrNilFunc = errors.New("cached fn: nil computation")

// ErrMaxAttempts is returned by RetryCall once every attempt has failed.
var ErrMaxAttempts = helper.ErrMaxAttempts
