package pure

import (
	"github.com/on-the-ground/cachedfn/shared/helper"
	"go.uber.org/zap"
)

// TryCachedFn is a lazily evaluated computation that may fail.
// Only a successful result is ever cached; what happens on failure depends
// on the method used:
//
//   - PoisoningTryCall leaves the cell invalid, so the computation never reruns.
//   - TryCall puts the computation back, so the next call retries it.
//   - TryCallInto and SafeTryCall consume the cell, so there is nothing left to poison.
//
// Like CachedFn it assumes a single owner and does no locking.
type TryCachedFn[T any] struct {
	slot[func() (T, error), T]
}

// NewTry wraps fn without calling it.
func NewTry[T any](fn func() (T, error), opts ...Option) *TryCachedFn[T] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return &TryCachedFn[T]{slot: pendingSlot[func() (T, error), T](fn, opts)}
}

// NewTryCached returns a cell that already holds v.
func NewTryCached[T any](v T, opts ...Option) *TryCachedFn[T] {
	return &TryCachedFn[T]{slot: cachedSlot[func() (T, error)](v, opts)}
}

// PoisoningTryCall runs the computation if it has not run yet and caches a
// successful result.
//
// If the computation returns an error, the error is returned and the cell is
// poisoned: it must be dropped, and any further invocation panics. Use it when
// a failed computation may have left side effects half applied.
//
// PoisoningTryCall panics with an error wrapping ErrInvalid if the cell is invalid.
func (c *TryCachedFn[T]) PoisoningTryCall() (*T, error) {
	if c.mustUsable("PoisoningTryCall") == StateCached {
		return &c.value, nil
	}
	fn, start := c.take("PoisoningTryCall")
	var err error
	c.guard(func() {
		var v T
		if v, err = fn(); err == nil {
			c.setCached(v, start)
		}
	})
	if err != nil {
		c.poison(err)
		return nil, err
	}
	return &c.value, nil
}

// TryCall runs the computation if it has not succeeded yet and caches a
// successful result. On error the computation is put back and the cell stays
// pending, so a later TryCall runs it again.
//
// A panic in the computation still leaves the cell invalid.
// TryCall panics with an error wrapping ErrInvalid if the cell is invalid.
func (c *TryCachedFn[T]) TryCall() (*T, error) {
	if c.mustUsable("TryCall") == StateCached {
		return &c.value, nil
	}
	fn, start := c.take("TryCall")
	var err error
	c.guard(func() {
		var v T
		if v, err = fn(); err != nil {
			c.setPending(fn)
			return
		}
		c.setCached(v, start)
	})
	if err != nil {
		c.logger().Debug("computation failed, kept pending", zap.Error(err))
		return nil, err
	}
	return &c.value, nil
}

// RetryCall calls TryCall until it succeeds or maxAttempts calls have failed.
// A maxAttempts below one is treated as one. When every attempt fails the
// returned error wraps ErrMaxAttempts and each attempt's error, and the cell
// is still pending.
func (c *TryCachedFn[T]) RetryCall(maxAttempts int) (*T, error) {
	var res *T
	err := helper.Retry(maxAttempts, func() (err error) {
		res, err = c.TryCall()
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// TryCallInto returns the value or the computation's error, running the
// computation if needed, and consumes the cell. It never poisons: the cell is
// gone whatever the outcome.
//
// TryCallInto panics with an error wrapping ErrInvalid if the cell is invalid.
func (c *TryCachedFn[T]) TryCallInto() (T, error) {
	if c.mustUsable("TryCallInto") == StateCached {
		return c.takeValue(), nil
	}
	fn, _ := c.take("TryCallInto")
	var (
		v   T
		err error
	)
	c.guard(func() {
		v, err = fn()
	})
	c.release(ErrConsumed)
	return v, err
}

// SafeTryCall consumes the cell and, on success, returns a new cell holding
// the result. On error the error is returned and no cell survives, so a
// failed call never leaves a poisoned cell behind.
//
// SafeTryCall panics with an error wrapping ErrInvalid if the cell is invalid.
func (c *TryCachedFn[T]) SafeTryCall() (*TryCachedFn[T], error) {
	if c.mustUsable("SafeTryCall") == StatePending {
		fn, start := c.take("SafeTryCall")
		var (
			v   T
			err error
		)
		c.guard(func() {
			v, err = fn()
		})
		if err != nil {
			c.release(ErrConsumed)
			return nil, err
		}
		c.setCached(v, start)
	}
	next := &TryCachedFn[T]{slot: c.slot}
	c.release(ErrConsumed)
	return next, nil
}

// Clone returns a shallow copy of the cell. A pending clone shares the
// computation with the original.
func (c *TryCachedFn[T]) Clone() *TryCachedFn[T] {
	cp := *c
	return &cp
}

func (c *TryCachedFn[T]) String() string {
	return c.format("TryCachedFn")
}
