package pure

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// State is the variant a cell currently holds.
type State uint8

const (
	// StateInvalid holds nothing. The zero value of every cell is invalid.
	StateInvalid State = iota
	// StatePending holds a computation that has not run yet.
	StatePending
	// StateCached holds the result of the computation.
	StateCached
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCached:
		return "cached"
	default:
		return "invalid"
	}
}

// slot is the tagged union shared by CachedFn and TryCachedFn.
// Only the field matching state is meaningful; the others are zero.
type slot[F, T any] struct {
	state  State
	reason error // why the slot is invalid, nil otherwise

	fn    F
	value T

	span     TimeSpan
	computed bool

	opts options
}

func pendingSlot[F, T any](fn F, opts []Option) slot[F, T] {
	return slot[F, T]{state: StatePending, fn: fn, opts: newOptions(opts)}
}

func cachedSlot[F, T any](v T, opts []Option) slot[F, T] {
	return slot[F, T]{state: StateCached, value: v, opts: newOptions(opts)}
}

// Result returns the cached value, if any.
func (s *slot[F, T]) Result() (T, bool) {
	if s.state != StateCached {
		var zero T
		return zero, false
	}
	return s.value, true
}

// ResultPtr returns a pointer to the cached value, or nil if nothing is cached.
func (s *slot[F, T]) ResultPtr() *T {
	if s.state != StateCached {
		return nil
	}
	return &s.value
}

// Pending returns the computation if it has not run yet.
func (s *slot[F, T]) Pending() (F, bool) {
	if s.state != StatePending {
		var zero F
		return zero, false
	}
	return s.fn, true
}

// PendingPtr returns a pointer to the pending computation, or nil.
func (s *slot[F, T]) PendingPtr() *F {
	if s.state != StatePending {
		return nil
	}
	return &s.fn
}

// IntoResult moves the cached value out, leaving the cell consumed.
// If nothing is cached the cell is left untouched and ok is false.
func (s *slot[F, T]) IntoResult() (v T, ok bool) {
	if s.state != StateCached {
		return v, false
	}
	return s.takeValue(), true
}

// IntoPending moves the computation out, leaving the cell consumed.
// If the cell is not pending it is left untouched and ok is false.
func (s *slot[F, T]) IntoPending() (fn F, ok bool) {
	if s.state != StatePending {
		return fn, false
	}
	fn = s.fn
	s.release(ErrConsumed)
	return fn, true
}

func (s *slot[F, T]) State() State    { return s.state }
func (s *slot[F, T]) IsPending() bool { return s.state == StatePending }
func (s *slot[F, T]) IsCached() bool  { return s.state == StateCached }
func (s *slot[F, T]) IsInvalid() bool { return s.state == StateInvalid }

// ComputedDuring reports when the cached value was computed.
// It is false for cells built already cached and for cells without a value.
func (s *slot[F, T]) ComputedDuring() (TimeSpan, bool) {
	if s.state != StateCached || !s.computed {
		var zero TimeSpan
		return zero, false
	}
	return s.span, true
}

func (s *slot[F, T]) logger() *zap.Logger {
	if s.opts.logger == nil {
		return zap.NewNop()
	}
	return s.opts.logger
}

// mustUsable returns the current state, or panics if the slot is invalid.
func (s *slot[F, T]) mustUsable(op string) State {
	if s.state != StateInvalid {
		return s.state
	}
	var err error
	if s.reason == nil {
		err = fmt.Errorf("%w: %s", ErrInvalid, op)
	} else {
		err = fmt.Errorf("%w: %s: %w", ErrInvalid, op, s.reason)
	}
	s.logger().Error("invoked invalid cached fn", zap.String("op", op), zap.Error(err))
	panic(err)
}

// take moves the computation out and marks the slot in flight.
// Callers run the computation under guard.
func (s *slot[F, T]) take(op string) (F, time.Time) {
	fn := s.fn
	s.release(ErrInFlight)
	s.logger().Debug("computing", zap.String("op", op))
	return fn, time.Now()
}

// takeValue moves the cached value out and marks the slot consumed.
func (s *slot[F, T]) takeValue() T {
	v := s.value
	s.release(ErrConsumed)
	return v
}

func (s *slot[F, T]) setCached(v T, start time.Time) {
	s.state, s.reason = StateCached, nil
	s.value = v
	s.span, s.computed = spanSince(start), true
	s.logger().Debug("cached", zap.Duration("took", s.span.Duration()))
}

func (s *slot[F, T]) setPending(fn F) {
	s.state, s.reason = StatePending, nil
	s.fn = fn
}

func (s *slot[F, T]) poison(err error) {
	s.release(fmt.Errorf("%w: %w", ErrPoisoned, err))
	s.logger().Warn("poisoned by error", zap.Error(err))
}

// release drops whatever payload the slot holds and marks it invalid.
func (s *slot[F, T]) release(reason error) {
	var (
		zeroF    F
		zeroT    T
		zeroSpan TimeSpan
	)
	s.fn, s.value = zeroF, zeroT
	s.span, s.computed = zeroSpan, false
	s.state, s.reason = StateInvalid, reason
}

// guard runs body. If body does not return normally (panic or
// runtime.Goexit) the slot is left invalid with ErrAborted.
func (s *slot[F, T]) guard(body func()) {
	completed := false
	defer func() {
		if !completed {
			s.release(ErrAborted)
			s.logger().Error("computation aborted")
		}
	}()
	body()
	completed = true
}

func (s *slot[F, T]) format(name string) string {
	switch s.state {
	case StatePending:
		return name + "(Pending)"
	case StateCached:
		return fmt.Sprintf("%s(Cached: %v)", name, s.value)
	default:
		if s.reason == nil {
			return name + "(Invalid)"
		}
		return fmt.Sprintf("%s(Invalid: %v)", name, s.reason)
	}
}
