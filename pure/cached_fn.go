package pure

// CachedFn is a lazily evaluated computation that caches its result after
// the first call.
//
// A CachedFn is owned by one caller at a time; it does no locking. Wrap it in
// a mutex if several goroutines must share it.
//
// The zero value holds nothing and is invalid; build cells with New or
// NewCached.
type CachedFn[T any] struct {
	slot[func() T, T]
}

// New wraps fn without calling it.
func New[T any](fn func() T, opts ...Option) *CachedFn[T] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return &CachedFn[T]{slot: pendingSlot[func() T, T](fn, opts)}
}

// NewCached returns a cell that already holds v.
func NewCached[T any](v T, opts ...Option) *CachedFn[T] {
	return &CachedFn[T]{slot: cachedSlot[func() T](v, opts)}
}

// Call runs the computation if it has not run yet and caches its result.
// It returns a pointer to the cached value.
//
// The cell is marked invalid while the computation runs. If the computation
// panics, the cell stays invalid and the panic propagates.
//
// Call panics with an error wrapping ErrInvalid if the cell is invalid.
func (c *CachedFn[T]) Call() *T {
	if c.mustUsable("Call") == StateCached {
		return &c.value
	}
	fn, start := c.take("Call")
	c.guard(func() {
		c.setCached(fn(), start)
	})
	return &c.value
}

// CallInto returns the value, running the computation if needed, and
// consumes the cell.
//
// CallInto panics with an error wrapping ErrInvalid if the cell is invalid.
func (c *CachedFn[T]) CallInto() T {
	if c.mustUsable("CallInto") == StateCached {
		return c.takeValue()
	}
	fn, _ := c.take("CallInto")
	var v T
	c.guard(func() {
		v = fn()
	})
	c.release(ErrConsumed)
	return v
}

// Clone returns a shallow copy of the cell. A pending clone shares the
// computation with the original, so calling both runs it twice.
func (c *CachedFn[T]) Clone() *CachedFn[T] {
	cp := *c
	return &cp
}

func (c *CachedFn[T]) String() string {
	return c.format("CachedFn")
}
