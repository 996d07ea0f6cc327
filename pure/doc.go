// Package pure provides single-slot memoization for zero-argument computations.
//
// A cell starts out holding a computation and ends up holding its result:
//
//	conn := pure.New(func() *Conn { return dial(addr) })
//	c := *conn.Call() // dials
//	c = *conn.Call()  // same *Conn, no second dial
//
// The computation runs at most once. Every cell is in exactly one of three
// states:
//
//   - Pending: the computation has not run.
//   - Cached: the result is stored and returned from now on.
//   - Invalid: nothing is held.
//
// A cell is invalid while its computation runs, and it stays invalid if the
// computation panics. A half-finished computation is neither retried nor
// trusted. Any invocation on an invalid cell panics with an error wrapping
// ErrInvalid; the cell can only be dropped. Use IsInvalid to check first.
//
// Fallible computations go in a TryCachedFn, whose methods choose what a
// returned error does to the cell:
//
//	| method           | on error                   |
//	|------------------|----------------------------|
//	| PoisoningTryCall | cell becomes invalid       |
//	| TryCall          | cell stays pending (retry) |
//	| RetryCall        | TryCall, n times           |
//	| TryCallInto      | cell is consumed           |
//	| SafeTryCall      | cell is consumed           |
//
// Cells are not safe for concurrent use. They assume a single owner; share
// one across goroutines only behind your own mutex.
package pure
