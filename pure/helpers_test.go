package pure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stateful interface {
	IsPending() bool
	IsCached() bool
	IsInvalid() bool
}

// assertOneState checks that exactly one state predicate holds.
func assertOneState(t *testing.T, c stateful) {
	t.Helper()
	n := 0
	for _, b := range []bool{c.IsPending(), c.IsCached(), c.IsInvalid()} {
		if b {
			n++
		}
	}
	assert.Equal(t, 1, n, "exactly one state must hold")
}

// recoverError runs fn, which must panic with an error, and returns that error.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "expected panic with error, got %T", r)
		err = e
	}()
	fn()
	return nil
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}
