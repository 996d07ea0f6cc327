package pure_test

import (
	"testing"

	"github.com/on-the-ground/cachedfn/pure"
	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "invalid", pure.StateInvalid.String())
	assert.Equal(t, "pending", pure.StatePending.String())
	assert.Equal(t, "cached", pure.StateCached.String())
}

// Walks one cell through every transition and checks the predicates agree
// with State at each step.
func TestState_Transitions(t *testing.T) {
	attempts := 0
	c := pure.NewTry(func() (int, error) {
		attempts++
		if attempts == 1 {
			return 0, errNotYet
		}
		return attempts, nil
	})

	check := func(want pure.State) {
		t.Helper()
		assertOneState(t, c)
		assert.Equal(t, want, c.State())
		assert.Equal(t, want == pure.StatePending, c.IsPending())
		assert.Equal(t, want == pure.StateCached, c.IsCached())
		assert.Equal(t, want == pure.StateInvalid, c.IsInvalid())
	}

	check(pure.StatePending)
	_, _ = c.TryCall()
	check(pure.StatePending)
	_, _ = c.TryCall()
	check(pure.StateCached)
	_, _ = c.TryCallInto()
	check(pure.StateInvalid)
}
