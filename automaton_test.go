package dfamin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomaton(t *testing.T) {
	t.Run("CreateAndStep", func(t *testing.T) {
		a := NewAutomaton(2)
		s0 := a.CreateState()
		s1 := a.CreateState()
		s2 := a.CreateState()
		assert.Equal(t, []int{0, 1, 2}, []int{s0, s1, s2})
		assert.Equal(t, 3, a.GetNumStates())
		assert.Equal(t, 2, a.GetNumLabels())

		a.SetAccept(s2, true)
		assert.True(t, a.IsAccept(s2))
		assert.False(t, a.IsAccept(s0))
		a.SetAccept(s2, false)
		assert.False(t, a.IsAccept(s2))

		require.NoError(t, a.AddTransition(s0, 1, s2))
		assert.Equal(t, s2, a.Step(s0, 1))
		assert.Equal(t, -1, a.Step(s0, 0))
		assert.Equal(t, 1, a.GetNumTransitionsWithState(s0))
		assert.Equal(t, 0, a.GetNumTransitionsWithState(s1))
	})

	t.Run("StepOutOfRange", func(t *testing.T) {
		a := NewAutomaton(1)
		s := a.CreateState()
		require.NoError(t, a.AddTransition(s, 0, s))
		assert.Equal(t, -1, a.Step(s, 1))
		assert.Equal(t, -1, a.Step(s, -1))
		assert.Equal(t, -1, a.Step(5, 0))
	})

	t.Run("AddTransitionErrors", func(t *testing.T) {
		a := NewAutomaton(1)
		s := a.CreateState()

		assert.Error(t, a.AddTransition(1, 0, s))
		assert.Error(t, a.AddTransition(s, 0, 3))
		assert.Error(t, a.AddTransition(s, 2, s))

		require.NoError(t, a.AddTransition(s, 0, s))
		assert.ErrorContains(t, a.AddTransition(s, 0, s), "already has a transition")
	})

	t.Run("IsTotal", func(t *testing.T) {
		a := NewAutomaton(2)
		s0 := a.CreateState()
		s1 := a.CreateState()
		require.NoError(t, a.AddTransition(s0, 0, s1))
		require.NoError(t, a.AddTransition(s0, 1, s1))
		require.NoError(t, a.AddTransition(s1, 0, s0))
		assert.False(t, a.IsTotal())
		require.NoError(t, a.AddTransition(s1, 1, s1))
		assert.True(t, a.IsTotal())
	})

	t.Run("NoLabels", func(t *testing.T) {
		a := NewAutomaton(0)
		a.CreateState()
		a.CreateState()
		assert.Equal(t, 2, a.GetNumStates())
		assert.True(t, a.IsTotal())
	})

	t.Run("Compile", func(t *testing.T) {
		a, err := Compile(sixStateDFA())
		require.NoError(t, err)
		assert.Equal(t, 6, a.GetNumStates())
		assert.True(t, a.IsTotal())
		// labels: a=0, b=1
		assert.Equal(t, 1, a.Step(0, 0))
		assert.Equal(t, 2, a.Step(0, 1))
		assert.True(t, a.IsAccept(5))
		assert.False(t, a.IsAccept(4))

		d := sixStateDFA()
		delete(d.Transitions[2], "b")
		_, err = Compile(d)
		assert.ErrorIs(t, err, ErrIncompleteTransitionTable)
	})
}
