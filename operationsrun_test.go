package dfamin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	// accepts words over {0,1} with an odd number of 1s
	parity := NewAutomaton(2)
	even := parity.CreateState()
	odd := parity.CreateState()
	parity.SetAccept(odd, true)
	require.NoError(t, parity.AddTransition(even, 0, even))
	require.NoError(t, parity.AddTransition(even, 1, odd))
	require.NoError(t, parity.AddTransition(odd, 0, odd))
	require.NoError(t, parity.AddTransition(odd, 1, even))

	partial := NewAutomaton(2)
	p0 := partial.CreateState()
	p1 := partial.CreateState()
	partial.SetAccept(p1, true)
	require.NoError(t, partial.AddTransition(p0, 0, p1))

	type args struct {
		a      *Automaton
		start  int
		labels []int
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"EmptyWordEven", args{parity, even, nil}, false},
		{"EmptyWordOdd", args{parity, odd, nil}, true},
		{"OneOne", args{parity, even, []int{1}}, true},
		{"TwoOnes", args{parity, even, []int{1, 0, 1}}, false},
		{"ThreeOnes", args{parity, even, []int{1, 1, 0, 1, 0}}, true},
		{"MissingTransition", args{partial, p0, []int{1}}, false},
		{"DefinedTransition", args{partial, p0, []int{0}}, true},
		{"PastEnd", args{partial, p0, []int{0, 0}}, false},
		{"UnknownLabel", args{parity, even, []int{7}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(tt.args.a, tt.args.start, tt.args.labels), "Run(%v, %v)", tt.args.start, tt.args.labels)
		})
	}
}

func TestRunner(t *testing.T) {
	r, err := NewRunner(fiveStateDFA())
	require.NoError(t, err)

	tests := []struct {
		start string
		word  []string
		want  bool
	}{
		{"A", []string{"0", "1", "1"}, true},
		{"A", []string{"0", "1"}, false},
		{"E", nil, true},
		{"D", []string{"1"}, true},
		{"C", []string{"1", "1", "0", "1", "1"}, true},
	}
	for _, tt := range tests {
		got, err := r.Accepts(tt.start, tt.word)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %v", tt.start, tt.word)
	}

	t.Run("UnknownStart", func(t *testing.T) {
		_, err := r.Accepts("Z", nil)
		assert.ErrorIs(t, err, ErrUndeclaredState)
	})

	t.Run("UnknownSymbol", func(t *testing.T) {
		_, err := r.Accepts("A", []string{"0", "2"})
		assert.ErrorIs(t, err, ErrUndeclaredSymbol)
	})

	t.Run("Minimized", func(t *testing.T) {
		m, err := Minimize(fiveStateDFA())
		require.NoError(t, err)
		mr, err := m.Runner()
		require.NoError(t, err)

		got, err := mr.Accepts("{A,C}", []string{"0", "1", "1"})
		require.NoError(t, err)
		assert.True(t, got)
		got, err = mr.Accepts("{B}", []string{"1"})
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestAutomata(t *testing.T) {
	automata := &Automata[rune]{Alphabet: []rune("ab")}

	accepts := func(t *testing.T, d *DFA[int, rune], start int, word string) bool {
		t.Helper()
		r, err := NewRunner(d)
		require.NoError(t, err)
		ok, err := r.Accepts(start, []rune(word))
		require.NoError(t, err)
		return ok
	}

	t.Run("MakeEmpty", func(t *testing.T) {
		d, start := automata.MakeEmpty()
		assert.False(t, accepts(t, d, start, ""))
		assert.False(t, accepts(t, d, start, "ab"))
	})

	t.Run("MakeEmptyString", func(t *testing.T) {
		d, start := automata.MakeEmptyString()
		assert.True(t, accepts(t, d, start, ""))
		assert.False(t, accepts(t, d, start, "a"))
	})

	t.Run("MakeAnyString", func(t *testing.T) {
		d, start := automata.MakeAnyString()
		assert.True(t, accepts(t, d, start, ""))
		assert.True(t, accepts(t, d, start, "abba"))
	})

	t.Run("MakeString", func(t *testing.T) {
		d, start := automata.MakeString([]rune("aab"))
		assert.True(t, accepts(t, d, start, "aab"))
		assert.False(t, accepts(t, d, start, "aa"))
		assert.False(t, accepts(t, d, start, "aabb"))
		assert.False(t, accepts(t, d, start, "bab"))

		m, err := Minimize(d)
		require.NoError(t, err)
		assert.Len(t, m.States, 5)
	})
}
