package dfamin

import (
	"cmp"
	"slices"
)

// DFA is a complete deterministic finite automaton given as plain Go collections.
// States, Alphabet and Accepting are sets; repeated entries are ignored. Transitions must
// define a target for every state and every alphabet symbol.
//
// No start state is stored: minimisation works on the given state set as a whole. Use
// RemoveUnreachable first if unreachable states should not take part.
type DFA[S, L cmp.Ordered] struct {
	States      []S
	Alphabet    []L
	Transitions map[S]map[L]S
	Accepting   []S
}

// stateIndex maps states and symbols to dense indices in sorted order. Every structure
// built during refinement works on these indices; the original values are only needed
// again for naming blocks and assembling the result.
type stateIndex[S, L cmp.Ordered] struct {
	states  []S
	symbols []L
	stateOf map[S]int
	// delta[s*len(symbols)+l] is the target index of state s on symbol l.
	delta  []int
	accept []bool
}

func sortedSet[T cmp.Ordered](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// newStateIndex assumes d has been validated.
func newStateIndex[S, L cmp.Ordered](d *DFA[S, L]) *stateIndex[S, L] {
	idx := &stateIndex[S, L]{
		states:  sortedSet(d.States),
		symbols: sortedSet(d.Alphabet),
	}

	idx.stateOf = make(map[S]int, len(idx.states))
	for i, s := range idx.states {
		idx.stateOf[s] = i
	}

	numSymbols := len(idx.symbols)
	idx.delta = make([]int, len(idx.states)*numSymbols)
	for i, s := range idx.states {
		row := d.Transitions[s]
		for j, l := range idx.symbols {
			idx.delta[i*numSymbols+j] = idx.stateOf[row[l]]
		}
	}

	idx.accept = make([]bool, len(idx.states))
	for _, s := range d.Accepting {
		idx.accept[idx.stateOf[s]] = true
	}
	return idx
}

func (idx *stateIndex[S, L]) numStates() int {
	return len(idx.states)
}

func (idx *stateIndex[S, L]) numSymbols() int {
	return len(idx.symbols)
}

// step returns the target index of state on the symbol at position label.
func (idx *stateIndex[S, L]) step(state, label int) int {
	return idx.delta[state*len(idx.symbols)+label]
}
