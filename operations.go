package dfamin

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ErrAlphabetMismatch is returned by Equivalent for automata over different alphabets.
var ErrAlphabetMismatch = errors.New("dfamin: automata have different alphabets")

// Totalize returns a complete copy of d. Every missing (state, symbol) transition is
// routed to dead, which becomes a non-accepting sink state if it is not a state of d
// already. An automaton that is complete is copied without adding dead.
//
// The returned automaton is validated; undeclared states or symbols in d are reported.
func Totalize[S, L cmp.Ordered](d *DFA[S, L], dead S) (*DFA[S, L], error) {
	if d == nil {
		return nil, ErrNilDFA
	}

	states := sortedSet(d.States)
	symbols := sortedSet(d.Alphabet)
	result := &DFA[S, L]{
		States:      slices.Clone(states),
		Alphabet:    symbols,
		Transitions: make(map[S]map[L]S, len(states)+1),
		Accepting:   sortedSet(d.Accepting),
	}

	needDead := false
	for s, row := range d.Transitions {
		result.Transitions[s] = maps.Clone(row)
	}
	for _, s := range states {
		row := result.Transitions[s]
		if row == nil {
			row = make(map[L]S, len(symbols))
			result.Transitions[s] = row
		}
		for _, l := range symbols {
			if _, ok := row[l]; !ok {
				row[l] = dead
				needDead = true
			}
		}
	}

	if needDead {
		if _, found := slices.BinarySearch(states, dead); !found {
			result.States = append(result.States, dead)
			row := make(map[L]S, len(symbols))
			for _, l := range symbols {
				row[l] = dead
			}
			result.Transitions[dead] = row
		}
	}

	if err := Validate(result); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveUnreachable returns a copy of d restricted to the states reachable from start.
func RemoveUnreachable[S, L cmp.Ordered](d *DFA[S, L], start S) (*DFA[S, L], error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	idx := newStateIndex(d)
	a, err := compile(idx)
	if err != nil {
		return nil, err
	}
	begin, ok := idx.stateOf[start]
	if !ok {
		return nil, &ValidationError{Err: ErrUndeclaredState, State: start}
	}

	live := getLiveStatesFromInitial(a, begin)
	result := &DFA[S, L]{
		Alphabet:    slices.Clone(idx.symbols),
		Transitions: make(map[S]map[L]S, live.Count()),
	}
	for i, ok := live.NextSet(0); ok; i, ok = live.NextSet(i + 1) {
		s := idx.states[i]
		result.States = append(result.States, s)
		if idx.accept[i] {
			result.Accepting = append(result.Accepting, s)
		}
		row := make(map[L]S, idx.numSymbols())
		for l, symbol := range idx.symbols {
			row[symbol] = idx.states[idx.step(int(i), l)]
		}
		result.Transitions[s] = row
	}
	return result, nil
}

// IsEmpty reports whether d accepts no string when started in start.
func IsEmpty[S, L cmp.Ordered](d *DFA[S, L], start S) (bool, error) {
	a, err := Compile(d)
	if err != nil {
		return false, err
	}
	begin, found := slices.BinarySearch(sortedSet(d.States), start)
	if !found {
		return false, &ValidationError{Err: ErrUndeclaredState, State: start}
	}
	return IsEmptyAutomaton(a, begin), nil
}

// IsEmptyAutomaton
// Returns true if the given automaton accepts no strings from start.
func IsEmptyAutomaton(a *Automaton, start int) bool {
	if a.GetNumStates() == 0 {
		// Common case: no states
		return true
	}
	if a.IsAccept(start) {
		// It accepts the empty string
		return false
	}
	live := getLiveStatesFromInitial(a, start)
	return !live.Intersection(a.getAcceptStates()).Any()
}

// getLiveStatesFromInitial marks every state reachable from start.
func getLiveStatesFromInitial(a *Automaton, start int) *bitset.BitSet {
	numStates := a.GetNumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 {
		return live
	}

	workList := []int{start}
	live.Set(uint(start))
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for label := 0; label < a.GetNumLabels(); label++ {
			dest := a.Step(s, label)
			if dest != -1 && !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return live
}

// Equivalent reports whether a started in startA and b started in startB accept the
// same language. Both automata are minimised together as one disjoint union, and the two
// start states are equivalent exactly when they land in the same block.
func Equivalent[S, L cmp.Ordered](a, b *DFA[S, L], startA, startB S, opts ...Option) (bool, error) {
	if err := Validate(a); err != nil {
		return false, err
	}
	if err := Validate(b); err != nil {
		return false, err
	}

	ia, ib := newStateIndex(a), newStateIndex(b)
	if !slices.Equal(ia.symbols, ib.symbols) {
		return false, ErrAlphabetMismatch
	}
	sa, ok := ia.stateOf[startA]
	if !ok {
		return false, &ValidationError{Err: ErrUndeclaredState, State: startA}
	}
	sb, ok := ib.stateOf[startB]
	if !ok {
		return false, &ValidationError{Err: ErrUndeclaredState, State: startB}
	}

	offset := ia.numStates()
	union := &DFA[int, L]{
		Alphabet:    ia.symbols,
		Transitions: make(map[int]map[L]int, offset+ib.numStates()),
	}
	parts := []struct {
		base int
		idx  *stateIndex[S, L]
	}{{0, ia}, {offset, ib}}
	for _, part := range parts {
		base, idx := part.base, part.idx
		for i := 0; i < idx.numStates(); i++ {
			union.States = append(union.States, base+i)
			if idx.accept[i] {
				union.Accepting = append(union.Accepting, base+i)
			}
			row := make(map[L]int, idx.numSymbols())
			for l, symbol := range idx.symbols {
				row[symbol] = base + idx.step(i, l)
			}
			union.Transitions[base+i] = row
		}
	}

	m, err := Minimize(union, opts...)
	if err != nil {
		return false, err
	}
	blockA, _ := m.BlockOf(sa)
	blockB, _ := m.BlockOf(offset + sb)
	return blockA == blockB, nil
}
