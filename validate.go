package dfamin

import (
	"cmp"
	"maps"
	"slices"
)

// Validate checks that d is a complete DFA over its own states and alphabet. The first
// defect is reported as a *ValidationError; states and symbols are visited in sorted order
// so the reported defect does not depend on map iteration.
//
// An empty alphabet is valid.
func Validate[S, L cmp.Ordered](d *DFA[S, L]) error {
	if d == nil {
		return ErrNilDFA
	}

	states := sortedSet(d.States)
	declared := make(map[S]struct{}, len(states))
	for _, s := range states {
		declared[s] = struct{}{}
	}
	symbols := sortedSet(d.Alphabet)
	inAlphabet := make(map[L]struct{}, len(symbols))
	for _, l := range symbols {
		inAlphabet[l] = struct{}{}
	}

	for _, s := range sortedSet(d.Accepting) {
		if _, ok := declared[s]; !ok {
			return &ValidationError{Err: ErrUndeclaredState, State: s}
		}
	}

	for _, s := range slices.Sorted(maps.Keys(d.Transitions)) {
		if _, ok := declared[s]; !ok {
			return &ValidationError{Err: ErrUndeclaredState, State: s}
		}
	}

	for _, s := range states {
		row := d.Transitions[s]
		for _, l := range slices.Sorted(maps.Keys(row)) {
			if _, ok := inAlphabet[l]; !ok {
				return &ValidationError{Err: ErrUndeclaredSymbol, State: s, Symbol: l}
			}
		}
		for _, l := range symbols {
			target, ok := row[l]
			if !ok {
				return &ValidationError{Err: ErrIncompleteTransitionTable, State: s, Symbol: l}
			}
			if _, ok := declared[target]; !ok {
				return &ValidationError{Err: ErrUndeclaredState, State: s, Symbol: l, Target: target}
			}
		}
	}

	return nil
}
