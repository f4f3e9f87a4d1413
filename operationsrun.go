package dfamin

import (
	"cmp"
	"fmt"
)

// Run reports whether a accepts labels when started in state start.
func Run(a *Automaton, start int, labels []int) bool {
	state := start
	for _, label := range labels {
		nextState := a.Step(state, label)
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}

// Runner simulates a DFA from any of its states.
type Runner[S, L cmp.Ordered] struct {
	a       *Automaton
	stateOf map[S]int
	labelOf map[L]int
}

// Compile validates d and packs it into an Automaton whose state and label numbers are
// the sorted positions of d's states and symbols.
func Compile[S, L cmp.Ordered](d *DFA[S, L]) (*Automaton, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	return compile(newStateIndex(d))
}

func compile[S, L cmp.Ordered](idx *stateIndex[S, L]) (*Automaton, error) {
	a := NewAutomatonV1(idx.numStates(), idx.numSymbols())
	for i := 0; i < idx.numStates(); i++ {
		a.CreateState()
		a.SetAccept(i, idx.accept[i])
	}
	for i := 0; i < idx.numStates(); i++ {
		for l := 0; l < idx.numSymbols(); l++ {
			if err := a.AddTransition(i, l, idx.step(i, l)); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// NewRunner compiles d for simulation.
func NewRunner[S, L cmp.Ordered](d *DFA[S, L]) (*Runner[S, L], error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	idx := newStateIndex(d)
	a, err := compile(idx)
	if err != nil {
		return nil, err
	}

	labelOf := make(map[L]int, idx.numSymbols())
	for i, l := range idx.symbols {
		labelOf[l] = i
	}
	return &Runner[S, L]{a: a, stateOf: idx.stateOf, labelOf: labelOf}, nil
}

// Accepts reports whether the DFA accepts input when started in start.
func (r *Runner[S, L]) Accepts(start S, input []L) (bool, error) {
	state, ok := r.stateOf[start]
	if !ok {
		return false, &ValidationError{Err: ErrUndeclaredState, State: start}
	}
	labels := make([]int, len(input))
	for i, l := range input {
		label, ok := r.labelOf[l]
		if !ok {
			return false, &ValidationError{Err: ErrUndeclaredSymbol, State: start, Symbol: l}
		}
		labels[i] = label
	}
	return Run(r.a, state, labels), nil
}

// Runner compiles the minimised automaton for simulation from any of its blocks.
func (m *Minimized[S, L]) Runner() (*Runner[string, L], error) {
	r, err := NewRunner(m.DFA())
	if err != nil {
		return nil, fmt.Errorf("compile minimized automaton: %w", err)
	}
	return r, nil
}
