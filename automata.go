package dfamin

import "cmp"

// Automata builds small complete DFAs over a given alphabet. Each constructor returns the
// automaton together with its start state.
type Automata[L cmp.Ordered] struct {
	Alphabet []L
}

// MakeEmpty
// Returns a one-state DFA with the empty language.
func (a *Automata[L]) MakeEmpty() (*DFA[int, L], int) {
	d := a.newDFA(1)
	a.loop(d, 0, 0)
	return d, 0
}

// MakeEmptyString
// Returns a DFA that accepts only the empty string.
func (a *Automata[L]) MakeEmptyString() (*DFA[int, L], int) {
	d := a.newDFA(2)
	d.Accepting = []int{0}
	a.loop(d, 0, 1)
	a.loop(d, 1, 1)
	return d, 0
}

// MakeAnyString
// Returns a one-state DFA that accepts all strings.
func (a *Automata[L]) MakeAnyString() (*DFA[int, L], int) {
	d := a.newDFA(1)
	d.Accepting = []int{0}
	a.loop(d, 0, 0)
	return d, 0
}

// MakeString
// Returns a DFA that accepts exactly s. Every symbol of s must be in the alphabet.
func (a *Automata[L]) MakeString(s []L) (*DFA[int, L], int) {
	dead := len(s) + 1
	d := a.newDFA(len(s) + 2)
	d.Accepting = []int{len(s)}
	for i := 0; i <= len(s); i++ {
		a.loop(d, i, dead)
		if i < len(s) {
			d.Transitions[i][s[i]] = i + 1
		}
	}
	a.loop(d, dead, dead)
	return d, 0
}

func (a *Automata[L]) newDFA(numStates int) *DFA[int, L] {
	d := &DFA[int, L]{
		States:      make([]int, numStates),
		Alphabet:    a.Alphabet,
		Transitions: make(map[int]map[L]int, numStates),
	}
	for i := range d.States {
		d.States[i] = i
	}
	return d
}

// loop sends every symbol from state to dest.
func (a *Automata[L]) loop(d *DFA[int, L], state, dest int) {
	row := make(map[L]int, len(a.Alphabet))
	for _, l := range a.Alphabet {
		row[l] = dest
	}
	d.Transitions[state] = row
}
