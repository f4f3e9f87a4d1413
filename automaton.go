package dfamin

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Automaton is a deterministic automaton over dense integer states and labels. States
// are created with CreateState; labels are 0..numLabels-1. Each (state, label) pair has
// at most one transition. It is the compiled form used to simulate a DFA.
type Automaton struct {
	numStates int
	numLabels int

	// transitions[state*numLabels+label] is the destination, or -1 if undefined.
	transitions []int

	isAccept *bitset.BitSet
}

// NewAutomaton returns an empty automaton over numLabels labels.
func NewAutomaton(numLabels int) *Automaton {
	return NewAutomatonV1(2, numLabels)
}

// NewAutomatonV1 returns an empty automaton with room for numStates states.
func NewAutomatonV1(numStates, numLabels int) *Automaton {
	return &Automaton{
		numLabels:   numLabels,
		transitions: make([]int, 0, numStates*numLabels),
		isAccept:    bitset.New(uint(numStates)),
	}
}

// CreateState Create a new state without transitions.
func (a *Automaton) CreateState() int {
	state := a.numStates
	for l := 0; l < a.numLabels; l++ {
		a.transitions = append(a.transitions, -1)
	}
	a.numStates++
	return state
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) {
	a.isAccept.SetTo(uint(state), accept)
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// Returns accept states. If the bit is set then that state is an accept state.
func (a *Automaton) getAcceptStates() *bitset.BitSet {
	return a.isAccept
}

// AddTransition Add the transition source --label--> dest.
func (a *Automaton) AddTransition(source, label, dest int) error {
	numStates := a.GetNumStates()
	if source < 0 || source >= numStates {
		return fmt.Errorf("source state (%d) out of range", source)
	}
	if dest < 0 || dest >= numStates {
		return fmt.Errorf("dest state (%d) out of range", dest)
	}
	if label < 0 || label >= a.numLabels {
		return fmt.Errorf("label (%d) out of range", label)
	}

	i := source*a.numLabels + label
	if a.transitions[i] != -1 {
		return fmt.Errorf("state (%d) already has a transition on label (%d)", source, label)
	}
	a.transitions[i] = dest
	return nil
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return a.numStates
}

// GetNumLabels How many labels this automaton is defined over.
func (a *Automaton) GetNumLabels() int {
	return a.numLabels
}

// GetNumTransitionsWithState How many transitions leave this state.
func (a *Automaton) GetNumTransitionsWithState(state int) int {
	count := 0
	for l := 0; l < a.numLabels; l++ {
		if a.transitions[state*a.numLabels+l] != -1 {
			count++
		}
	}
	return count
}

// IsTotal Returns true if every state has a transition on every label.
func (a *Automaton) IsTotal() bool {
	for _, dest := range a.transitions {
		if dest == -1 {
			return false
		}
	}
	return true
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if no matching outgoing transition
func (a *Automaton) Step(state, label int) int {
	if state < 0 || state >= a.numStates || label < 0 || label >= a.numLabels {
		return -1
	}
	return a.transitions[state*a.numLabels+label]
}
