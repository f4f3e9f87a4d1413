package dfamin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilDFA is returned when a nil automaton is passed in.
	ErrNilDFA = errors.New("dfamin: nil automaton")

	// ErrIncompleteTransitionTable indicates a (state, symbol) pair without a target.
	ErrIncompleteTransitionTable = errors.New("dfamin: incomplete transition table")

	// ErrUndeclaredState indicates a transition source, a transition target or an
	// accepting entry that is missing from the state set.
	ErrUndeclaredState = errors.New("dfamin: undeclared state")

	// ErrUndeclaredSymbol indicates a transition on a symbol outside the alphabet.
	ErrUndeclaredSymbol = errors.New("dfamin: undeclared symbol")
)

// Internal consistency errors. None of them can be observed for an automaton that passed
// validation.
var (
	ErrStateNotInPartition = errors.New("dfamin: state not found in any block")
	ErrMixedBlock          = errors.New("dfamin: block mixes accepting and non-accepting states")
	ErrAmbiguousBlockName  = errors.New("dfamin: two blocks render to the same name")
	ErrNoFixpoint          = errors.New("dfamin: refinement did not reach a fixpoint")
)

// ValidationError describes the first defect found in an input automaton. It unwraps to
// one of the sentinel errors above.
type ValidationError struct {
	Err    error
	State  any
	Symbol any
	Target any
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if e.State != nil {
		fmt.Fprintf(&sb, ": state %v", e.State)
	}
	if e.Symbol != nil {
		fmt.Fprintf(&sb, ", symbol %v", e.Symbol)
	}
	if e.Target != nil {
		fmt.Fprintf(&sb, ", target %v", e.Target)
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
