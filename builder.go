package dfamin

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Minimized is the automaton rebuilt from the stable partition. Its states are the
// block names.
type Minimized[S, L cmp.Ordered] struct {
	// States holds every block name, sorted.
	States []string
	// Accepting holds the names of the blocks made of accepting states, sorted.
	Accepting []string
	// Transitions maps a block and a symbol to the target block.
	Transitions map[string]map[L]string
	// Blocks lists the original states grouped into each block, sorted.
	Blocks map[string][]S
	// Passes counts the refinement passes, the one confirming the fixpoint included.
	Passes int

	alphabet []L
	blockOf  map[S]string
}

// build reads the minimised automaton off the stable partition p. Every member of a
// stable block moves to the same blocks, so the lowest member stands in for the whole
// block.
func build[S, L cmp.Ordered](idx *stateIndex[S, L], p *Partition[S, L], passes int) (*Minimized[S, L], error) {
	m := &Minimized[S, L]{
		States:      make([]string, 0, p.Len()),
		Accepting:   make([]string, 0),
		Transitions: make(map[string]map[L]string, p.Len()),
		Blocks:      make(map[string][]S, p.Len()),
		Passes:      passes,
		alphabet:    slices.Clone(idx.symbols),
		blockOf:     make(map[S]string, idx.numStates()),
	}

	accepting := bitset.New(uint(idx.numStates()))
	for i, acc := range idx.accept {
		if acc {
			accepting.Set(uint(i))
		}
	}

	for _, b := range p.blocks {
		if _, dup := m.Blocks[b.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousBlockName, b.Name)
		}

		members := p.states(b)
		m.States = append(m.States, b.Name)
		m.Blocks[b.Name] = members
		for _, s := range members {
			m.blockOf[s] = b.Name
		}

		switch shared := b.members.IntersectionCardinality(accepting); {
		case shared == 0:
		case shared == b.members.Count():
			m.Accepting = append(m.Accepting, b.Name)
		default:
			return nil, fmt.Errorf("%w: %s", ErrMixedBlock, b.Name)
		}
	}

	r := newBlockResolver(p)
	for _, b := range p.blocks {
		row := make(map[L]string, idx.numSymbols())
		for l, symbol := range idx.symbols {
			target, err := r.name(idx.step(b.first, l))
			if err != nil {
				return nil, err
			}
			row[symbol] = target
		}
		m.Transitions[b.Name] = row
	}

	slices.Sort(m.States)
	slices.Sort(m.Accepting)
	return m, nil
}

// BlockOf returns the name of the block an original state was merged into.
func (m *Minimized[S, L]) BlockOf(s S) (string, bool) {
	name, ok := m.blockOf[s]
	return name, ok
}

// IsAccept reports whether the named block is accepting.
func (m *Minimized[S, L]) IsAccept(block string) bool {
	_, found := slices.BinarySearch(m.Accepting, block)
	return found
}

// Alphabet returns the sorted alphabet of the automaton.
func (m *Minimized[S, L]) Alphabet() []L {
	return slices.Clone(m.alphabet)
}

// DFA returns the minimised automaton as a DFA over block names, for example to feed it
// through Minimize again.
func (m *Minimized[S, L]) DFA() *DFA[string, L] {
	transitions := make(map[string]map[L]string, len(m.Transitions))
	for block, row := range m.Transitions {
		transitions[block] = make(map[L]string, len(row))
		for symbol, target := range row {
			transitions[block][symbol] = target
		}
	}
	return &DFA[string, L]{
		States:      slices.Clone(m.States),
		Alphabet:    slices.Clone(m.alphabet),
		Transitions: transitions,
		Accepting:   slices.Clone(m.Accepting),
	}
}
