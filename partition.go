package dfamin

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Partition is one generation of the refinement: disjoint, non-empty blocks that
// together cover every state. Blocks are kept ordered by their lowest member so that two
// partitions with the same blocks compare equal position by position.
type Partition[S, L cmp.Ordered] struct {
	idx    *stateIndex[S, L]
	blocks []Block
}

func newPartition[S, L cmp.Ordered](idx *stateIndex[S, L], blocks []Block) *Partition[S, L] {
	slices.SortFunc(blocks, func(a, b Block) int {
		return cmp.Compare(a.first, b.first)
	})
	return &Partition[S, L]{idx: idx, blocks: blocks}
}

// initialPartition separates accepting from non-accepting states. An empty side yields no
// block.
func initialPartition[S, L cmp.Ordered](idx *stateIndex[S, L]) *Partition[S, L] {
	n := uint(idx.numStates())
	accepting := bitset.New(n)
	rejecting := bitset.New(n)
	for i, acc := range idx.accept {
		if acc {
			accepting.Set(uint(i))
		} else {
			rejecting.Set(uint(i))
		}
	}

	blocks := make([]Block, 0, 2)
	if rejecting.Any() {
		blocks = append(blocks, newBlock(NonAcceptingBlock, rejecting))
	}
	if accepting.Any() {
		blocks = append(blocks, newBlock(AcceptingBlock, accepting))
	}
	return newPartition(idx, blocks)
}

// Len returns the number of blocks.
func (p *Partition[S, L]) Len() int {
	return len(p.blocks)
}

// Names returns the block names in partition order.
func (p *Partition[S, L]) Names() []string {
	names := make([]string, len(p.blocks))
	for i, b := range p.blocks {
		names[i] = b.Name
	}
	return names
}

// Members returns the sorted states of the named block, or nil if there is no such block.
func (p *Partition[S, L]) Members(name string) []S {
	for _, b := range p.blocks {
		if b.Name == name {
			return p.states(b)
		}
	}
	return nil
}

// Blocks returns the member states of every block in partition order.
func (p *Partition[S, L]) Blocks() [][]S {
	out := make([][]S, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = p.states(b)
	}
	return out
}

// BlockOf returns the name of the block holding s.
func (p *Partition[S, L]) BlockOf(s S) (string, bool) {
	i, ok := p.idx.stateOf[s]
	if !ok {
		return "", false
	}
	for _, b := range p.blocks {
		if b.Contains(i) {
			return b.Name, true
		}
	}
	return "", false
}

// Equal reports whether both partitions consist of the same blocks as sets of states.
// Names are not compared.
func (p *Partition[S, L]) Equal(other *Partition[S, L]) bool {
	if len(p.blocks) != len(other.blocks) {
		return false
	}
	for i := range p.blocks {
		if !p.blocks[i].Equals(other.blocks[i]) {
			return false
		}
	}
	return true
}

func (p *Partition[S, L]) states(b Block) []S {
	indices := b.Indices()
	out := make([]S, len(indices))
	for i, j := range indices {
		out[i] = p.idx.states[j]
	}
	return out
}
