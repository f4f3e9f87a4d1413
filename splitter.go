package dfamin

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"
)

// split groups the members of b by their transition signature against the resolver's
// partition. If all members agree, b is returned unchanged, name included, so a stable
// block keeps its identity from pass to pass. Otherwise every group becomes a block named
// after its members.
func split[S, L cmp.Ordered](b Block, r *blockResolver[S, L]) ([]Block, error) {
	idx := r.partition.idx
	numSymbols := idx.numSymbols()
	n := uint(idx.numStates())

	groups := NewHashMap[*bitset.BitSet](WithCapacity(b.Size()))
	for i, ok := b.members.NextSet(0); ok; i, ok = b.members.NextSet(i + 1) {
		targets := make([]int, numSymbols)
		for l := 0; l < numSymbols; l++ {
			block, err := r.resolve(idx.step(int(i), l))
			if err != nil {
				return nil, err
			}
			targets[l] = block
		}

		sig := newSignature(targets)
		group, found := groups.Get(sig)
		if !found {
			group = bitset.New(n)
			groups.Set(sig, group)
		}
		group.Set(i)
	}

	if groups.Size() == 1 {
		return []Block{b}, nil
	}

	out := make([]Block, 0, groups.Size())
	for _, members := range groups.Iterator() {
		out = append(out, newBlock(blockName(idx.states, members), members))
	}
	return out, nil
}
