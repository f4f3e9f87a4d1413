package dfamin

import (
	"cmp"
	"fmt"
)

// blockResolver finds the block of a state in one fixed partition, remembering every
// answer. A resolver belongs to a single pass; the next pass builds a new partition and
// therefore a new resolver.
type blockResolver[S, L cmp.Ordered] struct {
	partition *Partition[S, L]
	// cache[state] is the block index of state, or -1 if not looked up yet.
	cache  []int
	hits   int
	misses int
}

func newBlockResolver[S, L cmp.Ordered](p *Partition[S, L]) *blockResolver[S, L] {
	cache := make([]int, p.idx.numStates())
	for i := range cache {
		cache[i] = -1
	}
	return &blockResolver[S, L]{partition: p, cache: cache}
}

// resolve returns the index of the block of p holding state.
func (r *blockResolver[S, L]) resolve(state int) (int, error) {
	if b := r.cache[state]; b >= 0 {
		r.hits++
		return b, nil
	}

	r.misses++
	for i, b := range r.partition.blocks {
		if b.Contains(state) {
			r.cache[state] = i
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %v", ErrStateNotInPartition, r.partition.idx.states[state])
}

// name returns the name of the block holding state.
func (r *blockResolver[S, L]) name(state int) (string, error) {
	i, err := r.resolve(state)
	if err != nil {
		return "", err
	}
	return r.partition.blocks[i].Name, nil
}
