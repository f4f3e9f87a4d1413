package dfamin

import "slices"

var _ Hashable = signature{}

// signature lists, for every symbol in sorted alphabet order, the index of the block (in
// the previous pass's partition) that holds the transition target. Position encodes the
// symbol.
type signature struct {
	blocks   []int
	hashCode uint64
}

func newSignature(blocks []int) signature {
	return signature{blocks: blocks, hashCode: mixInts(blocks)}
}

func (s signature) Hash() uint64 {
	return s.hashCode
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	return ok && s.hashCode == o.hashCode && slices.Equal(s.blocks, o.blocks)
}
