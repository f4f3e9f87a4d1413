package dfamin

const (
	// Golden ratio bit mixer.
	PHI_C64 = uint64(0x9e3779b97f4a7c15)
)

// mix32 is the 32-bit finalisation step of MurmurHash3.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// mixInts folds an ordered sequence of ints into one hash. Order matters: (1, 2) and
// (2, 1) hash differently.
func mixInts(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h = h*PHI_C64 + mix32(v)
	}
	return h
}
