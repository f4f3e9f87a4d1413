package dfamin

import (
	"iter"
)

// Hashable is a key of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. Iteration follows insertion
// order so that anything derived from it is reproducible. It is not safe for concurrent
// use; the splitter builds one per block.
type HashMap[T any] struct {
	buckets    []*Entry[T]
	order      []*Entry[T]
	mask       uint64
	emptyValue T
	loadFactor float64
}

// Entry is one key/value pair of a HashMap.
type Entry[T any] struct {
	key   Hashable
	value T
	next  *Entry[T]
}

type optionsHashMap struct {
	capacity   int     // default 1
	loadFactor float64 // default 0.75
}

func newOptionsHashMap(opts ...OptionsHashMap) *optionsHashMap {
	options := &optionsHashMap{
		capacity:   1,
		loadFactor: 0.75,
	}

	for _, opt := range opts {
		opt(options)
	}

	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}
	options.capacity = realCap

	if options.loadFactor <= 0 {
		options.loadFactor = 0.75
	}

	return options
}

type OptionsHashMap func(hashMap *optionsHashMap)

// WithCapacity sets the initial bucket count, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

// WithLoadFactor sets the size/bucket ratio above which the table doubles.
func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.loadFactor = loadFactor
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := newOptionsHashMap(options...)

	return &HashMap[T]{
		buckets:    make([]*Entry[T], opt.capacity),
		mask:       uint64(opt.capacity - 1),
		loadFactor: opt.loadFactor,
	}
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	e := &Entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.buckets[index] = e
	m.order = append(m.order, e)

	if float64(len(m.order))/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

func (m *HashMap[T]) Delete(key Hashable) {
	index := key.Hash() & m.mask

	var prev *Entry[T]
	for e := m.buckets[index]; e != nil; prev, e = e, e.next {
		if e.key.Equals(key) {
			if prev == nil {
				m.buckets[index] = e.next
			} else {
				prev.next = e.next
			}
			for i, o := range m.order {
				if o == e {
					m.order = append(m.order[:i], m.order[i+1:]...)
					break
				}
			}
			return
		}
	}
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*Entry[T], newCap)
	newMask := uint64(newCap - 1)

	// Entries are relinked in place so that m.order stays valid.
	for _, e := range m.order {
		newIndex := e.key.Hash() & newMask
		e.next = newBuckets[newIndex]
		newBuckets[newIndex] = e
	}

	m.buckets = newBuckets
	m.mask = newMask
}

func (m *HashMap[T]) Size() int {
	return len(m.order)
}

// Iterator yields entries in insertion order.
func (m *HashMap[T]) Iterator() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, e := range m.order {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
