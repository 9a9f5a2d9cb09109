package hashset

import "iter"

// Iterator walks the keys of a set bucket by bucket. It is single pass;
// call HashSet.Iterator again to rescan. Mutating the set while an
// iterator is in use is not supported.
type Iterator[K any] struct {
	set    *HashSet[K]
	bucket int
	pos    int
}

// Iterator returns a fresh iterator over the keys currently in the set.
func (s *HashSet[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{set: s}
}

// advance moves to the next non-empty position without consuming it.
func (it *Iterator[K]) advance() bool {
	table := it.set.table
	for it.bucket < len(table) {
		if it.pos < len(table[it.bucket]) {
			return true
		}
		it.bucket++
		it.pos = 0
	}
	return false
}

// HasNext reports whether Next will return a key.
func (it *Iterator[K]) HasNext() bool {
	return it.advance()
}

// Next returns the next key, or ErrIteratorExhausted.
func (it *Iterator[K]) Next() (K, error) {
	if !it.advance() {
		var zero K
		return zero, ErrIteratorExhausted
	}
	key := it.set.table[it.bucket][it.pos].key
	it.pos++
	return key, nil
}

// All returns a range-over-func sequence driven by a fresh iterator.
func (s *HashSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := s.Iterator()
		for it.HasNext() {
			key, _ := it.Next()
			if !yield(key) {
				return
			}
		}
	}
}
