package hashset

import "hash/fnv"

// KeyAdapter supplies hashing and equality for one key domain.
// Equal keys must produce equal hashes.
type KeyAdapter[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// StringAdapter hashes text keys with FNV-1a.
type StringAdapter struct{}

func (StringAdapter) Hash(key string) uint64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(key))
	return hasher.Sum64()
}

func (StringAdapter) Equal(a, b string) bool {
	return a == b
}

// IntegerAdapter hashes signed integers, negative values included.
type IntegerAdapter struct{}

// Hash runs the splitmix64 finalizer over the key's bits so that
// consecutive integers land in different buckets.
func (IntegerAdapter) Hash(key int64) uint64 {
	x := uint64(key)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func (IntegerAdapter) Equal(a, b int64) bool {
	return a == b
}
