package hashset

import (
	"fmt"
	"strings"

	"github.com/fzft/go-hashset/log"
	"go.uber.org/zap"
)

const (
	DefaultCapacity = 16
	// DefaultMaxLoadFactor is the load factor above which the bucket array doubles.
	DefaultMaxLoadFactor = 0.7
)

type entry[K any] struct {
	key  K
	node *listNode[K]
}

// HashSet is a set of unique keys stored in a chained hash table.
// Hashing and equality are delegated to a KeyAdapter. A HashSet is not
// safe for concurrent use.
type HashSet[K any] struct {
	table   [][]entry[K]
	adapter KeyAdapter[K]
	order   orderList[K]
	count   int
	tag     string
	maxLoad float64
}

type options struct {
	capacity int
	maxLoad  float64
}

// Option configures a HashSet at construction.
type Option func(*options)

// WithCapacity sets the initial number of buckets. Values <= 0 select
// DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaxLoadFactor sets the load factor that triggers a rehash.
// Zero or a negative value keeps the bucket count fixed.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) {
		o.maxLoad = f
	}
}

// New creates an empty set for a custom key domain tagged with tag.
func New[K any](adapter KeyAdapter[K], tag string, opts ...Option) *HashSet[K] {
	o := options{capacity: DefaultCapacity, maxLoad: DefaultMaxLoadFactor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}
	return &HashSet[K]{
		table:   make([][]entry[K], o.capacity),
		adapter: adapter,
		tag:     tag,
		maxLoad: o.maxLoad,
	}
}

func (s *HashSet[K]) slot(key K) int {
	return int(s.adapter.Hash(key) % uint64(len(s.table)))
}

// find returns the position of key inside bucket index, or -1.
func (s *HashSet[K]) find(index int, key K) int {
	for i, e := range s.table[index] {
		if s.adapter.Equal(e.key, key) {
			return i
		}
	}
	return -1
}

// Add inserts key and reports whether it was not already present.
func (s *HashSet[K]) Add(key K) bool {
	index := s.slot(key)
	if s.find(index, key) >= 0 {
		return false
	}

	// Check if we need to resize the hash table
	if s.maxLoad > 0 && float64(s.count+1)/float64(len(s.table)) > s.maxLoad {
		s.resize()
		index = s.slot(key)
	}

	node := s.order.addTail(key)
	s.table[index] = append(s.table[index], entry[K]{key: key, node: node})
	s.count++
	return true
}

// resize doubles the bucket array. Keys are reinserted oldest first so
// every bucket keeps its insertion order.
func (s *HashSet[K]) resize() {
	from := len(s.table)
	s.table = make([][]entry[K], from*2)
	for node := s.order.head; node != nil; node = node.next {
		index := s.slot(node.value)
		s.table[index] = append(s.table[index], entry[K]{key: node.value, node: node})
	}
	log.Logger.Debug("hashset rehashed",
		zap.String("type", s.tag),
		zap.Int("from", from),
		zap.Int("to", len(s.table)),
		zap.Int("keys", s.count))
}

// Remove deletes key and reports whether it was present.
func (s *HashSet[K]) Remove(key K) bool {
	index := s.slot(key)
	i := s.find(index, key)
	if i < 0 {
		return false
	}

	bucket := s.table[index]
	s.order.remove(bucket[i].node)
	copy(bucket[i:], bucket[i+1:])
	bucket[len(bucket)-1] = entry[K]{}
	s.table[index] = bucket[:len(bucket)-1]
	s.count--
	return true
}

func (s *HashSet[K]) Contains(key K) bool {
	return s.find(s.slot(key), key) >= 0
}

// Count returns 1 if key is present and 0 otherwise.
func (s *HashSet[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Len returns the number of keys in the set
func (s *HashSet[K]) Len() int {
	return s.count
}

// Empty returns true if the set holds no keys
func (s *HashSet[K]) Empty() bool {
	return s.count == 0
}

// Clear removes every key. The bucket array keeps its length.
func (s *HashSet[K]) Clear() {
	for i := range s.table {
		s.table[i] = nil
	}
	s.order.empty()
	s.count = 0
}

// Keys returns a copy of all keys, most recently added first.
func (s *HashSet[K]) Keys() []K {
	keys := make([]K, 0, s.count)
	for node := s.order.tail; node != nil; node = node.prev {
		keys = append(keys, node.value)
	}
	return keys
}

// Buckets returns a snapshot of the bucket layout, one slice per slot.
// Keys within a slot are in insertion order.
func (s *HashSet[K]) Buckets() [][]K {
	buckets := make([][]K, len(s.table))
	for i, bucket := range s.table {
		keys := make([]K, len(bucket))
		for j, e := range bucket {
			keys[j] = e.key
		}
		buckets[i] = keys
	}
	return buckets
}

// Type returns the tag the set was constructed with.
func (s *HashSet[K]) Type() string {
	return s.tag
}

// Capacity returns the current number of buckets.
func (s *HashSet[K]) Capacity() int {
	return len(s.table)
}

func (s *HashSet[K]) LoadFactor() float64 {
	return float64(s.count) / float64(len(s.table))
}

func (s *HashSet[K]) String() string {
	var b strings.Builder
	b.WriteString("HashSet<" + s.tag + ">{")
	for i, key := range s.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", key)
	}
	b.WriteByte('}')
	return b.String()
}
