package hashset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorExhaustive(t *testing.T) {
	set := NewString()
	set.Add("key1")
	set.Add("key2")
	keys := []string{"key1", "key2", "invalid"}

	it := set.Iterator()
	seen := map[string]bool{}

	require.True(t, it.HasNext())
	require.True(t, it.HasNext(), "HasNext must not consume")
	k, err := it.Next()
	require.NoError(t, err)
	assert.Contains(t, keys, k)
	seen[k] = true

	require.True(t, it.HasNext())
	k, err = it.Next()
	require.NoError(t, err)
	assert.Contains(t, keys, k)
	seen[k] = true

	assert.False(t, it.HasNext())
	assert.Len(t, seen, 2)
	assert.Equal(t, map[string]bool{"key1": true, "key2": true}, seen)

	_, err = it.Next()
	assert.True(t, errors.Is(err, ErrIteratorExhausted))
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrIteratorExhausted)
}

func TestIteratorEmptySet(t *testing.T) {
	it := NewInteger().Iterator()
	assert.False(t, it.HasNext())
	k, err := it.Next()
	assert.ErrorIs(t, err, ErrIteratorExhausted)
	assert.Equal(t, int64(0), k)
}

func TestIteratorIndependent(t *testing.T) {
	set := NewInteger()
	for i := int64(-10); i <= 10; i++ {
		set.Add(i)
	}

	first := set.Iterator()
	for first.HasNext() {
		_, err := first.Next()
		require.NoError(t, err)
	}
	assert.False(t, first.HasNext())

	second := set.Iterator()
	n := 0
	for second.HasNext() {
		_, err := second.Next()
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, set.Len(), n)
}

func TestAll(t *testing.T) {
	set := New[int64](sameSlot{}, "Colliding", WithCapacity(3), WithMaxLoadFactor(0))
	set.Add(3)
	set.Add(1)
	set.Add(2)

	var got []int64
	for k := range set.All() {
		got = append(got, k)
	}
	assert.Equal(t, []int64{3, 1, 2}, got)

	got = got[:0]
	for k := range set.All() {
		got = append(got, k)
		break
	}
	assert.Equal(t, []int64{3}, got)
}

func TestIteratorVisitsEveryKey(t *testing.T) {
	set := NewString(WithCapacity(2))
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		set.Add(k)
	}
	set.Remove("d")

	var got []string
	for k := range set.All() {
		got = append(got, k)
	}
	assert.ElementsMatch(t, set.Keys(), got)
}
