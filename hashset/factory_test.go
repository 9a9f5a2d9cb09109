package hashset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeTag(t *testing.T) {
	assert.Equal(t, "String", NewString().Type())
	assert.Equal(t, "Integer", NewInteger().Type())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "String", KindString.String())
	assert.Equal(t, "Integer", KindInteger.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{name: "String", want: KindString},
		{name: "Integer", want: KindInteger},
		{name: "integer", want: KindInteger},
		{name: "Float", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.name)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownSetType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewOf(t *testing.T) {
	s, err := NewOf[string](KindString)
	require.NoError(t, err)
	assert.Equal(t, "String", s.Type())
	assert.True(t, s.Empty())

	i, err := NewOf[int64](KindInteger, WithCapacity(8))
	require.NoError(t, err)
	assert.Equal(t, "Integer", i.Type())
	assert.Equal(t, 8, i.Capacity())
	i.Add(-13)
	assert.True(t, i.Contains(-13))
}

func TestNewOfErrors(t *testing.T) {
	_, err := NewOf[string](Kind(42))
	assert.ErrorIs(t, err, ErrUnknownSetType)

	_, err = NewOf[int64](KindString)
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = NewOf[int](KindInteger)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestFactoryFreshInstances(t *testing.T) {
	a := NewString()
	b := NewString()
	a.Add("key1")
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
	assert.Len(t, b.Buckets(), DefaultCapacity)
}
