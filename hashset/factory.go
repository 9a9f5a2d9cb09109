package hashset

import (
	"fmt"
	"strings"
)

// Kind enumerates the key domains the factory can build sets for.
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
)

var kindNames = map[Kind]string{
	KindString:  "String",
	KindInteger: "Integer",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindString, KindInteger}
}

// String returns the type tag for k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a type tag such as "String" to its Kind. Matching is
// case insensitive.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSetType, name)
}

// NewString returns an empty set of text keys tagged "String".
func NewString(opts ...Option) *HashSet[string] {
	return New[string](StringAdapter{}, KindString.String(), opts...)
}

// NewInteger returns an empty set of signed integer keys tagged "Integer".
func NewInteger(opts ...Option) *HashSet[int64] {
	return New[int64](IntegerAdapter{}, KindInteger.String(), opts...)
}

// NewOf builds the set for kind. K must be the key type of that kind.
func NewOf[K any](kind Kind, opts ...Option) (*HashSet[K], error) {
	var adapter any
	switch kind {
	case KindString:
		adapter = StringAdapter{}
	case KindInteger:
		adapter = IntegerAdapter{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetType, kind)
	}

	a, ok := adapter.(KeyAdapter[K])
	if !ok {
		var zero K
		return nil, fmt.Errorf("%w: %s sets do not hold %T keys", ErrKindMismatch, kind, zero)
	}
	return New[K](a, kind.String(), opts...), nil
}
