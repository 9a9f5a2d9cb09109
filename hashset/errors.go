package hashset

import "errors"

var (
	// ErrUnknownSetType is returned by the factory for a type tag it does not know.
	ErrUnknownSetType = errors.New("unknown set type")
	// ErrIteratorExhausted is returned by Iterator.Next when no keys remain.
	ErrIteratorExhausted = errors.New("iterator exhausted")
	// ErrKindMismatch is returned when a kind's key type differs from the requested one.
	ErrKindMismatch = errors.New("set kind does not match key type")
)
