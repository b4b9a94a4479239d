package types

// Convertible is the contract a value must satisfy to be persisted by
// the store. Both directions are pure: no I/O, no side effects. A false
// ok result means conversion is impossible for this value, or that the
// bytes do not represent a valid instance; it is an expected outcome,
// not an error. The encoding is entirely up to the implementer.
//
// FromBytes is invoked on the zero value of T, so implementations must
// not depend on receiver state.
type Convertible[T any] interface {
	// ToBytes produces the serialized representation of the value.
	ToBytes() ([]byte, bool)

	// FromBytes reconstructs a value from its serialized representation.
	FromBytes(data []byte) (T, bool)
}
