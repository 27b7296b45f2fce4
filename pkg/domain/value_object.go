package domain

// ValueObject is an immutable domain value compared by its attributes.
//
// Equals reports structural equality. Implementations type-assert the
// comparand: a ValueObject of a different concrete type is simply unequal,
// never an error. Passing a nil interface is likewise unequal.
type ValueObject interface {
	Equals(other ValueObject) bool
}
