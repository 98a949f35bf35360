// Package value holds the tagged numeric domain of the core. A Number is
// one of Integer, Rational or Double. Integer and Rational are exact and
// immutable; the wrapped big values are never mutated after construction,
// so Numbers may be shared freely across goroutines.
package value

// Number is a numeric value in one of the three forms the core computes
// over. Use Type to discriminate; every use site is expected to name all
// three variants.
type Number interface {
	Type() Type
	String() string
}
