package value

import "math/big"

// Rational is an element of Q. The wrapped big.Rat keeps the invariant the
// rest of the pipeline depends on: lowest terms, denominator > 0.
type Rational struct {
	r *big.Rat
}

func (Rational) Type() Type { return TypeRational }

// Rat returns the underlying rational. Callers must not mutate it.
func (n Rational) Rat() *big.Rat { return n.r }

// Num returns the normalized numerator.
func (n Rational) Num() *big.Int { return n.r.Num() }

// Den returns the normalized denominator, always positive.
func (n Rational) Den() *big.Int { return n.r.Denom() }

func (n Rational) Sign() int { return n.r.Sign() }

// IsInt reports whether the rational is integral after reduction.
func (n Rational) IsInt() bool { return n.r.IsInt() }

func (n Rational) String() string { return n.r.RatString() }

func NewRational(r *big.Rat) Rational {
	return Rational{r: r}
}

// NewRationalFromInts builds num/den, reducing to canonical form.
func NewRationalFromInts(num, den *big.Int) Rational {
	return Rational{r: new(big.Rat).SetFrac(num, den)}
}
