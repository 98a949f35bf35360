package value

import "math/big"

// Integer is an element of Z with arbitrary precision.
type Integer struct {
	i *big.Int
}

func (Integer) Type() Type { return TypeInteger }

// Int returns the underlying big integer. Callers must not mutate it.
func (n Integer) Int() *big.Int { return n.i }

func (n Integer) Sign() int { return n.i.Sign() }

func (n Integer) String() string { return n.i.String() }

func NewInteger(i *big.Int) Integer {
	return Integer{i: i}
}

func NewIntegerFromInt64(i int64) Integer {
	return Integer{i: big.NewInt(i)}
}
