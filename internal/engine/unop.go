package engine

import (
	"math"
	"math/big"

	"github.com/cairngraph/exact/internal/numerr"
	. "github.com/cairngraph/exact/internal/value"
)

// floor rounds toward negative infinity and always produces an Integer.
// Exact zero results are canonical; there is no signed zero in the exact
// domain.
func (e *Engine) floor(argument Number) (Number, error) {
	switch v := argument.(type) {
	case Integer:
		return v, nil
	case Rational:
		// denominator is positive, so Euclidean division floors
		floored := new(big.Int).Div(v.Num(), v.Den())
		return NewInteger(floored), nil
	case Double:
		f := v.Float()
		if math.IsNaN(f) {
			return nil, numerr.NumericFaultError{Reason: "floor of NaN"}
		}
		if math.IsInf(f, 0) {
			return nil, numerr.NumericFaultError{Reason: "floor of infinity"}
		}
		floored, _ := new(big.Float).SetFloat64(math.Floor(f)).Int(nil)
		return NewInteger(floored), nil
	default:
		return nil, numerr.TypeError{Op: "Floor", Expected: "a number", Got: argument.Type().String()}
	}
}

func (e *Engine) negate(argument Number) (Number, error) {
	switch v := argument.(type) {
	case Integer:
		return NewInteger(new(big.Int).Neg(v.Int())), nil
	case Rational:
		return NewRational(new(big.Rat).Neg(v.Rat())), nil
	case Double:
		return NewDouble(-v.Float()), nil
	default:
		return nil, numerr.TypeError{Op: "Minus", Expected: "a number", Got: argument.Type().String()}
	}
}
