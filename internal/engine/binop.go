package engine

import (
	"math"
	"math/big"

	"github.com/cairngraph/exact/internal/numerr"
	. "github.com/cairngraph/exact/internal/value"
)

// exceeding this exponent magnitude would materialize more digits than any
// caller can emit; refuse instead of allocating without bound
const maxExponent = 1 << 20

func (e *Engine) add(left, right Number) (Number, error) {
	if isDouble(left, right) {
		return NewDouble(toFloat(left) + toFloat(right)), nil
	}
	if left.Type() == TypeInteger && right.Type() == TypeInteger {
		sum := new(big.Int).Add(left.(Integer).Int(), right.(Integer).Int())
		return NewInteger(sum), nil
	}
	return NewRational(new(big.Rat).Add(toRat(left), toRat(right))), nil
}

func (e *Engine) subtract(left, right Number) (Number, error) {
	if isDouble(left, right) {
		return NewDouble(toFloat(left) - toFloat(right)), nil
	}
	if left.Type() == TypeInteger && right.Type() == TypeInteger {
		difference := new(big.Int).Sub(left.(Integer).Int(), right.(Integer).Int())
		return NewInteger(difference), nil
	}
	return NewRational(new(big.Rat).Sub(toRat(left), toRat(right))), nil
}

func (e *Engine) multiply(left, right Number) (Number, error) {
	if isDouble(left, right) {
		return NewDouble(toFloat(left) * toFloat(right)), nil
	}
	if left.Type() == TypeInteger && right.Type() == TypeInteger {
		product := new(big.Int).Mul(left.(Integer).Int(), right.(Integer).Int())
		return NewInteger(product), nil
	}
	return NewRational(new(big.Rat).Mul(toRat(left), toRat(right))), nil
}

// divide is field division. Over exact operands the result is always a
// Rational, even when it reduces to an integral value; whether that renders
// as 2 or 2.0 is the projector's concern.
func (e *Engine) divide(left, right Number) (Number, error) {
	if isDouble(left, right) {
		// IEEE semantics, so x/0 is Inf or NaN here and only faults
		// once a JSON number is required
		return NewDouble(toFloat(left) / toFloat(right)), nil
	}
	divisor := toRat(right)
	if divisor.Sign() == 0 {
		return nil, numerr.DivisionByZeroError{Op: "Divide"}
	}
	return NewRational(new(big.Rat).Quo(toRat(left), divisor)), nil
}

// intDivide is integer division truncated toward zero. Both operands must
// already be integral; nothing is coerced.
func (e *Engine) intDivide(left, right Number) (Number, error) {
	if left.Type() != TypeInteger {
		return nil, numerr.TypeError{Op: "Div", Expected: "integer", Got: left.Type().String()}
	}
	if right.Type() != TypeInteger {
		return nil, numerr.TypeError{Op: "Div", Expected: "integer", Got: right.Type().String()}
	}
	divisor := right.(Integer).Int()
	if divisor.Sign() == 0 {
		return nil, numerr.DivisionByZeroError{Op: "Div"}
	}
	quotient := new(big.Int).Quo(left.(Integer).Int(), divisor)
	return NewInteger(quotient), nil
}

// power raises an exact base to an integer exponent by repeated squaring,
// or falls back to binary64 when either operand is inexact.
func (e *Engine) power(left, right Number) (Number, error) {
	if isDouble(left, right) {
		return NewDouble(math.Pow(toFloat(left), toFloat(right))), nil
	}
	if right.Type() != TypeInteger {
		return nil, numerr.TypeError{Op: "Exp", Expected: "integer exponent", Got: right.Type().String()}
	}

	exponent := right.(Integer).Int()
	if !exponent.IsInt64() || exponent.Int64() > maxExponent || exponent.Int64() < -maxExponent {
		return nil, numerr.NumericFaultError{Reason: "exponent magnitude out of range"}
	}
	exp := exponent.Int64()

	negative := exp < 0
	if negative {
		exp = -exp
	}
	bigExp := big.NewInt(exp)

	switch base := left.(type) {
	case Integer:
		if negative && base.Sign() == 0 {
			return nil, numerr.DivisionByZeroError{Op: "Exp"}
		}
		raised := new(big.Int).Exp(base.Int(), bigExp, nil)
		if negative {
			return NewRationalFromInts(big.NewInt(1), raised), nil
		}
		return NewInteger(raised), nil
	case Rational:
		if negative && base.Sign() == 0 {
			return nil, numerr.DivisionByZeroError{Op: "Exp"}
		}
		num := new(big.Int).Exp(base.Num(), bigExp, nil)
		den := new(big.Int).Exp(base.Den(), bigExp, nil)
		if negative {
			num, den = den, num
		}
		return NewRationalFromInts(num, den), nil
	default:
		return nil, numerr.TypeError{Op: "Exp", Expected: "an exact base", Got: left.Type().String()}
	}
}

func isDouble(operands ...Number) bool {
	for _, operand := range operands {
		if operand.Type() == TypeDouble {
			return true
		}
	}
	return false
}

func toRat(n Number) *big.Rat {
	switch v := n.(type) {
	case Integer:
		return new(big.Rat).SetInt(v.Int())
	case Rational:
		return v.Rat()
	default:
		// callers check for Double before converting
		panic("toRat: not an exact value")
	}
}

func toFloat(n Number) float64 {
	switch v := n.(type) {
	case Integer:
		f, _ := new(big.Float).SetInt(v.Int()).Float64()
		return f
	case Rational:
		f, _ := v.Rat().Float64()
		return f
	case Double:
		return v.Float()
	default:
		panic("toFloat: invalid value")
	}
}
