package wire

import (
	"math/big"

	"github.com/cairngraph/exact/internal/numerr"
	"github.com/cairngraph/exact/internal/value"
	"github.com/cairngraph/exact/internal/xsd"
)

// DecimalDigits is the minimum count of fractional digits a rendered
// rational carries when its decimal expansion does not terminate. Clients
// rely on this floor; it safely exceeds the 17 digits a binary64
// round-trip needs.
const DecimalDigits = 20

var (
	two  = big.NewInt(2)
	five = big.NewInt(5)
	ten  = big.NewInt(10)
)

// Project chooses the on-wire form for a value under its declared type.
// digits is the fractional precision for non-terminating expansions and is
// clamped up to DecimalDigits, which is the contractual floor.
func Project(n value.Number, t xsd.Type, digits int) (Form, error) {
	if digits < DecimalDigits {
		digits = DecimalDigits
	}

	switch v := n.(type) {
	case value.Integer:
		switch t {
		case xsd.TypeInteger, xsd.TypeDecimal, xsd.TypeDouble, xsd.TypeFloat:
			return integerForm(v.Int()), nil
		case xsd.TypeString, xsd.TypeInvalid:
			return nil, numerr.TypeMismatchError{Expected: "a numeric type", Got: t.String()}
		}
		return nil, numerr.TypeMismatchError{Expected: "a numeric type", Got: t.String()}
	case value.Rational:
		switch t {
		case xsd.TypeDecimal:
			return decimalForm(v, digits), nil
		case xsd.TypeInteger:
			if !v.IsInt() {
				return nil, numerr.TypeError{Op: "project", Expected: "integer", Got: "rational"}
			}
			return integerForm(v.Num()), nil
		case xsd.TypeDouble, xsd.TypeFloat, xsd.TypeString, xsd.TypeInvalid:
			return nil, numerr.TypeMismatchError{Expected: xsd.TypeDecimal.String(), Got: t.String()}
		}
		return nil, numerr.TypeMismatchError{Expected: xsd.TypeDecimal.String(), Got: t.String()}
	case value.Double:
		switch t {
		case xsd.TypeDouble, xsd.TypeFloat:
			if !v.IsFinite() {
				return nil, numerr.NumericFaultError{Reason: "non-finite double has no JSON form"}
			}
			return Dbl{F: v.Float()}, nil
		case xsd.TypeInteger, xsd.TypeDecimal, xsd.TypeString, xsd.TypeInvalid:
			return nil, numerr.TypeMismatchError{Expected: xsd.TypeDouble.String(), Got: t.String()}
		}
		return nil, numerr.TypeMismatchError{Expected: xsd.TypeDouble.String(), Got: t.String()}
	default:
		return nil, numerr.TypeMismatchError{Expected: "a number", Got: "nothing"}
	}
}

func integerForm(i *big.Int) Int {
	return Int{
		Neg:    i.Sign() < 0,
		Digits: new(big.Int).Abs(i).String(),
	}
}

// decimalForm renders a rational under xsd:decimal. Denominators dividing a
// power of ten terminate and render with their minimal digit count;
// everything else is long-divided to the precision floor and truncated
// toward zero.
func decimalForm(v value.Rational, digits int) Form {
	if k, ok := terminating(v.Den()); ok {
		if k == 0 {
			return integerForm(v.Num())
		}
		return scaledForm(v, k)
	}
	return scaledForm(v, digits)
}

// scaledForm renders |num|*10^k/den split around the decimal point at k
// fractional digits. The division truncates, so this is exact for
// terminating expansions and truncation toward zero otherwise.
func scaledForm(v value.Rational, k int) Dec {
	absNum := new(big.Int).Abs(v.Num())
	scale := new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
	scaled := new(big.Int).Mul(absNum, scale)
	scaled.Quo(scaled, v.Den())

	allDigits := scaled.String()
	for len(allDigits) < k+1 {
		allDigits = "0" + allDigits
	}
	split := len(allDigits) - k

	neg := v.Sign() < 0
	if scaled.Sign() == 0 {
		// a magnitude below the precision floor truncates to zero,
		// which is canonical and unsigned
		neg = false
	}
	return Dec{
		Neg:  neg,
		Int:  allDigits[:split],
		Frac: allDigits[split:],
	}
}

// terminating reports whether den divides a power of ten, and if so the
// minimal k with den | 10^k. The rational is normalized, so den's factors
// decide alone.
func terminating(den *big.Int) (int, bool) {
	twos, rest := countFactor(den, two)
	fives, rest := countFactor(rest, five)
	if rest.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	k := twos
	if fives > k {
		k = fives
	}
	return k, true
}

func countFactor(n, factor *big.Int) (int, *big.Int) {
	count := 0
	rest := new(big.Int).Set(n)
	remainder := new(big.Int)
	for {
		quotient, r := new(big.Int).QuoRem(rest, factor, remainder)
		if r.Sign() != 0 {
			return count, rest
		}
		rest = quotient
		count++
	}
}
