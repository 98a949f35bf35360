// Package lexical turns numeric lexical forms into tagged values. Exact
// forms never pass through a binary float; the only float ingress is the
// xsd:double / xsd:float path in parse_double.go.
package lexical

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cairngraph/exact/internal/numerr"
	"github.com/cairngraph/exact/internal/value"
	"github.com/cairngraph/exact/internal/xsd"
)

// largest |exponent| we materialize as a power of ten. Beyond this a token
// like 1e1000000000 would allocate gigabytes of digits.
const maxExponent = 1 << 20

var ten = big.NewInt(10)

func pow10(k int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
}

// ParseNumber parses a numeric token exactly. A plain integer token yields
// an Integer; any token carrying a fraction or an exponent yields a
// Rational, reduced but never coerced back to Integer. Decimal form is a
// rendering concern, so 1.0 stays the rational 1/1.
func ParseNumber(tok string) (value.Number, error) {
	p, err := scan(tok)
	if err != nil {
		return nil, err
	}

	if !p.hasFrac && !p.hasExp {
		i, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			return nil, numerr.MalformedNumericError{Token: tok}
		}
		return value.NewInteger(i), nil
	}

	mantissa, ok := new(big.Int).SetString(p.int_+p.frac, 10)
	if !ok {
		return nil, numerr.MalformedNumericError{Token: tok}
	}
	if p.neg {
		mantissa.Neg(mantissa)
	}

	shift := -len(p.frac)
	if p.hasExp {
		exp, err := strconv.Atoi(p.exp)
		if err != nil || exp > maxExponent {
			return nil, numerr.MalformedNumericError{Token: tok}
		}
		if p.expNeg {
			exp = -exp
		}
		shift += exp
	}

	r := new(big.Rat)
	switch {
	case shift >= 0:
		r.SetInt(new(big.Int).Mul(mantissa, pow10(shift)))
	default:
		r.SetFrac(mantissa, pow10(-shift))
	}
	return value.NewRational(r), nil
}

// ParseTyped parses a lexical form under a declared XSD type. The lexical
// form is the exact source byte sequence of the literal, whether it arrived
// as a JSON number token or a string payload.
func ParseTyped(t xsd.Type, lexical string) (value.Number, error) {
	switch t {
	case xsd.TypeInteger:
		p, err := scan(lexical)
		if err != nil {
			return nil, err
		}
		if p.hasFrac || p.hasExp {
			return nil, numerr.TypeMismatchError{Expected: t.String(), Got: lexical}
		}
		i, ok := new(big.Int).SetString(lexical, 10)
		if !ok {
			return nil, numerr.MalformedNumericError{Token: lexical}
		}
		return value.NewInteger(i), nil
	case xsd.TypeDecimal:
		return ParseNumber(lexical)
	case xsd.TypeDouble, xsd.TypeFloat:
		return parseDouble(lexical)
	case xsd.TypeString, xsd.TypeInvalid:
		return nil, numerr.TypeMismatchError{Expected: "a numeric type", Got: t.String()}
	}
	return nil, numerr.TypeMismatchError{Expected: "a numeric type", Got: t.String()}
}

// special XSD float lexicals that are not JSON numbers
var floatLexicals = map[string]string{
	"INF":  "+Inf",
	"+INF": "+Inf",
	"-INF": "-Inf",
	"NaN":  "NaN",
}

func floatLexical(lexical string) (string, bool) {
	mapped, ok := floatLexicals[strings.TrimSpace(lexical)]
	return mapped, ok
}
