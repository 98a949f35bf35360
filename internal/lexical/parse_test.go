package lexical

import (
	"math/big"

	"github.com/cairngraph/exact/internal/numerr"
	"github.com/cairngraph/exact/internal/value"
	"github.com/cairngraph/exact/internal/xsd"
)

func (suite *LexicalSuite) mustRational(tok string) value.Rational {
	n, err := ParseNumber(tok)
	suite.NoError(err)
	suite.IsType(value.Rational{}, n)
	return n.(value.Rational)
}

func (suite *LexicalSuite) TestParseNumberInteger() {
	n, err := ParseNumber("42")
	suite.NoError(err)
	suite.IsType(value.Integer{}, n)
	suite.Equal("42", n.String())

	n, err = ParseNumber("-99999999999999999999")
	suite.NoError(err)
	suite.IsType(value.Integer{}, n)
	suite.Equal("-99999999999999999999", n.String())
}

func (suite *LexicalSuite) TestParseNumberDecimal() {
	r := suite.mustRational("0.1")
	suite.Equal("1/10", r.Rat().String())

	r = suite.mustRational("0.075")
	suite.Equal("3/40", r.Rat().String())

	r = suite.mustRational("-2.50")
	suite.Equal("-5/2", r.Rat().String())

	// decimal form is a rendering concern, 1.0 stays rational
	r = suite.mustRational("1.0")
	suite.True(r.IsInt())
}

func (suite *LexicalSuite) TestParseNumberScientific() {
	r := suite.mustRational("1.5e3")
	suite.Equal("1500/1", r.Rat().String())

	r = suite.mustRational("25e-1")
	suite.Equal("5/2", r.Rat().String())

	r = suite.mustRational("-1E2")
	suite.Equal("-100/1", r.Rat().String())
}

func (suite *LexicalSuite) TestParseNumberMalformed() {
	for _, tok := range []string{"", "-", ".", "1.", ".5", "1e", "1e+", "0x10", "1.2.3", "two", "1 "} {
		_, err := ParseNumber(tok)
		suite.Error(err, "token %q", tok)
		suite.IsType(numerr.MalformedNumericError{}, err, "token %q", tok)
	}
}

func (suite *LexicalSuite) TestParseTypedInteger() {
	n, err := ParseTyped(xsd.TypeInteger, "99999999999999999999")
	suite.NoError(err)
	suite.IsType(value.Integer{}, n)
	suite.Equal("99999999999999999999", n.String())
}

func (suite *LexicalSuite) TestParseTypedIntegerRejectsFraction() {
	_, err := ParseTyped(xsd.TypeInteger, "3.5")
	suite.IsType(numerr.TypeMismatchError{}, err)

	_, err = ParseTyped(xsd.TypeInteger, "1e3")
	suite.IsType(numerr.TypeMismatchError{}, err)
}

func (suite *LexicalSuite) TestParseTypedDecimal() {
	n, err := ParseTyped(xsd.TypeDecimal, "0.3")
	suite.NoError(err)
	suite.IsType(value.Rational{}, n)
	suite.Equal(big.NewRat(3, 10).String(), n.(value.Rational).Rat().String())
}

func (suite *LexicalSuite) TestParseTypedDouble() {
	n, err := ParseTyped(xsd.TypeDouble, "0.1")
	suite.NoError(err)
	suite.IsType(value.Double(0), n)
	suite.Equal(0.1, n.(value.Double).Float())

	n, err = ParseTyped(xsd.TypeFloat, "-INF")
	suite.NoError(err)
	suite.False(n.(value.Double).IsFinite())

	n, err = ParseTyped(xsd.TypeDouble, "NaN")
	suite.NoError(err)
	suite.False(n.(value.Double).IsFinite())
}

func (suite *LexicalSuite) TestParseTypedDoubleRejectsHex() {
	_, err := ParseTyped(xsd.TypeDouble, "0x1p3")
	suite.IsType(numerr.MalformedNumericError{}, err)
}

func (suite *LexicalSuite) TestParseTypedString() {
	_, err := ParseTyped(xsd.TypeString, "12")
	suite.IsType(numerr.TypeMismatchError{}, err)
}
