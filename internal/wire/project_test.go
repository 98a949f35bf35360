package wire

import (
	"math"
	"strings"

	"github.com/cairngraph/exact/internal/numerr"
	"github.com/cairngraph/exact/internal/value"
	"github.com/cairngraph/exact/internal/xsd"
)

func (suite *WireSuite) TestIntegerFidelity() {
	suite.Equal("100000000000000000000", suite.mustRender(bigInt("100000000000000000000"), xsd.TypeInteger))
	suite.Equal("-999999999999998000000000000001", suite.mustRender(bigInt("-999999999999998000000000000001"), xsd.TypeInteger))
	suite.Equal("0", suite.mustRender(bigInt("0"), xsd.TypeInteger))

	// no scientific notation regardless of magnitude
	googol := "1" + strings.Repeat("0", 100)
	suite.Equal(googol, suite.mustRender(bigInt(googol), xsd.TypeInteger))
}

func (suite *WireSuite) TestIntegerUnderAnyDeclaredType() {
	suite.Equal("5", suite.mustRender(bigInt("5"), xsd.TypeDecimal))
	suite.Equal("5", suite.mustRender(bigInt("5"), xsd.TypeDouble))
}

func (suite *WireSuite) TestTerminatingDecimals() {
	suite.Equal("0.3", suite.mustRender(rat(3, 10), xsd.TypeDecimal))
	suite.Equal("0.075", suite.mustRender(rat(3, 40), xsd.TypeDecimal))
	suite.Equal("15.625", suite.mustRender(rat(125, 8), xsd.TypeDecimal))
	suite.Equal("-2.5", suite.mustRender(rat(-5, 2), xsd.TypeDecimal))

	// integral rationals render without a decimal point
	suite.Equal("2", suite.mustRender(rat(10, 5), xsd.TypeDecimal))
}

func (suite *WireSuite) TestTerminatingBeyondTheFloor() {
	// a terminating expansion longer than the floor keeps all its digits
	suite.Equal(
		"0.0000000000000000000000001",
		suite.mustRender(bigRat("1", "10000000000000000000000000"), xsd.TypeDecimal),
	)
}

func (suite *WireSuite) TestPrecisionFloor() {
	suite.Equal("0.33333333333333333333", suite.mustRender(rat(1, 3), xsd.TypeDecimal))
	suite.Equal("0.14285714285714285714", suite.mustRender(rat(1, 7), xsd.TypeDecimal))
	suite.Equal("0.00000100000100000100", suite.mustRender(rat(1, 999999), xsd.TypeDecimal))
	suite.Equal("476190.47619047619047619047", suite.mustRender(rat(10000000, 21), xsd.TypeDecimal))
}

func (suite *WireSuite) TestTruncationNotRounding() {
	// 2/3 is 0.666...; rounding would end in 7
	suite.Equal("0.66666666666666666666", suite.mustRender(rat(2, 3), xsd.TypeDecimal))
}

func (suite *WireSuite) TestNegativeNonTerminating() {
	suite.Equal("-0.33333333333333333333", suite.mustRender(rat(-1, 3), xsd.TypeDecimal))
}

func (suite *WireSuite) TestMagnitudeBelowTheFloorIsCanonicalZero() {
	token, err := suite.render(bigRat("-1", "300000000000000000000"), xsd.TypeDecimal, DecimalDigits)
	suite.NoError(err)
	suite.Equal("0.00000000000000000000", token)
}

func (suite *WireSuite) TestConfigurableDigits() {
	token, err := suite.render(rat(1, 3), xsd.TypeDecimal, 30)
	suite.NoError(err)
	suite.Equal("0."+strings.Repeat("3", 30), token)

	// the floor is contractual, lower requests are raised to it
	token, err = suite.render(rat(1, 3), xsd.TypeDecimal, 5)
	suite.NoError(err)
	suite.Equal("0."+strings.Repeat("3", 20), token)
}

func (suite *WireSuite) TestRationalUnderInteger() {
	suite.Equal("2", suite.mustRender(rat(10, 5), xsd.TypeInteger))

	_, err := suite.render(rat(1, 2), xsd.TypeInteger, DecimalDigits)
	suite.IsType(numerr.TypeError{}, err)
}

func (suite *WireSuite) TestRationalUnderDouble() {
	_, err := suite.render(rat(1, 2), xsd.TypeDouble, DecimalDigits)
	suite.IsType(numerr.TypeMismatchError{}, err)
}

func (suite *WireSuite) TestDoubleShortestRoundTrip() {
	suite.Equal("0.5", suite.mustRender(value.NewDouble(0.5), xsd.TypeDouble))
	suite.Equal("0.1", suite.mustRender(value.NewDouble(0.1), xsd.TypeFloat))
}

func (suite *WireSuite) TestNonFiniteDoubleFaults() {
	_, err := suite.render(value.NewDouble(math.Inf(1)), xsd.TypeDouble, DecimalDigits)
	suite.IsType(numerr.NumericFaultError{}, err)

	_, err = suite.render(value.NewDouble(math.NaN()), xsd.TypeDouble, DecimalDigits)
	suite.IsType(numerr.NumericFaultError{}, err)
}

func (suite *WireSuite) TestDoubleUnderExactType() {
	_, err := suite.render(value.NewDouble(0.5), xsd.TypeDecimal, DecimalDigits)
	suite.IsType(numerr.TypeMismatchError{}, err)
}

func (suite *WireSuite) TestUnknownType() {
	_, err := suite.render(bigInt("1"), xsd.TypeInvalid, DecimalDigits)
	suite.IsType(numerr.TypeMismatchError{}, err)
}
