package parser

import (
	"errors"

	"github.com/cairngraph/exact/internal/ast"
	"github.com/cairngraph/exact/internal/numerr"
	"github.com/cairngraph/exact/internal/xsd"
)

func (suite *ParserSuite) TestBareNumberLeaves() {
	suite.assertNode(`42`, ast.Literal{Type: xsd.TypeInteger, Token: "42"})
	suite.assertNode(`0.1`, ast.Literal{Type: xsd.TypeDecimal, Token: "0.1"})
	suite.assertNode(`-1.5e3`, ast.Literal{Type: xsd.TypeDecimal, Token: "-1.5e3"})
}

func (suite *ParserSuite) TestBinaryOperator() {
	suite.assertNode(
		`{"@type": "Plus", "left": 0.1, "right": 0.2}`,
		ast.Binary{
			Op:    ast.OpPlus,
			Left:  ast.Literal{Type: xsd.TypeDecimal, Token: "0.1"},
			Right: ast.Literal{Type: xsd.TypeDecimal, Token: "0.2"},
		},
	)
}

func (suite *ParserSuite) TestNestedOperators() {
	suite.assertNode(
		`{
			"@type": "Times",
			"left":  {"@type": "Divide", "left": 1, "right": 3},
			"right": 1000000
		}`,
		ast.Binary{
			Op: ast.OpTimes,
			Left: ast.Binary{
				Op:    ast.OpDivide,
				Left:  ast.Literal{Type: xsd.TypeInteger, Token: "1"},
				Right: ast.Literal{Type: xsd.TypeInteger, Token: "3"},
			},
			Right: ast.Literal{Type: xsd.TypeInteger, Token: "1000000"},
		},
	)
}

func (suite *ParserSuite) TestFloor() {
	suite.assertNode(
		`{"@type": "Floor", "argument": 3.14}`,
		ast.Unary{
			Op:       ast.OpFloor,
			Argument: ast.Literal{Type: xsd.TypeDecimal, Token: "3.14"},
		},
	)
}

func (suite *ParserSuite) TestArithmeticValueData() {
	suite.assertNode(
		`{"@type": "ArithmeticValue", "data": {"@type": "xsd:decimal", "@value": "0.075"}}`,
		ast.Literal{Type: xsd.TypeDecimal, Token: "0.075"},
	)
	suite.assertNode(
		`{"@type": "ArithmeticValue", "data": {"@type": "xsd:integer", "@value": 7}}`,
		ast.Literal{Type: xsd.TypeInteger, Token: "7"},
	)
	suite.assertNode(
		`{"@type": "ArithmeticValue", "data": 2.5}`,
		ast.Literal{Type: xsd.TypeDecimal, Token: "2.5"},
	)
}

func (suite *ParserSuite) TestArithmeticValueVariable() {
	suite.assertNode(
		`{"@type": "ArithmeticValue", "variable": "X"}`,
		ast.Variable{Name: "X"},
	)
}

func (suite *ParserSuite) TestTypedLiteralLeaf() {
	suite.assertNode(
		`{"@type": "xsd:double", "@value": 0.5}`,
		ast.Literal{Type: xsd.TypeDouble, Token: "0.5"},
	)
}

func (suite *ParserSuite) TestNumberTokensKeepSourceBytes() {
	// the decoder must not normalize number tokens on the way through
	suite.assertNode(`0.30`, ast.Literal{Type: xsd.TypeDecimal, Token: "0.30"})
	suite.assertNode(`99999999999999999999`, ast.Literal{Type: xsd.TypeInteger, Token: "99999999999999999999"})
}

func (suite *ParserSuite) TestUnknownOperator() {
	_, err := ParseBytes([]byte(`{"@type": "Modulo", "left": 1, "right": 2}`))
	var mismatch MismatchError
	suite.True(errors.As(err, &mismatch))
}

func (suite *ParserSuite) TestMissingOperand() {
	_, err := ParseBytes([]byte(`{"@type": "Plus", "left": 1}`))
	var mismatch MismatchError
	suite.True(errors.As(err, &mismatch))
}

func (suite *ParserSuite) TestMalformedLeaf() {
	_, err := ParseBytes([]byte(`{"@type": "xsd:decimal", "@value": "not a number"}`))
	var malformed numerr.MalformedNumericError
	suite.True(errors.As(err, &malformed))
}

func (suite *ParserSuite) TestUnsupportedLeaf() {
	_, err := ParseBytes([]byte(`"just a string"`))
	var mismatch MismatchError
	suite.True(errors.As(err, &mismatch))
}
