package engine

import (
	"fmt"

	"github.com/cairngraph/exact/internal/ast"
	"github.com/cairngraph/exact/internal/lexical"
	. "github.com/cairngraph/exact/internal/value"
)

func (e *Engine) evaluate(node ast.Node) (Number, error) {
	switch n := node.(type) {
	case ast.Literal:
		return lexical.ParseTyped(n.Type, n.Token)
	case ast.Variable:
		return e.resolve(n.Name)
	case ast.Unary:
		return e.evaluateUnary(n)
	case ast.Binary:
		return e.evaluateBinary(n)
	default:
		return nil, fmt.Errorf("%T unsupported", node)
	}
}

func (e *Engine) evaluateUnary(node ast.Unary) (Number, error) {
	argument, err := e.evaluate(node.Argument)
	if err != nil {
		return nil, fmt.Errorf("%s argument: %w", node.Op, err)
	}

	switch node.Op {
	case ast.OpFloor:
		return e.floor(argument)
	case ast.OpMinus:
		return e.negate(argument)
	case ast.OpPlus:
		return argument, nil
	case ast.OpTimes, ast.OpDivide, ast.OpDiv, ast.OpExp, ast.OpInvalid:
		return nil, fmt.Errorf("%s is not a unary operator", node.Op)
	}
	return nil, fmt.Errorf("%s is not a unary operator", node.Op)
}

func (e *Engine) evaluateBinary(node ast.Binary) (Number, error) {
	left, err := e.evaluate(node.Left)
	if err != nil {
		return nil, fmt.Errorf("%s left operand: %w", node.Op, err)
	}
	right, err := e.evaluate(node.Right)
	if err != nil {
		return nil, fmt.Errorf("%s right operand: %w", node.Op, err)
	}

	switch node.Op {
	case ast.OpPlus:
		return e.add(left, right)
	case ast.OpMinus:
		return e.subtract(left, right)
	case ast.OpTimes:
		return e.multiply(left, right)
	case ast.OpDivide:
		return e.divide(left, right)
	case ast.OpDiv:
		return e.intDivide(left, right)
	case ast.OpExp:
		return e.power(left, right)
	case ast.OpFloor, ast.OpInvalid:
		return nil, fmt.Errorf("%s is not a binary operator", node.Op)
	}
	return nil, fmt.Errorf("%s is not a binary operator", node.Op)
}
