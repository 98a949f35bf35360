// Package ast holds the arithmetic expression tree the evaluator reduces.
// Trees are strictly acyclic; nodes are immutable after decoding.
package ast

import "github.com/cairngraph/exact/internal/xsd"

type (
	// Node is an arithmetic expression. This is either a Binary, a Unary,
	// a Literal or a Variable.
	Node interface {
		_node()
	}

	// Binary applies a binary operator to two subexpressions.
	Binary struct {
		Op    Op
		Left  Node
		Right Node
	}

	// Unary applies a unary operator to one subexpression.
	Unary struct {
		Op       Op
		Argument Node
	}

	// Literal is a numeric leaf. Token holds the exact source byte
	// sequence of the literal so that parsing stays lossless.
	Literal struct {
		Type  xsd.Type
		Token string
	}

	// Variable is a binding reference resolved by the caller's lookup.
	Variable struct {
		Name string
	}
)

func (Binary) _node()   {}
func (Unary) _node()    {}
func (Literal) _node()  {}
func (Variable) _node() {}
