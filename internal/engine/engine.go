// Package engine reduces arithmetic trees over the tagged numeric domain.
// Evaluation is strict and purely functional; an Engine holds no mutable
// state between calls and may be used from many goroutines at once.
package engine

import (
	"fmt"

	"github.com/cairngraph/exact/internal/ast"
	. "github.com/cairngraph/exact/internal/value"
	"github.com/cairngraph/exact/internal/xsd"
)

// Bindings resolves a variable reference to its value. The closure is
// supplied by the surrounding query engine; the core never sees how
// bindings are produced.
type Bindings func(name string) (Number, error)

// Engine evaluates arithmetic expression trees. The zero value evaluates
// trees without variable leaves; attach a Bindings lookup with WithBindings
// to resolve them.
type Engine struct {
	bindings Bindings
}

// New creates a new, ready to use Engine, already applying all given
// options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval reduces the given tree to a value and the XSD type it is tagged
// with. Subexpressions evaluate left operand first, right operand second,
// and the first error encountered is the error returned.
func (e *Engine) Eval(node ast.Node) (Number, xsd.Type, error) {
	result, err := e.evaluate(node)
	if err != nil {
		return nil, xsd.TypeInvalid, err
	}
	return result, tagOf(result), nil
}

// tagOf derives the declared type the pipeline attaches to an evaluation
// result. Integer results are xsd:integer, Rational results are xsd:decimal
// even when integral, inexact results are xsd:double.
func tagOf(n Number) xsd.Type {
	switch n.Type() {
	case TypeInteger:
		return xsd.TypeInteger
	case TypeRational:
		return xsd.TypeDecimal
	case TypeDouble:
		return xsd.TypeDouble
	case TypeInvalid:
		return xsd.TypeInvalid
	}
	return xsd.TypeInvalid
}

func (e *Engine) resolve(name string) (Number, error) {
	if e.bindings == nil {
		return nil, fmt.Errorf("unbound variable %q, no bindings attached", name)
	}
	return e.bindings(name)
}
