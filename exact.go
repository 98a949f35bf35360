// Package exact is the numeric core of the Cairn graph store. It evaluates
// arithmetic query documents and projects stored literals onto the wire
// with exact semantics: decimal literals are held as rationals, integers
// keep arbitrary precision, and a binary64 only ever enters the pipeline
// through an xsd:double or xsd:float literal.
package exact

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/cairngraph/exact/internal/ast"
	"github.com/cairngraph/exact/internal/engine"
	"github.com/cairngraph/exact/internal/lexical"
	"github.com/cairngraph/exact/internal/numerr"
	"github.com/cairngraph/exact/internal/parser"
	"github.com/cairngraph/exact/internal/value"
	"github.com/cairngraph/exact/internal/wire"
	"github.com/cairngraph/exact/internal/xsd"
)

// Bindings resolves a variable reference in a query document to the raw
// JSON bytes of its literal, either a bare number token or a typed literal
// object. The core parses the bytes; the lookup never constructs values
// itself.
type Bindings func(name string) ([]byte, bool)

// Engine evaluates arithmetic documents and projects stored literals. An
// Engine holds no mutable state; it may be shared across goroutines.
//
//	e := exact.NewEngine()
//	result, err := e.EvalString(`{"@type": "Plus", "left": 0.1, "right": 0.2}`)
//	// string(result.JSON()) == "0.3"
type Engine struct {
	engine *engine.Engine

	fs       afero.Fs
	digits   int
	bindings Bindings
}

// NewEngine creates a new, ready to use Engine, already applying all given
// options. By default the engine reads files from the OS filesystem and
// renders non-terminating decimal expansions at the contractual precision
// floor.
func NewEngine(opts ...Option) Engine {
	e := Engine{
		fs:     afero.NewOsFs(),
		digits: wire.DecimalDigits,
	}

	for _, opt := range opts {
		opt(&e)
	}

	e.engine = engine.New(
		engine.WithBindings(e.resolveBinding),
	)

	return e
}

// Eval evaluates one arithmetic document from the given reader and returns
// the emitted result.
func (e Engine) Eval(source io.Reader) (Result, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return Result{}, errorFromInternal(fmt.Errorf("parse document: %w", err))
	}

	number, xsdType, err := e.engine.Eval(tree)
	if err != nil {
		return Result{}, errorFromInternal(err)
	}
	return e.project(number, xsdType)
}

// EvalString evaluates one arithmetic document given as a string.
func (e Engine) EvalString(source string) (Result, error) {
	return e.Eval(bytes.NewReader([]byte(source)))
}

// EvalBytes evaluates one arithmetic document given as raw bytes.
func (e Engine) EvalBytes(source []byte) (Result, error) {
	return e.Eval(bytes.NewReader(source))
}

// EvalFile evaluates the arithmetic document in the given file, read from
// the engine's filesystem.
func (e Engine) EvalFile(path string) (Result, error) {
	f, err := e.fs.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return e.Eval(f)
}

// ProjectLiteral renders a stored literal onto the wire. This is the
// document read path: storage hands up the lexical bytes and the declared
// type of a field, and receives the JSON number token to splice into the
// response.
func (e Engine) ProjectLiteral(raw string, typeName string) ([]byte, error) {
	xsdType, ok := xsd.ParseType(typeName)
	if !ok {
		return nil, errorFromInternal(numerr.TypeMismatchError{Expected: "a recognized XSD type", Got: typeName})
	}

	number, err := lexical.ParseTyped(xsdType, raw)
	if err != nil {
		return nil, errorFromInternal(err)
	}

	form, err := wire.Project(number, xsdType, e.digits)
	if err != nil {
		return nil, errorFromInternal(err)
	}

	var buf bytes.Buffer
	if err := wire.Emit(&buf, form); err != nil {
		return nil, errorFromInternal(err)
	}
	return buf.Bytes(), nil
}

func (e Engine) project(number value.Number, xsdType xsd.Type) (Result, error) {
	form, err := wire.Project(number, xsdType, e.digits)
	if err != nil {
		return Result{}, errorFromInternal(err)
	}

	var buf bytes.Buffer
	if err := wire.Emit(&buf, form); err != nil {
		return Result{}, errorFromInternal(err)
	}

	return Result{
		number:  number,
		xsdType: xsdType,
		json:    buf.Bytes(),
	}, nil
}

// resolveBinding adapts the caller-supplied raw-bytes lookup to the
// evaluator. The raw bytes must decode to a literal leaf; operator nodes
// cannot hide behind a variable.
func (e Engine) resolveBinding(name string) (value.Number, error) {
	if e.bindings == nil {
		return nil, fmt.Errorf("unbound variable %q", name)
	}
	raw, ok := e.bindings(name)
	if !ok {
		return nil, fmt.Errorf("unbound variable %q", name)
	}

	tree, err := parser.ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("binding %q: %w", name, err)
	}
	literal, ok := tree.(ast.Literal)
	if !ok {
		return nil, fmt.Errorf("binding %q is not a literal", name)
	}
	return lexical.ParseTyped(literal.Type, literal.Token)
}
