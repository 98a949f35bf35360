// Package parser decodes arithmetic query documents into an ast.Node tree.
//
// Documents are JSON. An operator node is an object whose "@type" names the
// operator and whose operands sit in "left"/"right" ("argument" for the
// unary operators). Leaves are bare JSON number tokens, typed literal
// objects {"@type": "xsd:decimal", "@value": V}, or binding references
// {"@type": "ArithmeticValue", "variable": "X"}.
//
// Number tokens are decoded in number mode so the exact source bytes reach
// the lexical layer; nothing in this package touches a binary float.
package parser

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/cairngraph/exact/internal/ast"
	"github.com/cairngraph/exact/internal/lexical"
	"github.com/cairngraph/exact/internal/value"
	"github.com/cairngraph/exact/internal/xsd"
)

const (
	keyType     = "@type"
	keyValue    = "@value"
	keyLeft     = "left"
	keyRight    = "right"
	keyArgument = "argument"
	keyData     = "data"
	keyVariable = "variable"

	typeArithmeticValue = "ArithmeticValue"
)

// Parse decodes one arithmetic document from the given reader.
func Parse(input io.Reader) (ast.Node, error) {
	dec := json.NewDecoder(input)
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return node(doc)
}

// ParseBytes decodes one arithmetic document from raw bytes.
func ParseBytes(input []byte) (ast.Node, error) {
	return Parse(bytes.NewReader(input))
}

func node(doc interface{}) (ast.Node, error) {
	switch d := doc.(type) {
	case json.Number:
		return numberLeaf(d.String())
	case map[string]interface{}:
		return objectNode(d)
	default:
		return nil, ErrUnexpectedThing("a number or an object", fmt.Sprintf("%T", doc))
	}
}

func objectNode(obj map[string]interface{}) (ast.Node, error) {
	typeName, ok := obj[keyType].(string)
	if !ok {
		return nil, ErrUnexpectedThing(`an "@type" field`, "none")
	}

	if typeName == typeArithmeticValue {
		return arithmeticValue(obj)
	}
	if xsdType, ok := xsd.ParseType(typeName); ok {
		return typedLiteral(xsdType, obj)
	}

	op, ok := ast.ParseOp(typeName)
	if !ok {
		return nil, ErrUnexpectedThing("an arithmetic operator", typeName)
	}

	// Floor is always unary; Plus and Minus are unary when the document
	// carries an argument instead of an operand pair
	_, hasArgument := obj[keyArgument]
	_, hasLeft := obj[keyLeft]
	if op == ast.OpFloor || (hasArgument && !hasLeft && (op == ast.OpPlus || op == ast.OpMinus)) {
		argument, ok := obj[keyArgument]
		if !ok {
			return nil, ErrUnexpectedThing(fmt.Sprintf("%s argument", op), "none")
		}
		child, err := node(argument)
		if err != nil {
			return nil, fmt.Errorf("%s argument: %w", op, err)
		}
		return ast.Unary{Op: op, Argument: child}, nil
	}

	leftDoc, ok := obj[keyLeft]
	if !ok {
		return nil, ErrUnexpectedThing(fmt.Sprintf("%s left operand", op), "none")
	}
	rightDoc, ok := obj[keyRight]
	if !ok {
		return nil, ErrUnexpectedThing(fmt.Sprintf("%s right operand", op), "none")
	}

	left, err := node(leftDoc)
	if err != nil {
		return nil, fmt.Errorf("%s left operand: %w", op, err)
	}
	right, err := node(rightDoc)
	if err != nil {
		return nil, fmt.Errorf("%s right operand: %w", op, err)
	}
	return ast.Binary{Op: op, Left: left, Right: right}, nil
}

func arithmeticValue(obj map[string]interface{}) (ast.Node, error) {
	if name, ok := obj[keyVariable].(string); ok {
		return ast.Variable{Name: name}, nil
	}
	data, ok := obj[keyData]
	if !ok {
		return nil, ErrUnexpectedThing(`a "data" or "variable" field`, "none")
	}
	switch d := data.(type) {
	case json.Number:
		return numberLeaf(d.String())
	case map[string]interface{}:
		typeName, ok := d[keyType].(string)
		if !ok {
			return nil, ErrUnexpectedThing(`an "@type" field`, "none")
		}
		xsdType, ok := xsd.ParseType(typeName)
		if !ok {
			return nil, ErrUnexpectedThing("an XSD numeric type", typeName)
		}
		return typedLiteral(xsdType, d)
	default:
		return nil, ErrUnexpectedThing("a number or a typed literal", fmt.Sprintf("%T", data))
	}
}

func typedLiteral(xsdType xsd.Type, obj map[string]interface{}) (ast.Node, error) {
	payload, ok := obj[keyValue]
	if !ok {
		return nil, ErrUnexpectedThing(`an "@value" field`, "none")
	}

	var token string
	switch v := payload.(type) {
	case json.Number:
		token = v.String()
	case string:
		token = v
	default:
		return nil, ErrUnexpectedThing("a number or string payload", fmt.Sprintf("%T", payload))
	}

	// reject unparseable payloads here, so a malformed literal fails at
	// decode time and not halfway through an evaluation
	if _, err := lexical.ParseTyped(xsdType, token); err != nil {
		return nil, err
	}
	return ast.Literal{Type: xsdType, Token: token}, nil
}

// numberLeaf tags a bare number token with the type the evaluator would
// infer for it. The token itself is kept verbatim.
func numberLeaf(token string) (ast.Node, error) {
	n, err := lexical.ParseNumber(token)
	if err != nil {
		return nil, err
	}
	xsdType := xsd.TypeDecimal
	if n.Type() == value.TypeInteger {
		xsdType = xsd.TypeInteger
	}
	return ast.Literal{Type: xsdType, Token: token}, nil
}
