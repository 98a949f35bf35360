package exact

import (
	"bytes"

	"github.com/cairngraph/exact/internal/value"
	"github.com/cairngraph/exact/internal/xsd"
)

// Result is an evaluated or projected numeric value together with the XSD
// type it is tagged with. The JSON bytes are the authoritative on-wire
// rendering; they are a bare JSON number token.
type Result struct {
	number  value.Number
	xsdType xsd.Type
	json    []byte
}

// JSON returns the emitted JSON number token. The returned slice must not
// be modified.
func (r Result) JSON() []byte {
	return r.json
}

// XSDType returns the "xsd:"-prefixed name of the result's tagged type.
func (r Result) XSDType() string {
	return r.xsdType.String()
}

func (r Result) String() string {
	return string(r.json)
}

// Exact reports whether the result is held in exact form.
func (r Result) Exact() bool {
	return r.xsdType.Exact()
}

// TypedRecord renders the result as the typed literal object used in query
// bindings, {"@type": T, "@value": N}. The numeric payload is spliced in
// as a bare number token, never as a string.
func (r Result) TypedRecord() []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"@type":"`)
	buf.WriteString(r.xsdType.String())
	buf.WriteString(`","@value":`)
	buf.Write(r.json)
	buf.WriteByte('}')
	return buf.Bytes()
}

// Equals reports whether two results hold the same value in the same form.
// An exact and an inexact result never compare equal.
func (r Result) Equals(other Result) bool {
	if r.number == nil || other.number == nil {
		return r.number == other.number
	}
	return value.Equal(r.number, other.number)
}
