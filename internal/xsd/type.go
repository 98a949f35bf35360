package xsd

// Type enumerates the XSD datatypes the numeric pipeline recognizes.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeInteger
	TypeDecimal
	TypeDouble
	TypeFloat
	TypeString
)

const prefix = "xsd:"

var names = map[Type]string{
	TypeInteger: prefix + "integer",
	TypeDecimal: prefix + "decimal",
	TypeDouble:  prefix + "double",
	TypeFloat:   prefix + "float",
	TypeString:  prefix + "string",
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "xsd:invalid"
}

// Exact reports whether values of this type are held in exact form.
func (t Type) Exact() bool {
	return t == TypeInteger || t == TypeDecimal
}

// ParseType resolves an "xsd:"-prefixed type name. The bare name without
// the prefix is accepted as well, since stored literals carry either form.
func ParseType(name string) (Type, bool) {
	for t, n := range names {
		if name == n || prefix+name == n {
			return t, true
		}
	}
	return TypeInvalid, false
}
