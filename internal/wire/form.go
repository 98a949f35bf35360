// Package wire renders tagged numeric values as JSON number tokens. A Form
// is a digit-faithful decomposition of a value; emission assembles the
// final bytes from those digits and never routes an exact value through a
// binary-float formatter.
package wire

type (
	// Form is the intermediate shape between projection and emission.
	// This is either an Int, a Dec or a Dbl.
	Form interface {
		_form()
	}

	// Int is a signed decimal digit sequence of arbitrary length.
	Int struct {
		Neg    bool
		Digits string
	}

	// Dec is a signed pair of digit sequences around the decimal point.
	Dec struct {
		Neg  bool
		Int  string
		Frac string
	}

	// Dbl is a binary64 value rendered in shortest round-trip form.
	Dbl struct {
		F float64
	}
)

func (Int) _form() {}
func (Dec) _form() {}
func (Dbl) _form() {}
