package wire

import (
	"bytes"
	"io"

	"github.com/cairngraph/exact/internal/numerr"
)

// Emit writes the JSON number token for a form to the given writer. The
// token is assembled from the form's digit payload; exact forms never pass
// through a float formatter.
func Emit(w io.Writer, f Form) error {
	switch form := f.(type) {
	case Int:
		return emitInt(w, form)
	case Dec:
		return emitDec(w, form)
	case Dbl:
		return emitDouble(w, form)
	default:
		return numerr.NumericFaultError{Reason: "unknown wire form"}
	}
}

// EmitString renders a form into a fresh string.
func EmitString(f Form) (string, error) {
	var b bytes.Buffer
	if err := Emit(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

func emitInt(w io.Writer, form Int) error {
	buf := make([]byte, 0, len(form.Digits)+1)
	if form.Neg {
		buf = append(buf, '-')
	}
	buf = append(buf, form.Digits...)
	_, err := w.Write(buf)
	return err
}

func emitDec(w io.Writer, form Dec) error {
	buf := make([]byte, 0, len(form.Int)+len(form.Frac)+2)
	if form.Neg {
		buf = append(buf, '-')
	}
	buf = append(buf, form.Int...)
	if len(form.Frac) > 0 {
		buf = append(buf, '.')
		buf = append(buf, form.Frac...)
	}
	_, err := w.Write(buf)
	return err
}
