package wire

import (
	"io"
	"math"
	"strconv"

	"github.com/cairngraph/exact/internal/numerr"
)

// emitDouble renders a binary64 in shortest round-trip form. This is the
// single place where a float formatter touches the wire.
func emitDouble(w io.Writer, form Dbl) error {
	if math.IsNaN(form.F) || math.IsInf(form.F, 0) {
		return numerr.NumericFaultError{Reason: "non-finite double has no JSON form"}
	}
	buf := strconv.AppendFloat(make([]byte, 0, 24), form.F, 'g', -1, 64)
	_, err := w.Write(buf)
	return err
}
