package lexical

import (
	"strconv"

	"github.com/cairngraph/exact/internal/numerr"
	"github.com/cairngraph/exact/internal/value"
)

// parseDouble is the single admissible binary64 ingress of the pipeline.
// Only xsd:double and xsd:float literals route through here.
func parseDouble(lexical string) (value.Number, error) {
	if mapped, ok := floatLexical(lexical); ok {
		lexical = mapped
	} else if err := ScanNumber(lexical); err != nil {
		return nil, numerr.MalformedNumericError{Token: lexical}
	}
	f, err := strconv.ParseFloat(lexical, 64)
	if err != nil {
		return nil, numerr.MalformedNumericError{Token: lexical}
	}
	return value.NewDouble(f), nil
}
