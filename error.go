package exact

import (
	"errors"

	"github.com/cairngraph/exact/internal/numerr"
	"github.com/cairngraph/exact/internal/parser"
)

// Kind classifies a numeric failure. The five kinds are the complete fault
// domain of the core; everything else surfaces as a plain error.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindMalformedNumeric
	KindTypeMismatch
	KindTypeError
	KindDivisionByZero
	KindNumericFault
)

func (k Kind) String() string {
	switch k {
	case KindMalformedNumeric:
		return "malformed numeric"
	case KindTypeMismatch:
		return "type mismatch"
	case KindTypeError:
		return "type error"
	case KindDivisionByZero:
		return "division by zero"
	case KindNumericFault:
		return "numeric fault"
	case KindUnknown:
		return "unknown"
	}
	return "unknown"
}

// Error is a classified numeric failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// errorFromInternal classifies an internal error without rewording it. The
// message stays exactly what the failing component produced.
func errorFromInternal(err error) error {
	if err == nil {
		return nil
	}

	var (
		malformed numerr.MalformedNumericError
		mismatch  numerr.TypeMismatchError
		typeErr   numerr.TypeError
		divZero   numerr.DivisionByZeroError
		fault     numerr.NumericFaultError
		badNode   parser.MismatchError
	)
	switch {
	case errors.As(err, &malformed), errors.As(err, &badNode):
		return Error{Kind: KindMalformedNumeric, Message: err.Error()}
	case errors.As(err, &mismatch):
		return Error{Kind: KindTypeMismatch, Message: err.Error()}
	case errors.As(err, &typeErr):
		return Error{Kind: KindTypeError, Message: err.Error()}
	case errors.As(err, &divZero):
		return Error{Kind: KindDivisionByZero, Message: err.Error()}
	case errors.As(err, &fault):
		return Error{Kind: KindNumericFault, Message: err.Error()}
	}
	return err
}
