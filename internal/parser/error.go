package parser

import "fmt"

type MismatchError struct {
	Expected interface{}
	Got      interface{}
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("expected %v, but got %v", e.Expected, e.Got)
}

func ErrUnexpectedThing(expected, got interface{}) error {
	return MismatchError{
		Expected: expected,
		Got:      got,
	}
}
