package expression

import (
	"errors"
	"fmt"
)

var ErrMalformedExpression = errors.New("malformed expression")

// MalformedError describes the location of a syntax error
// in a graph expression.
type MalformedError struct {
	Input    string
	Position int
	Found    string
	Expected string
	Message  string
}

var _ error = (*MalformedError)(nil)

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %q %d: %s", ErrMalformedExpression, e.Input, e.Position, e.Message)
}

func (e *MalformedError) Is(err error) bool {
	return err == ErrMalformedExpression
}
