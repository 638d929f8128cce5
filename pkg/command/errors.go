package command

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand      = errors.New("unknown command")
	ErrInvalidCommandShape = errors.New("invalid command format")
)

func invalidShape(kind Kind, msg string, args ...interface{}) error {
	return fmt.Errorf("%w for %q: %s", ErrInvalidCommandShape, kind, fmt.Sprintf(msg, args...))
}
