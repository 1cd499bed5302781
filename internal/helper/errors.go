package helper

import (
	"errors"
	"fmt"
)

// ErrUnknownHelper is returned when invoking a name nothing is registered under
var ErrUnknownHelper = errors.New("unknown helper")

// RegistrationError reports a descriptor that cannot be registered
type RegistrationError struct {
	Helper string
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("helper %q: invalid registration: %s", e.Helper, e.Reason)
}

// ArgumentError reports a helper argument of the wrong shape or a wrong argument count
type ArgumentError struct {
	Helper   string
	Expected string
	Got      string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("helper %q: expected %s, got %s", e.Helper, e.Expected, e.Got)
}

// IndexError reports a list index outside of the list bounds
type IndexError struct {
	Helper string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("helper %q: index %d out of range for list of length %d", e.Helper, e.Index, e.Length)
}
