package movable

import (
	"fmt"
)

var (
	ErrLengthMismatch   = fmt.Errorf("length mismatch")
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
	ErrAlreadyTaken     = fmt.Errorf("element already taken")
	ErrPartiallyTaken   = fmt.Errorf("elements partially taken")
	ErrConsumed         = fmt.Errorf("movable already consumed")
)

// LengthMismatchError reports a sequence whose runtime length differs from
// the length of the target array type.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("expected length %d, got %d", e.Expected, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}
