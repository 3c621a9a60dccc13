package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when the points or k passed to a
	// selection are out of contract. No work is done and no result returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownPivot is returned by ParsePivot for an unrecognised name
	ErrUnknownPivot = errors.New("unknown pivot strategy")
)

func validate(n, k int) error {
	if n == 0 {
		return fmt.Errorf("%w: points must not be empty", ErrInvalidArgument)
	}
	if k < 1 || k > n {
		return fmt.Errorf("%w: k must be in [1, %d], got %d", ErrInvalidArgument, n, k)
	}
	return nil
}
