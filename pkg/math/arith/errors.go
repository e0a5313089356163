package arith

import "errors"

var (
	// ErrInvalidArgument is returned when an input violates the precondition of an operation,
	// e.g. an even modulus where an odd one is required.
	ErrInvalidArgument = errors.New("arith: invalid argument")
	// ErrNotInvertible is returned when no multiplicative inverse exists.
	ErrNotInvertible = errors.New("arith: element is not invertible")
)
