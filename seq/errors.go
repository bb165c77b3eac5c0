package seq

import "errors"

var (
	// ErrEmptySequence is raised by First on the empty sequence and returned by
	// Reduce, Min and Max when there is nothing to reduce.
	ErrEmptySequence = errors.New("seq: empty sequence")
	// ErrInvalidArgument is returned synchronously by Take, Drop and Nth when
	// the count is negative.
	ErrInvalidArgument = errors.New("seq: invalid argument")
)
