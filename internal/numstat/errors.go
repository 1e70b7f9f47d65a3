package numstat

import "errors"

var (
	// ErrNoValidNumbers is returned when the input stream yields zero
	// parseable numbers, either because it is empty or because the very
	// first token is malformed.
	ErrNoValidNumbers = errors.New("no valid numbers found in input")

	// ErrMultipleInputFiles is returned when more than one input file is
	// given on the command line.
	ErrMultipleInputFiles = errors.New("multiple input files specified")
)
