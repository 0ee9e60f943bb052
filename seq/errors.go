package seq

import "errors"

// Sentinel errors returned by seq operations.
var (
	// ErrInvalidRange is returned when a range-taking operation is called
	// with start > finish.
	ErrInvalidRange = errors.New("seq: invalid range: start is after finish")

	// ErrZeroStep is returned by Range when step is zero.
	ErrZeroStep = errors.New("seq: range step must not be zero")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("seq: keys and values must have the same length")
)
