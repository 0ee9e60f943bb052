package collections

import (
	"errors"

	"github.com/hasbyte1/go-underscore-utils/seq"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("collections: chunk size must be greater than 0")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)

// ErrMismatchedLengths is returned by [Combine] when the key and value
// slices have different lengths. It is the seq sentinel re-exported, so
// errors.Is works against either package.
var ErrMismatchedLengths = seq.ErrMismatchedLengths
