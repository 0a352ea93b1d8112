// core/seqs/errors.go
package seqs

import "errors"

var (
	// ErrEmptyInput is returned when an operation requiring at least one
	// sequence receives a zero-sequence collection.
	ErrEmptyInput = errors.New("empty sequence collection")

	// ErrUnaligned is returned by position-wise operations when the
	// sequences do not share a single length.
	ErrUnaligned = errors.New("sequences are not aligned")
)
