// Package errs defines the sentinel errors shared across the ved packages.
//
// Callers should match these with errors.Is; the codec and document packages
// wrap them with additional context via fmt.Errorf and %w.
package errs

import "errors"

var (
	// ErrMissingDimensions indicates a document without a dimensions line.
	ErrMissingDimensions = errors.New("ved: missing dimensions line")

	// ErrInvalidDimensions indicates a dimensions line that does not parse as
	// two non-negative integers.
	ErrInvalidDimensions = errors.New("ved: invalid dimensions line")

	// ErrMissingDictionary indicates a document without a dictionary line.
	ErrMissingDictionary = errors.New("ved: missing dictionary line")

	// ErrInvalidCompression indicates an unsupported compression type.
	ErrInvalidCompression = errors.New("ved: invalid compression type")

	// ErrInvalidWorkerCount indicates a worker count below 1.
	ErrInvalidWorkerCount = errors.New("ved: invalid worker count")

	// ErrUnknownContainer indicates a compressed container header with an
	// unrecognized compression byte.
	ErrUnknownContainer = errors.New("ved: unknown container compression")
)
