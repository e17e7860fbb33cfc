package codec

import "errors"

// Sentinel errors returned by Compress and Decompress. Callers should use
// errors.Is against these rather than comparing strings.
var (
	// ErrNullInput is returned when a required image, buffer, or
	// parameter set is nil.
	ErrNullInput = errors.New("codec: null input")

	// ErrInvalidDimensions is returned when an image has a zero or
	// negative width or height.
	ErrInvalidDimensions = errors.New("codec: invalid dimensions")

	// ErrAllocationFailed names allocation failure in the error set.
	// Compress and Decompress never return it: a failed allocation in Go
	// is a runtime panic, not an error value.
	ErrAllocationFailed = errors.New("codec: allocation failed")

	// ErrInvalidTransformChoice is returned when a Parameters value names
	// a transform.Choice that Get does not recognize.
	ErrInvalidTransformChoice = errors.New("codec: invalid transform choice")
)
