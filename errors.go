package shadegrid

import "errors"

// Errors returned by the pipeline.
var (
	// ErrInvalidConfig is returned when a configuration invariant is broken:
	// bad grid dimensions, a malformed intensity table, unusable noise
	// settings, an even or degenerate kernel, or a border narrower than the
	// kernel radius.
	ErrInvalidConfig = errors.New("shadegrid: invalid configuration")

	// ErrCanvasSize is returned when a canvas does not match the grid
	// dimensions of the configuration.
	ErrCanvasSize = errors.New("shadegrid: canvas size does not match configuration")

	// ErrEncoding is returned when an output image cannot be written.
	// The in-memory Result stays valid and may be encoded again.
	ErrEncoding = errors.New("shadegrid: encoding failed")
)
