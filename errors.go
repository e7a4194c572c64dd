package kibana

import "errors"

// Common errors returned by axis construction and rendering.
var (
	// ErrNilTarget is returned by New when no target surface is supplied.
	ErrNilTarget = errors.New("kibana: nil target surface")

	// ErrInvalidScale is returned when a built scale evaluates to a
	// non-number for an in-domain value. This indicates a zero width or a
	// malformed domain; the render pass aborts and no partial axis is
	// left attached.
	ErrInvalidScale = errors.New("kibana: invalid scale")

	// ErrInvalidDimensions is returned when a panel's computed width or
	// measured height is zero or negative.
	ErrInvalidDimensions = errors.New("kibana: degenerate panel size")
)
