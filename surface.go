package kibana

import "fmt"

// Rect is an axis-aligned bounding box in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Anchor controls horizontal text alignment relative to a text element's
// position.
type Anchor uint8

const (
	// AnchorStart aligns the start of the text with the position.
	AnchorStart Anchor = iota

	// AnchorMiddle centers the text on the position.
	AnchorMiddle

	// AnchorEnd aligns the end of the text with the position.
	AnchorEnd
)

// Element is a handle to one rendered primitive: a tick mark line or a
// text label. Geometry queries reflect the element's current state, so a
// label measured after SetText reports the new text's bounds. This is what
// makes the two-phase layout possible: phase one draws, phase two reads
// Bounds and applies corrective transforms.
//
// Elements are owned by the Surface that created them and are not safe for
// concurrent use.
type Element interface {
	// Bounds returns the element's current bounding box in the
	// coordinate space of its surface.
	Bounds() Rect

	// Text returns the current text of a text element ("" for lines).
	Text() string

	// SetText replaces the text of a text element.
	SetText(s string)

	// SetPosition moves the element's anchor point.
	SetPosition(x, y float64)

	// SetAnchor sets the horizontal text alignment.
	SetAnchor(a Anchor)

	// SetOffset nudges the text by (dx, dy) in em units relative to the
	// current font size.
	SetOffset(dxEm, dyEm float64)

	// SetRotation rotates the element about its position, in degrees.
	SetRotation(deg float64)

	// Remove detaches the element from its surface entirely. A removed
	// element leaves no visual trace.
	Remove()
}

// Surface is the rendering-surface capability consumed by the engine: a
// drawing target that can be measured, resized, and appended to. The engine
// never rasterizes anything itself; all drawing goes through this interface.
//
// Implementations: ggsurface.Surface (software rendering via gogpu/gg),
// plus in-memory fakes in the package tests.
type Surface interface {
	// Width returns the surface's current pixel width.
	Width() float64

	// Height returns the surface's current pixel height.
	Height() float64

	// Resize changes the surface dimensions. Content is preserved;
	// growing a surface never clips previously drawn elements.
	Resize(w, h float64)

	// Child creates a new child surface, appends it, and returns it.
	// The class names the child's role (for example "axis" or
	// "y-axis-spacer-block").
	Child(class string) Surface

	// Line appends a line primitive and returns its handle.
	Line(x1, y1, x2, y2 float64) Element

	// Text appends a text primitive at (x, y) and returns its handle.
	Text(s string, x, y float64) Element

	// Remove detaches a child surface and everything drawn into it.
	Remove(child Surface)
}

// DimensionValidator is the error-reporting capability used to validate
// panel geometry before a scale is built. The engine composes with it
// rather than implementing validation inline, so callers can substitute
// their own reporting.
type DimensionValidator interface {
	// ValidateDimensions returns an error when width or height cannot
	// host an axis.
	ValidateDimensions(width, height float64) error
}

// dimensionCheck is the default DimensionValidator: both dimensions must
// be strictly positive.
type dimensionCheck struct{}

func (dimensionCheck) ValidateDimensions(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%v, height=%v", ErrInvalidDimensions, width, height)
	}
	return nil
}
