package ggsurface

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/sdd330/kibana"
)

// Common errors returned by Surface operations.
var (
	// ErrNoArea is returned by Render when the surface has a zero or
	// negative dimension.
	ErrNoArea = errors.New("ggsurface: surface has no area")
)

// defaultFontSize is the face size in points used when New loads the
// bundled Go Regular font.
const defaultFontSize = 11.0

// Surface is a kibana.Surface backed by gg. It records primitives and
// child groups; Render rasterizes the whole tree into a gg.Context.
type Surface struct {
	class    string
	x, y     float64
	w, h     float64
	face     text.Face
	children []*Surface
	elements []*element
}

var _ kibana.Surface = (*Surface)(nil)

// New creates a root surface of the given size using the bundled Go
// Regular face for text measurement and drawing.
func New(width, height float64) (*Surface, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return NewWithFace(width, height, source.Face(defaultFontSize)), nil
}

// NewWithFace creates a root surface that measures and draws text with a
// caller-supplied face.
func NewWithFace(width, height float64, face text.Face) *Surface {
	return &Surface{w: width, h: height, face: face}
}

// Width implements kibana.Surface.
func (s *Surface) Width() float64 { return s.w }

// Height implements kibana.Surface.
func (s *Surface) Height() float64 { return s.h }

// Resize implements kibana.Surface. Recorded primitives are kept; they are
// clipped or exposed by the new size only at rasterization time.
func (s *Surface) Resize(w, h float64) {
	s.w, s.h = w, h
}

// SetOrigin positions this surface within its parent. The axis engine
// never calls it; callers use it to lay out sibling panels side by side.
func (s *Surface) SetOrigin(x, y float64) {
	s.x, s.y = x, y
}

// Child implements kibana.Surface.
func (s *Surface) Child(class string) kibana.Surface {
	c := &Surface{class: class, face: s.face}
	s.children = append(s.children, c)
	return c
}

// Class returns the role name this surface was created with ("" for
// roots).
func (s *Surface) Class() string { return s.class }

// Line implements kibana.Surface.
func (s *Surface) Line(x1, y1, x2, y2 float64) kibana.Element {
	e := &element{owner: s, line: true, x1: x1, y1: y1, x2: x2, y2: y2}
	s.elements = append(s.elements, e)
	return e
}

// Text implements kibana.Surface.
func (s *Surface) Text(str string, x, y float64) kibana.Element {
	e := &element{owner: s, text: str, x: x, y: y}
	s.elements = append(s.elements, e)
	return e
}

// Remove implements kibana.Surface.
func (s *Surface) Remove(child kibana.Surface) {
	for i, c := range s.children {
		if kibana.Surface(c) == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// Render rasterizes the surface tree into a new drawing context sized to
// this surface. The caller owns the context (for example to SavePNG it).
func (s *Surface) Render() (*gg.Context, error) {
	if s.w <= 0 || s.h <= 0 {
		return nil, ErrNoArea
	}
	dc := gg.NewContext(int(math.Ceil(s.w)), int(math.Ceil(s.h)))
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, s.w, s.h)
	dc.Fill()
	dc.SetFont(s.face)
	s.draw(dc, 0, 0)
	kibana.Logger().Debug("surface rasterized",
		"width", s.w, "height", s.h, "children", len(s.children))
	return dc, nil
}

// draw renders this surface's primitives and children at the given parent
// offset.
func (s *Surface) draw(dc *gg.Context, ox, oy float64) {
	ox += s.x
	oy += s.y
	for _, e := range s.elements {
		e.draw(dc, ox, oy)
	}
	for _, c := range s.children {
		c.draw(dc, ox, oy)
	}
}

// element is one recorded primitive.
type element struct {
	owner          *Surface
	line           bool
	x1, y1, x2, y2 float64
	text           string
	x, y           float64
	anchor         kibana.Anchor
	dxEm, dyEm     float64
	rotation       float64
	removed        bool
}

var _ kibana.Element = (*element)(nil)

// Bounds implements kibana.Element. Text bounds are measured through the
// surface's face and reported unrotated; the engine reads label widths
// before applying rotation transforms.
func (e *element) Bounds() kibana.Rect {
	if e.line {
		x, w := e.x1, e.x2-e.x1
		if w < 0 {
			x, w = e.x2, -w
		}
		y, h := e.y1, e.y2-e.y1
		if h < 0 {
			y, h = e.y2, -h
		}
		return kibana.Rect{X: x, Y: y, W: w, H: h}
	}

	w := e.owner.face.Advance(e.text)
	m := e.owner.face.Metrics()
	x := e.x
	switch e.anchor {
	case kibana.AnchorMiddle:
		x -= w / 2
	case kibana.AnchorEnd:
		x -= w
	}
	return kibana.Rect{X: x, Y: e.y, W: w, H: m.Ascent + m.Descent}
}

// Text implements kibana.Element.
func (e *element) Text() string { return e.text }

// SetText implements kibana.Element.
func (e *element) SetText(s string) { e.text = s }

// SetPosition implements kibana.Element.
func (e *element) SetPosition(x, y float64) {
	if e.line {
		e.x2, e.y2 = e.x2+x-e.x1, e.y2+y-e.y1
		e.x1, e.y1 = x, y
		return
	}
	e.x, e.y = x, y
}

// SetAnchor implements kibana.Element.
func (e *element) SetAnchor(a kibana.Anchor) { e.anchor = a }

// SetOffset implements kibana.Element.
func (e *element) SetOffset(dxEm, dyEm float64) { e.dxEm, e.dyEm = dxEm, dyEm }

// SetRotation implements kibana.Element.
func (e *element) SetRotation(deg float64) { e.rotation = deg }

// Remove implements kibana.Element.
func (e *element) Remove() { e.removed = true }

// draw rasterizes the element at the given offset.
func (e *element) draw(dc *gg.Context, ox, oy float64) {
	if e.removed {
		return
	}
	dc.SetRGB(0, 0, 0)

	if e.line {
		dc.SetLineWidth(1)
		dc.DrawLine(ox+e.x1, oy+e.y1, ox+e.x2, oy+e.y2)
		dc.Stroke()
		return
	}

	size := e.owner.face.Size()
	px := ox + e.x + e.dxEm*size
	py := oy + e.y + e.dyEm*size

	var ax float64
	switch e.anchor {
	case kibana.AnchorMiddle:
		ax = 0.5
	case kibana.AnchorEnd:
		ax = 1
	}

	if e.rotation != 0 {
		dc.Push()
		dc.RotateAbout(e.rotation*math.Pi/180, ox+e.x, oy+e.y)
		dc.DrawStringAnchored(e.text, px, py, ax, 0)
		dc.Pop()
		return
	}
	dc.DrawStringAnchored(e.text, px, py, ax, 0)
}
