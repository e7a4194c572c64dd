package kibana

// fakeSurface is an in-memory Surface for tests. Text widths come from an
// explicit per-string table shared across the surface tree, falling back
// to a uniform per-rune width, so tests can place exact label widths.
type fakeSurface struct {
	class     string
	w, h      float64
	widths    map[string]float64
	charWidth float64
	children  []*fakeSurface
	elements  []*fakeElement
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{
		w:         w,
		h:         h,
		widths:    make(map[string]float64),
		charWidth: 6,
	}
}

func (s *fakeSurface) textWidth(text string) float64 {
	if w, ok := s.widths[text]; ok {
		return w
	}
	return float64(len([]rune(text))) * s.charWidth
}

func (s *fakeSurface) Width() float64  { return s.w }
func (s *fakeSurface) Height() float64 { return s.h }

func (s *fakeSurface) Resize(w, h float64) {
	s.w, s.h = w, h
}

func (s *fakeSurface) Child(class string) Surface {
	c := &fakeSurface{class: class, widths: s.widths, charWidth: s.charWidth}
	s.children = append(s.children, c)
	return c
}

func (s *fakeSurface) Line(x1, y1, x2, y2 float64) Element {
	e := &fakeElement{surface: s, line: true, x1: x1, y1: y1, x2: x2, y2: y2}
	s.elements = append(s.elements, e)
	return e
}

func (s *fakeSurface) Text(text string, x, y float64) Element {
	e := &fakeElement{surface: s, text: text, x: x, y: y}
	s.elements = append(s.elements, e)
	return e
}

func (s *fakeSurface) Remove(child Surface) {
	for i, c := range s.children {
		if Surface(c) == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// child returns the first non-removed child with the given class, or nil.
func (s *fakeSurface) child(class string) *fakeSurface {
	for _, c := range s.children {
		if c.class == class {
			return c
		}
	}
	return nil
}

// labels returns the surviving text elements in draw order.
func (s *fakeSurface) labels() []*fakeElement {
	var out []*fakeElement
	for _, e := range s.elements {
		if !e.line && !e.removed {
			out = append(out, e)
		}
	}
	return out
}

// marks returns the surviving tick-mark lines (vertical lines only, the
// domain line is horizontal).
func (s *fakeSurface) marks() []*fakeElement {
	var out []*fakeElement
	for _, e := range s.elements {
		if e.line && !e.removed && e.x1 == e.x2 {
			out = append(out, e)
		}
	}
	return out
}

type fakeElement struct {
	surface        *fakeSurface
	line           bool
	x1, y1, x2, y2 float64
	text           string
	x, y           float64
	anchor         Anchor
	dxEm, dyEm     float64
	rotation       float64
	removed        bool
}

func (e *fakeElement) Bounds() Rect {
	if e.line {
		x, w := e.x1, e.x2-e.x1
		if w < 0 {
			x, w = e.x2, -w
		}
		y, h := e.y1, e.y2-e.y1
		if h < 0 {
			y, h = e.y2, -h
		}
		return Rect{X: x, Y: y, W: w, H: h}
	}
	w := e.surface.textWidth(e.text)
	x := e.x
	switch e.anchor {
	case AnchorMiddle:
		x -= w / 2
	case AnchorEnd:
		x -= w
	}
	return Rect{X: x, Y: e.y, W: w, H: 12}
}

func (e *fakeElement) Text() string             { return e.text }
func (e *fakeElement) SetText(s string)         { e.text = s }
func (e *fakeElement) SetPosition(x, y float64) { e.x, e.y = x, y }
func (e *fakeElement) SetAnchor(a Anchor)       { e.anchor = a }
func (e *fakeElement) SetOffset(dx, dy float64) { e.dxEm, e.dyEm = dx, dy }
func (e *fakeElement) SetRotation(deg float64)  { e.rotation = deg }
func (e *fakeElement) Remove()                  { e.removed = true }
