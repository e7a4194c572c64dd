package kibana

// Axis drawing constants: tick marks extend tickLength px below the domain
// line, labels sit tickLabelPad px below the marks.
const (
	tickLength   = 6.0
	tickLabelPad = 3.0
)

// Attributes is the mutable per-axis state bag. Both fields are recomputed
// from scratch at the start of every render pass; they never persist stale
// values from a prior render. With multiple panels, Rotated reports whether
// any panel rotated and LabelHeight is the tallest reserve across rotated
// panels.
type Attributes struct {
	// Rotated reports whether the last render rotated the tick labels.
	Rotated bool

	// LabelHeight is the pixel height reserved for rotated, truncated
	// labels. Zero when no panel rotated.
	LabelHeight float64
}

// Panel is one chart instance within a small-multiples grid. Container is
// the panel's own surface; its measured height sizes the axis. Titles are
// optional and fitted during layout synchronization.
type Panel struct {
	Container Surface
	XTitle    *Title
	YTitle    *Title
}

// Axis lays out one axis placement across a set of sibling panels. An Axis
// lives for the lifetime of the chart view; Render may be invoked
// repeatedly (for example on resize) and replaces the previous render's
// output rather than accumulating it.
//
// Axis is not safe for concurrent use: the attribute bag is owned
// exclusively by the currently running render pass.
type Axis struct {
	target     Surface
	categories []string
	ordering   *Ordering
	formatter  Formatter
	validator  DimensionValidator
	panels     []Panel

	chartTitles     []Title
	spacerWrapper   Surface
	spacerContainer Surface
	spacerBlock     Surface

	attrs    Attributes
	rendered []renderedPanel
}

// New creates an Axis drawing into target. Options configure the axis
// kind, panels, formatter, and companion elements; see the With functions.
func New(target Surface, opts ...Option) (*Axis, error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	var o axisOptions
	for _, opt := range opts {
		opt(&o)
	}

	a := &Axis{
		target:          target,
		categories:      o.categories,
		ordering:        o.ordering,
		formatter:       o.formatter,
		validator:       o.validator,
		panels:          o.panels,
		chartTitles:     o.chartTitles,
		spacerWrapper:   o.spacerWrapper,
		spacerContainer: o.spacerContainer,
		attrs:           o.attrs,
	}
	if len(a.panels) == 0 {
		a.panels = []Panel{{Container: target}}
	}
	if a.formatter == nil {
		a.formatter = defaultFormatter(a.ordering)
	}
	if a.validator == nil {
		a.validator = dimensionCheck{}
	}
	return a, nil
}

// defaultFormatter prints category strings as-is and timestamps in a
// minute-resolution layout.
func defaultFormatter(ord *Ordering) Formatter {
	if ord != nil && ord.Temporal {
		return func(t Tick) string {
			return t.Time.Format("2006-01-02 15:04")
		}
	}
	return func(t Tick) string { return t.Category }
}

// Attributes returns a copy of the axis attribute bag as of the last
// render.
func (a *Axis) Attributes() Attributes { return a.attrs }

// Render draws the axis into every panel and synchronizes companion
// geometry. It runs synchronously to completion: phase one builds a scale
// per panel and draws provisional tick marks and labels, phase two measures
// the rendered labels and resolves overlap (rotation for categorical axes,
// collision filtering for temporal ones), then fits titles and spacer
// blocks to the final geometry.
//
// Render is idempotent: it first detaches everything the previous render
// attached, so re-rendering with identical inputs produces identical
// geometry. On a fatal error (degenerate panel size, invalid scale)
// everything attached by the failing pass is detached before the error is
// returned.
func (a *Axis) Render() error {
	a.detach()
	a.attrs = Attributes{}

	parentWidth := a.target.Width()
	panelWidth := parentWidth / float64(len(a.panels))

	pass := &renderPass{axis: a}
	for _, panel := range a.panels {
		if err := pass.renderPanel(panel, panelWidth); err != nil {
			pass.detach()
			return err
		}
	}
	pass.resolveOverlap()
	pass.synchronize()

	a.rendered = pass.panels
	return nil
}

// detach removes the surfaces attached by the previous render pass.
func (a *Axis) detach() {
	for _, rp := range a.rendered {
		rp.panel.Container.Remove(rp.surface)
	}
	a.rendered = nil
}

// renderPass holds the pass-scoped state threaded through the successive
// layout stages. It is discarded when Render returns; only the resulting
// attribute bag and the list of attached surfaces survive on the Axis.
type renderPass struct {
	axis   *Axis
	panels []renderedPanel
}

// renderedPanel is the provisional geometry produced for one panel by
// phase one.
type renderedPanel struct {
	panel   Panel
	surface Surface
	scale   scale
	width   float64
	height  float64
	ticks   []renderedTick
}

// renderedTick pairs a domain value with the mark and label elements drawn
// for it, plus its pixel position on the scale.
type renderedTick struct {
	tick  Tick
	x     float64
	mark  Element
	label Element
}

// renderPanel validates the panel geometry, builds and probes the scale,
// and draws the provisional axis: domain line, tick marks, and formatted
// labels anchored middle below each mark.
func (p *renderPass) renderPanel(panel Panel, width float64) error {
	height := panel.Container.Height()
	if err := p.axis.validator.ValidateDimensions(width, height); err != nil {
		return err
	}

	s := buildScale(p.axis.ordering, p.axis.categories)
	s.applyRange(width)
	if err := s.probe(); err != nil {
		return err
	}

	surface := panel.Container.Child("axis")
	surface.Resize(width, height)
	surface.Line(0, 0, width, 0)

	rp := renderedPanel{
		panel:   panel,
		surface: surface,
		scale:   s,
		width:   width,
		height:  height,
	}

	ticks := s.ticks()
	if len(ticks) == 0 {
		Logger().Warn("axis has no ticks to draw", "width", width)
	}
	for _, tick := range ticks {
		x := s.position(tick)
		if bs, ok := s.(*bandScale); ok {
			x += bs.bandWidth() / 2
		}
		mark := surface.Line(x, 0, x, tickLength)
		label := surface.Text(p.axis.formatter(tick), x, tickLength+tickLabelPad)
		label.SetAnchor(AnchorMiddle)
		rp.ticks = append(rp.ticks, renderedTick{tick: tick, x: x, mark: mark, label: label})
	}

	Logger().Debug("axis panel rendered",
		"width", width, "height", height, "ticks", len(rp.ticks))
	p.panels = append(p.panels, rp)
	return nil
}

// resolveOverlap runs the phase-two label strategy across the full panel
// set: collision filtering for temporal axes, rotation for categorical
// ones. Rotation results aggregate into the axis attribute bag.
func (p *renderPass) resolveOverlap() {
	if p.axis.ordering != nil && p.axis.ordering.Temporal {
		for i := range p.panels {
			filterCollidingLabels(p.axis.formatter, &p.panels[i])
		}
		return
	}
	for i := range p.panels {
		rotated, labelHeight := rotateLongLabels(&p.panels[i])
		if !rotated {
			continue
		}
		p.axis.attrs.Rotated = true
		if labelHeight > p.axis.attrs.LabelHeight {
			p.axis.attrs.LabelHeight = labelHeight
		}
	}
}

// detach removes every surface attached so far by this pass. Called on
// fatal errors so no partial axis stays behind.
func (p *renderPass) detach() {
	for _, rp := range p.panels {
		rp.panel.Container.Remove(rp.surface)
	}
	p.panels = nil
}
