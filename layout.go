package kibana

// Title pairs a measured container with the canvas and label drawn inside
// it. Container supplies the size the canvas must fit; Canvas and Label
// receive the corrective geometry. Vertical marks a y-axis title, which is
// fitted on height and rotated -90 degrees.
type Title struct {
	Container Surface
	Canvas    Surface
	Label     Element
	Vertical  bool
}

// synchronize runs once, globally, after all panels have been rotated or
// filtered: it fits per-panel titles and chart-level titles to their
// measured containers and sets the y-axis spacer height from the axis
// wrapper's now-final geometry.
func (p *renderPass) synchronize() {
	for _, rp := range p.panels {
		fitTitle(rp.panel.XTitle)
		fitTitle(rp.panel.YTitle)
	}
	for i := range p.axis.chartTitles {
		fitTitle(&p.axis.chartTitles[i])
	}
	p.axis.syncSpacer()
}

// fitTitle resizes a title canvas to its container's measured size and
// re-centers the label. Horizontal titles fit on width; vertical titles
// fit on height and rotate the label -90 degrees.
func fitTitle(t *Title) {
	if t == nil || t.Canvas == nil {
		return
	}
	if t.Vertical {
		h := t.Container.Height()
		t.Canvas.Resize(t.Canvas.Width(), h)
		if t.Label != nil {
			t.Label.SetPosition(t.Label.Bounds().X, h/2)
			t.Label.SetAnchor(AnchorMiddle)
			t.Label.SetRotation(-90)
		}
		return
	}
	w := t.Container.Width()
	t.Canvas.Resize(w, t.Canvas.Height())
	if t.Label != nil {
		t.Label.SetPosition(w/2, t.Label.Bounds().Y)
		t.Label.SetAnchor(AnchorMiddle)
	}
}

// syncSpacer keeps vertically stacked charts aligned when one panel's axis
// grew taller after rotation. The spacer block is created alongside the
// y-axis spacer once and reused on subsequent renders; only its height is
// updated, to match the axis wrapper's current rendered height.
func (a *Axis) syncSpacer() {
	if a.spacerWrapper == nil || a.spacerContainer == nil {
		return
	}
	if a.spacerBlock == nil {
		a.spacerBlock = a.spacerContainer.Child("y-axis-spacer-block")
	}
	a.spacerBlock.Resize(a.spacerBlock.Width(), a.spacerWrapper.Height())
}
