package kibana

// Rotation constants.
const (
	// rotateLabelPad is the vertical padding added to the widest label
	// when reserving height for rotated labels.
	rotateLabelPad = 15.0

	// maxRotatedLength caps the reserved label height regardless of the
	// true label width.
	maxRotatedLength = 180.0

	// rotatedOffsetXEm and rotatedOffsetYEm nudge rotated labels so they
	// hang below their tick mark instead of crossing the axis line.
	rotatedOffsetXEm = -0.8
	rotatedOffsetYEm = -0.6
)

// rotateLongLabels is the categorical label strategy for one panel: when
// the widest rendered label exceeds the scale's band width, every label is
// truncated to the reserved height, anchored end, offset, and rotated -90
// degrees, and the axis surface grows to the reserved height so rotated
// text is not clipped. Labels that fit are left exactly as formatted.
//
// The decision is made from the measured label bounds of the current
// render only; nothing carries over from a previous pass.
func rotateLongLabels(rp *renderedPanel) (rotated bool, labelHeight float64) {
	bs, ok := rp.scale.(*bandScale)
	if !ok || len(rp.ticks) == 0 {
		return false, 0
	}

	var maxWidth float64
	for _, t := range rp.ticks {
		if w := t.label.Bounds().W; w > maxWidth {
			maxWidth = w
		}
	}

	if maxWidth <= bs.bandWidth() {
		return false, 0
	}

	labelHeight = maxWidth + rotateLabelPad
	if maxWidth > maxRotatedLength {
		labelHeight = maxRotatedLength
	}

	for _, t := range rp.ticks {
		w := t.label.Bounds().W
		t.label.SetText(TruncateLabel(t.label.Text(), w, labelHeight))
		t.label.SetAnchor(AnchorEnd)
		t.label.SetOffset(rotatedOffsetXEm, rotatedOffsetYEm)
		t.label.SetRotation(-90)
	}
	rp.surface.Resize(rp.width, labelHeight)

	Logger().Debug("axis labels rotated",
		"maxLabelWidth", maxWidth,
		"bandWidth", bs.bandWidth(),
		"labelHeight", labelHeight)
	return true, labelHeight
}
