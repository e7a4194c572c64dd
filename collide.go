package kibana

// collisionPadding widens each label's measured half-width when testing
// for overlap, so kept labels keep a little visual breathing room.
const collisionPadding = 1.1

// filterCollidingLabels is the temporal label strategy for one panel: a
// single left-to-right sweep over the ticks in ascending domain order. A
// tick survives only when its padded bounds clear the right edge of the
// last kept label and stay inside the panel's axis width; surviving labels
// are re-formatted, rejected ticks have their mark and label removed
// entirely so they leave no visual trace.
//
// The sweep guarantees no two kept labels overlap and no kept label
// extends past the axis's right edge. It makes no promise about even
// coverage: earlier ticks are favored unconditionally.
func filterCollidingLabels(format Formatter, rp *renderedPanel) {
	lastRight := 0.0
	dropped := 0
	kept := rp.ticks[:0]

	for _, t := range rp.ticks {
		halfWidth := t.label.Bounds().W / 2 * collisionPadding
		if lastRight < t.x-halfWidth && t.x+halfWidth < rp.width {
			t.label.SetText(format(t.tick))
			lastRight = t.x + halfWidth
			kept = append(kept, t)
			continue
		}
		t.mark.Remove()
		t.label.Remove()
		dropped++
	}

	rp.ticks = kept
	if len(kept) == 0 && dropped > 0 {
		Logger().Warn("every axis label filtered out", "dropped", dropped)
		return
	}
	if dropped > 0 {
		Logger().Debug("axis labels filtered", "kept", len(kept), "dropped", dropped)
	}
}
