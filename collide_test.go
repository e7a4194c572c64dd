package kibana

import "testing"

// makeTickPanel builds a rendered panel with one middle-anchored label of
// the given width at each position, mimicking the phase-one output for a
// temporal axis.
func makeTickPanel(width float64, positions []float64, labelWidth float64) *renderedPanel {
	s := newFakeSurface(width, 50)
	s.widths["L"] = labelWidth

	rp := &renderedPanel{surface: s, width: width, height: 50}
	for _, x := range positions {
		mark := s.Line(x, 0, x, tickLength)
		label := s.Text("L", x, tickLength+tickLabelPad)
		label.SetAnchor(AnchorMiddle)
		rp.ticks = append(rp.ticks, renderedTick{x: x, mark: mark, label: label})
	}
	return rp
}

func keepAll(Tick) string { return "L" }

func TestCollisionFilterKeepsClearedLabels(t *testing.T) {
	// Half-width is 30*1.1 = 33; every label clears its neighbor and the
	// edges.
	rp := makeTickPanel(500, []float64{50, 150, 250, 350}, 60)
	filterCollidingLabels(keepAll, rp)

	if len(rp.ticks) != 4 {
		t.Fatalf("kept %d ticks, want 4", len(rp.ticks))
	}
}

func TestCollisionFilterNeverOverlapsAndStaysInside(t *testing.T) {
	positions := []float64{40, 60, 90, 130, 200, 210, 300, 390, 480}
	rp := makeTickPanel(500, positions, 80)
	filterCollidingLabels(keepAll, rp)

	if len(rp.ticks) == 0 {
		t.Fatal("everything filtered; expected survivors")
	}
	lastRight := 0.0
	lastX := -1.0
	for i, tick := range rp.ticks {
		half := tick.label.Bounds().W / 2 * collisionPadding
		if tick.x <= lastX {
			t.Errorf("kept tick %d at x=%v not strictly increasing", i, tick.x)
		}
		if tick.x-half <= lastRight && i > 0 {
			t.Errorf("kept tick %d overlaps previous: left=%v lastRight=%v", i, tick.x-half, lastRight)
		}
		if tick.x+half >= rp.width {
			t.Errorf("kept tick %d extends past axis width: right=%v", i, tick.x+half)
		}
		lastRight = tick.x + half
		lastX = tick.x
	}
}

func TestCollisionFilterFavorsEarlierTicks(t *testing.T) {
	// 140 collides with 100; it is dropped even though keeping {140, 180}
	// instead would also be overlap-free.
	rp := makeTickPanel(500, []float64{100, 140, 180}, 60)
	filterCollidingLabels(keepAll, rp)

	if len(rp.ticks) != 2 {
		t.Fatalf("kept %d ticks, want 2", len(rp.ticks))
	}
	if rp.ticks[0].x != 100 || rp.ticks[1].x != 180 {
		t.Errorf("kept ticks at %v and %v, want 100 and 180", rp.ticks[0].x, rp.ticks[1].x)
	}
}

func TestCollisionFilterRemovesDroppedTicksEntirely(t *testing.T) {
	rp := makeTickPanel(500, []float64{100, 140, 180}, 60)
	surface := rp.surface.(*fakeSurface)
	dropped := surface.elements[2:4] // mark and label for x=140

	filterCollidingLabels(keepAll, rp)

	for i, e := range dropped {
		if !e.removed {
			t.Errorf("dropped element %d still attached", i)
		}
	}
	if got := len(surface.marks()); got != 2 {
		t.Errorf("%d marks survive, want 2", got)
	}
}

func TestCollisionFilterDropsRightEdgeOverflow(t *testing.T) {
	// 480 + 33 > 500: the last tick pokes past the axis edge.
	rp := makeTickPanel(500, []float64{100, 480}, 60)
	filterCollidingLabels(keepAll, rp)

	if len(rp.ticks) != 1 || rp.ticks[0].x != 100 {
		t.Fatalf("kept %v, want only the tick at 100", rp.ticks)
	}
}

func TestCollisionFilterMayDropEverything(t *testing.T) {
	// Labels wider than the panel collide with both edges; filtering all
	// of them is a degenerate outcome, not an error.
	rp := makeTickPanel(100, []float64{10, 50, 90}, 300)
	filterCollidingLabels(keepAll, rp)

	if len(rp.ticks) != 0 {
		t.Fatalf("kept %d ticks, want 0", len(rp.ticks))
	}
	if got := len(rp.surface.(*fakeSurface).labels()); got != 0 {
		t.Errorf("%d labels survive, want 0", got)
	}
}

func TestCollisionFilterReformatsKeptLabels(t *testing.T) {
	rp := makeTickPanel(500, []float64{100, 180}, 60)
	calls := 0
	filterCollidingLabels(func(Tick) string {
		calls++
		return "L"
	}, rp)

	if calls != 2 {
		t.Errorf("formatter called %d times, want once per kept tick", calls)
	}
}
