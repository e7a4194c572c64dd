package kibana

import (
	"math"
	"time"
)

// Ordering is the temporal descriptor for an axis. When Temporal is true
// the axis uses a continuous time scale over [Min, Max] and resolves label
// overlap by collision filtering; otherwise the axis is categorical.
type Ordering struct {
	Temporal bool
	Min, Max time.Time
}

// Tick is one labeled marker on an axis. Exactly one of Time or Category
// is meaningful, depending on the axis kind.
type Tick struct {
	Time     time.Time
	Category string
}

// Formatter maps a tick's domain value to its display string. Formatters
// must be pure: they are called once per tick per render and again during
// the collision-filter pass.
type Formatter func(Tick) string

// scale is a coordinate mapping from domain values to pixel offsets.
// Built once per panel per render pass and discarded afterwards.
type scale interface {
	// applyRange positions the scale over [0, width].
	applyRange(width float64)

	// position returns the pixel offset of a domain value. Out-of-domain
	// values yield NaN.
	position(t Tick) float64

	// ticks returns the markers the axis should draw, in ascending
	// domain order.
	ticks() []Tick

	// probe evaluates the scale at in-domain values and reports
	// ErrInvalidScale when any result is not a number.
	probe() error
}

// buildScale selects the scale kind from the ordering metadata: a
// continuous time scale when ord.Temporal is set, otherwise a discrete
// band scale over the ordered category values.
func buildScale(ord *Ordering, categories []string) scale {
	if ord != nil && ord.Temporal {
		return &timeScale{min: ord.Min, max: ord.Max}
	}
	return newBandScale(categories)
}

// timeScale maps [min, max] linearly onto [0, width].
type timeScale struct {
	min, max time.Time
	width    float64
}

func (s *timeScale) applyRange(width float64) { s.width = width }

func (s *timeScale) position(t Tick) float64 {
	span := s.max.Sub(s.min).Seconds()
	return s.width * t.Time.Sub(s.min).Seconds() / span
}

func (s *timeScale) ticks() []Tick {
	return timeTicks(s.min, s.max, tickCount)
}

func (s *timeScale) probe() error {
	for _, t := range []Tick{{Time: s.min}, {Time: s.max}} {
		if math.IsNaN(s.position(t)) {
			return ErrInvalidScale
		}
	}
	return nil
}

// bandPadding is the inter-band spacing factor for categorical axes:
// 10% of the band step, applied between bands and at the outer edges.
const bandPadding = 0.1

// bandScale allots one band per category across [0, width]. Duplicate
// categories collapse to one band; order is preserved and the first
// occurrence wins.
type bandScale struct {
	keys  []string
	index map[string]int
	width float64
	step  float64
	band  float64
}

func newBandScale(categories []string) *bandScale {
	s := &bandScale{index: make(map[string]int, len(categories))}
	for _, k := range categories {
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = len(s.keys)
		s.keys = append(s.keys, k)
	}
	return s
}

func (s *bandScale) applyRange(width float64) {
	s.width = width
	n := float64(len(s.keys))
	s.step = width / (n + bandPadding)
	s.band = s.step * (1 - bandPadding)
}

// position returns the left edge of a category's band. The axis centers
// tick marks by adding half the band width.
func (s *bandScale) position(t Tick) float64 {
	i, ok := s.index[t.Category]
	if !ok {
		return math.NaN()
	}
	return s.step*bandPadding + s.step*float64(i)
}

// bandWidth is the pixel width allotted to one category after padding.
func (s *bandScale) bandWidth() float64 { return s.band }

func (s *bandScale) ticks() []Tick {
	out := make([]Tick, len(s.keys))
	for i, k := range s.keys {
		out[i] = Tick{Category: k}
	}
	return out
}

func (s *bandScale) probe() error {
	for _, k := range s.keys {
		if math.IsNaN(s.position(Tick{Category: k})) {
			return ErrInvalidScale
		}
	}
	return nil
}
