package kibana

import "time"

// tickCount is the number of ticks requested from the tick generator.
// Band scales treat it as advisory and render every category; time scales
// pick the nice interval that comes closest.
const tickCount = 10

// tickIntervals are the sub-month candidate steps, smallest first.
var tickIntervals = []time.Duration{
	time.Second,
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	48 * time.Hour,
	7 * 24 * time.Hour,
}

// timeTicks returns up to count+1 interval-aligned ticks covering
// [min, max] in ascending order. Spans longer than a few weeks step by
// whole months or years instead of fixed durations.
func timeTicks(min, max time.Time, count int) []Tick {
	if !max.After(min) {
		return []Tick{{Time: min}}
	}
	span := max.Sub(min)
	target := span / time.Duration(count)

	step := tickIntervals[len(tickIntervals)-1]
	for _, iv := range tickIntervals {
		if iv >= target {
			step = iv
			break
		}
	}
	if target > step {
		return monthTicks(min, max, count)
	}

	first := min.Truncate(step)
	if first.Before(min) {
		first = first.Add(step)
	}
	var out []Tick
	for t := first; !t.After(max); t = t.Add(step) {
		out = append(out, Tick{Time: t})
	}
	return out
}

// monthTicks steps by whole calendar months (or multiples of twelve for
// multi-year spans), aligned to month boundaries.
func monthTicks(min, max time.Time, count int) []Tick {
	months := (max.Year()-min.Year())*12 + int(max.Month()) - int(min.Month())
	step := 12
	for _, s := range []int{1, 2, 3, 6, 12} {
		if months <= s*count {
			step = s
			break
		}
	}
	for months > step*count {
		step *= 2
	}

	first := time.Date(min.Year(), min.Month(), 1, 0, 0, 0, 0, min.Location())
	if first.Before(min) {
		first = first.AddDate(0, 1, 0)
	}
	for int(first.Month()-1)%step != 0 {
		first = first.AddDate(0, 1, 0)
	}

	var out []Tick
	for t := first; !t.After(max); t = t.AddDate(0, step, 0) {
		out = append(out, Tick{Time: t})
	}
	return out
}
