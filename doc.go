// Package kibana provides an axis layout engine for 2-D charting surfaces.
//
// # Overview
//
// Given a sequence of data values (categorical or temporal), a pixel width,
// and a tick-label formatter, the engine computes a coordinate mapping
// (scale), renders axis ticks, and resolves label overlap. Categorical axes
// rotate and truncate labels that outgrow their band; temporal axes drop
// colliding labels in a left-to-right sweep. Companion chart elements
// (titles, vertical spacer blocks used to align a grid of small-multiple
// charts) are kept in sync with the computed axis geometry.
//
// # Quick Start
//
//	import "github.com/sdd330/kibana"
//
//	axis, err := kibana.New(surface,
//	    kibana.WithCategories([]string{"January", "February", "March"}),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := axis.Render(); err != nil {
//	    return err
//	}
//
// # Two-Pass Layout
//
// Label widths are only known after text has been rendered, so layout runs
// in two phases: phase one draws provisional tick marks and labels, phase
// two measures the rendered geometry and emits corrective transforms
// (rotation, truncation, collision filtering, title and spacer fitting).
// Both phases run synchronously inside Render.
//
// # Rendering Backends
//
// The engine draws through the Surface and Element interfaces and never
// touches pixels itself. The ggsurface subpackage provides a concrete
// implementation backed by github.com/gogpu/gg for software-rendered PNG
// output; tests use in-memory fakes.
//
// # Concurrency
//
// Render is synchronous and not safe for concurrent use on the same Axis.
// The caller serializes or debounces render triggers (for example on
// resize events).
package kibana
