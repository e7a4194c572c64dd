// Package ggsurface implements the kibana rendering-surface capability on
// top of github.com/gogpu/gg.
//
// A Surface is a tree of positioned groups holding line and text
// primitives. Nothing is rasterized while the axis engine draws and
// measures; Render walks the tree once and rasterizes it into a gg.Context
// for PNG output. Text is measured through gg's text stack, so the widths
// the engine sees during layout match the widths that end up on pixels.
//
// Example:
//
//	root, err := ggsurface.New(800, 120)
//	if err != nil {
//	    return err
//	}
//	axis, err := kibana.New(root, kibana.WithCategories(values))
//	if err != nil {
//	    return err
//	}
//	if err := axis.Render(); err != nil {
//	    return err
//	}
//	dc, err := root.Render()
//	if err != nil {
//	    return err
//	}
//	return dc.SavePNG("axis.png")
//
// Surfaces are not safe for concurrent use.
package ggsurface
