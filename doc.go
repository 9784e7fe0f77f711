// Package stroker turns stroked paths into fill outlines.
//
// # Overview
//
// A stroke is described by a width, a cap, a join, a miter limit and an
// optional dash pattern. Stroking a path produces closed loops that, filled
// with the nonzero rule, cover exactly the stroked area. The work is done by a
// chain of stages that all speak the path.Consumer protocol, so sources
// (paths, SVG path data, font glyphs) and sinks (collectors, rasterizers)
// can be combined freely.
//
// # Quick Start
//
//	import "github.com/gogpu/stroker"
//
//	p := path.New()
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 50)
//
//	style := stroker.RoundStroke().WithWidth(4)
//	out, err := stroker.StrokePath(p, style)
//
// # Stages
//
// The stages can also be used on their own:
//   - flatten: replaces curves with lines within a tolerance
//   - dash: cuts subpaths into dashes
//   - outline: offsets, joins and caps, the stroking proper
//
// NewPipeline chains them in front of any sink.
//
// # Coordinate System
//
// Coordinates are float64 in caller-defined units. Joins are classified with
// y pointing up; with y pointing down (as in images) left and right swap,
// which does not change the filled area.
package stroker
