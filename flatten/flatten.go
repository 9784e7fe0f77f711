// Package flatten converts curved path segments into line segments.
//
// The Flattener is a path.Consumer stage: quadratic and cubic segments are
// subdivided at t=0.5 until every control point lies within the tolerance of
// the chord, then replaced by a single LineTo. Lines pass through unchanged.
// Segments that do not move the current point are dropped.
package flatten

import (
	"github.com/gogpu/stroker/internal/curve"
	"github.com/gogpu/stroker/internal/geom"
	"github.com/gogpu/stroker/internal/logging"
	"github.com/gogpu/stroker/path"
)

// DefaultToleranceSquared is the squared flatness tolerance used when a
// non-positive tolerance is given (0.1 units).
const DefaultToleranceSquared = 0.01

// MaxDepth bounds the recursive subdivision. A curve still not flat at this
// depth is replaced by its chord.
const MaxDepth = 20

// Flattener is a pipeline stage emitting only MoveTo, LineTo and ClosePath.
type Flattener struct {
	next  path.Consumer
	tolSq float64

	start    geom.Point
	current  geom.Point
	depthHit int
}

// New creates a flattener in front of next. toleranceSquared is the largest
// allowed squared distance between a control point and its chord.
func New(next path.Consumer, toleranceSquared float64) *Flattener {
	if toleranceSquared <= 0 {
		toleranceSquared = DefaultToleranceSquared
	}
	return &Flattener{next: next, tolSq: toleranceSquared}
}

// Path returns a polyline-only copy of p.
func Path(p *path.Path, toleranceSquared float64) *path.Path {
	c := path.NewCollector()
	path.Feed(p, New(c, toleranceSquared))
	return c.Path()
}

// AcceptedSegments implements path.SegmentAcceptor: the flattener takes every
// segment kind.
func (f *Flattener) AcceptedSegments() path.Segments { return path.AllSegments }

// BeginPath implements path.Consumer.
func (f *Flattener) BeginPath() {
	f.start = geom.Point{}
	f.current = geom.Point{}
	f.depthHit = 0
	f.next.BeginPath()
}

// MoveTo implements path.Consumer.
func (f *Flattener) MoveTo(x, y float64) {
	f.start = geom.Pt(x, y)
	f.current = f.start
	f.next.MoveTo(x, y)
}

// LineTo implements path.Consumer.
func (f *Flattener) LineTo(x, y float64) {
	f.lineTo(geom.Pt(x, y))
}

// QuadTo implements path.Consumer.
func (f *Flattener) QuadTo(cx, cy, x, y float64) {
	f.flatten(curve.Quad{P0: f.current, P1: geom.Pt(cx, cy), P2: geom.Pt(x, y)}, 0)
}

// CubicTo implements path.Consumer.
func (f *Flattener) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	f.flatten(curve.Cubic{
		P0: f.current,
		P1: geom.Pt(c1x, c1y),
		P2: geom.Pt(c2x, c2y),
		P3: geom.Pt(x, y),
	}, 0)
}

// ClosePath implements path.Consumer.
func (f *Flattener) ClosePath() {
	f.current = f.start
	f.next.ClosePath()
}

// EndPath implements path.Consumer.
func (f *Flattener) EndPath() {
	if f.depthHit > 0 {
		logging.Logger().Debug("flatten: subdivision depth limit reached",
			"curves", f.depthHit, "maxDepth", MaxDepth)
	}
	f.next.EndPath()
}

func (f *Flattener) flatten(c curve.Curve, depth int) {
	if c.FlatnessSquared() <= f.tolSq {
		f.lineTo(c.End())
		return
	}
	if depth >= MaxDepth {
		f.depthHit++
		f.lineTo(c.End())
		return
	}
	a, b := c.Subdivide()
	f.flatten(a, depth+1)
	f.flatten(b, depth+1)
}

func (f *Flattener) lineTo(p geom.Point) {
	if p == f.current {
		return
	}
	f.current = p
	f.next.LineTo(p.X, p.Y)
}
