// Package outline converts stroked paths into fill outlines.
//
// The Outliner is a path.Consumer stage. It collects the segments of each
// subpath, offsets them to both sides by the stroke radius and connects the
// offset pieces with joins and caps:
//   - an open subpath becomes one closed loop: left side, end cap, right
//     side, start cap
//   - a closed subpath becomes two closed loops, one per side
//
// The right side is built by offsetting the reversed segments, so both loops
// use the same left-hand offset. Filling the result with the nonzero rule
// gives the stroked area.
package outline

import (
	"github.com/gogpu/stroker/internal/curve"
	"github.com/gogpu/stroker/internal/geom"
	"github.com/gogpu/stroker/internal/logging"
	"github.com/gogpu/stroker/path"
)

// Outliner is the stroking stage of a pipeline.
type Outliner struct {
	next path.Consumer
	opts Options

	flatnessSq float64
	miterLenSq float64 // (MiterLimit*Radius)^2

	core    []curve.Curve
	reverse []curve.Curve
	loop    []curve.Curve

	start, current geom.Point
	drawn          bool // the subpath has at least one segment or a close
	open           bool // a subpath was started and not yet closed

	stats struct {
		loops, depthHits, clamped, dots int
	}
}

// New creates an outliner in front of next.
func New(next path.Consumer, opts Options) *Outliner {
	// Non-positive and NaN limits always clamp, which degrades to a bevel.
	limit := 0.0
	if opts.MiterLimit > 0 {
		limit = opts.MiterLimit * opts.Radius
	}
	return &Outliner{
		next:       next,
		opts:       opts,
		flatnessSq: opts.flatnessSquared(),
		miterLenSq: limit * limit,
		core:       make([]curve.Curve, 0, 16),
		loop:       make([]curve.Curve, 0, 64),
	}
}

// Path returns the fill outline of p stroked with opts.
func Path(p *path.Path, opts Options) *path.Path {
	c := path.NewCollector()
	path.Feed(p, New(c, opts))
	return c.Path()
}

// AcceptedSegments implements path.SegmentAcceptor.
func (o *Outliner) AcceptedSegments() path.Segments { return path.AllSegments }

// BeginPath implements path.Consumer.
func (o *Outliner) BeginPath() {
	o.core = o.core[:0]
	o.start, o.current = geom.Point{}, geom.Point{}
	o.drawn = false
	o.open = false
	o.stats.loops, o.stats.depthHits, o.stats.clamped, o.stats.dots = 0, 0, 0, 0
	o.next.BeginPath()
}

// MoveTo implements path.Consumer.
func (o *Outliner) MoveTo(x, y float64) {
	o.finish(false)
	o.start = geom.Pt(x, y)
	o.current = o.start
	o.open = true
}

// LineTo implements path.Consumer.
func (o *Outliner) LineTo(x, y float64) {
	o.add(curve.Line{P0: o.current, P1: geom.Pt(x, y)})
}

// QuadTo implements path.Consumer.
func (o *Outliner) QuadTo(cx, cy, x, y float64) {
	o.add(curve.Quad{P0: o.current, P1: geom.Pt(cx, cy), P2: geom.Pt(x, y)})
}

// CubicTo implements path.Consumer.
func (o *Outliner) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	o.add(curve.Cubic{
		P0: o.current,
		P1: geom.Pt(c1x, c1y),
		P2: geom.Pt(c2x, c2y),
		P3: geom.Pt(x, y),
	})
}

// ClosePath implements path.Consumer.
func (o *Outliner) ClosePath() {
	if !o.open {
		return
	}
	o.open = false
	o.drawn = true
	if o.current != o.start {
		o.add(curve.Line{P0: o.current, P1: o.start})
	}
	o.finish(true)
	o.current = o.start
}

// EndPath implements path.Consumer.
func (o *Outliner) EndPath() {
	o.finish(false)
	if o.stats.depthHits > 0 || o.stats.clamped > 0 {
		logging.Logger().Debug("outline: path done",
			"loops", o.stats.loops,
			"dots", o.stats.dots,
			"clampedMiters", o.stats.clamped,
			"depthLimitHits", o.stats.depthHits)
	}
	o.next.EndPath()
}

func (o *Outliner) add(c curve.Curve) {
	o.drawn = true
	o.open = true
	o.current = c.End()
	if c.Degenerate() {
		return
	}
	o.core = append(o.core, c)
}

// finish emits the outline of the collected subpath and resets the
// accumulator.
func (o *Outliner) finish(closed bool) {
	defer func() {
		o.core = o.core[:0]
		o.drawn = false
	}()

	if len(o.core) == 0 {
		if o.drawn {
			o.dot(o.start)
		}
		return
	}

	o.reverse = o.reverse[:0]
	for i := len(o.core) - 1; i >= 0; i-- {
		o.reverse = append(o.reverse, o.core[i].Reversed())
	}

	if closed {
		o.loop = o.loop[:0]
		o.side(o.core, true)
		o.emit()

		o.loop = o.loop[:0]
		o.side(o.reverse, true)
		o.emit()
		return
	}

	o.loop = o.loop[:0]
	o.side(o.core, false)
	o.capEnd(o.core[len(o.core)-1], o.reverse[0])
	o.side(o.reverse, false)
	o.capEnd(o.reverse[len(o.reverse)-1], o.core[0])
	o.emit()
}

// side appends the left offset of src to the loop, with joins between
// consecutive curves and, when closed, from the last curve back to the first.
func (o *Outliner) side(src []curve.Curve, closed bool) {
	first := len(o.loop)
	for i, c := range src {
		if i > 0 {
			o.join(src[i-1], c, o.loop[len(o.loop)-1].End(), o.startOffset(c))
		}
		o.offset(c, 0)
	}
	if closed {
		last := src[len(src)-1]
		o.join(last, src[0], o.loop[len(o.loop)-1].End(), o.loop[first].Start())
	}
}

// capEnd appends the cap at the end of from, running from the left side of
// from to the left side of to. to starts where from ends, heading back.
func (o *Outliner) capEnd(from, to curve.Curve) {
	a := o.loop[len(o.loop)-1].End()
	b := o.startOffset(to)
	o.cap(a, b, from.EndTangent().Normalize())
}

// emit sends the finished loop downstream as one closed subpath.
func (o *Outliner) emit() {
	loop := o.loop[:0]
	for _, c := range o.loop {
		if !c.Degenerate() {
			loop = append(loop, c)
		}
	}
	if len(loop) == 0 {
		return
	}
	first := loop[0].Start()
	if l, ok := loop[len(loop)-1].(curve.Line); ok && l.P1.DistanceSquared(first) <= o.flatnessSq {
		loop = loop[:len(loop)-1]
	}

	o.next.MoveTo(first.X, first.Y)
	for _, c := range loop {
		c.AppendTo(o.next)
	}
	o.next.ClosePath()
	o.stats.loops++
}

// dot emits the outline of a zero-length subpath. Butt caps produce nothing.
func (o *Outliner) dot(p geom.Point) {
	r := o.opts.Radius
	d := path.New()
	switch o.opts.Cap {
	case CapRound:
		d.Circle(p.X, p.Y, r)
	case CapSquare:
		d.Rectangle(p.X-r, p.Y-r, 2*r, 2*r)
	default:
		return
	}
	path.FeedSegments(d, o.next)
	o.stats.dots++
}

// startOffset returns the start point of the left offset of c.
func (o *Outliner) startOffset(c curve.Curve) geom.Point {
	n := c.StartTangent().Normalize().Perp()
	return c.Start().Add(n.Mul(o.opts.Radius))
}
