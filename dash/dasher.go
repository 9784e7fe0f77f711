package dash

import (
	"github.com/gogpu/stroker/internal/curve"
	"github.com/gogpu/stroker/internal/geom"
	"github.com/gogpu/stroker/internal/logging"
	"github.com/gogpu/stroker/path"
)

type penState int

const (
	penInit penState = iota // nothing emitted for this subpath yet
	penDown                 // the last emitted piece is still open downstream
	penUp                   // a gap was crossed, the next dash needs a MoveTo
)

// Dasher is a pipeline stage that forwards only the pen-down parts of each
// subpath. Segments keep their kind: a cut cubic is still emitted as cubics.
type Dasher struct {
	next    path.Consumer
	pattern *Pattern

	start, current geom.Point
	index          int     // current pattern interval
	remaining      float64 // length left in the current interval
	pen            penState
	lifted         bool
	dashes         int
}

// New creates a dasher in front of next.
func New(next path.Consumer, pattern *Pattern) *Dasher {
	d := &Dasher{next: next, pattern: pattern}
	d.beginSubpath(geom.Point{})
	return d
}

// Path returns the dashed form of p.
func Path(p *path.Path, pattern *Pattern) *path.Path {
	c := path.NewCollector()
	path.Feed(p, New(c, pattern))
	return c.Path()
}

// AcceptedSegments implements path.SegmentAcceptor. The dasher emits the same
// segment kinds it receives, so it takes whatever the next stage takes.
func (d *Dasher) AcceptedSegments() path.Segments {
	return path.AcceptedSegments(d.next)
}

// BeginPath implements path.Consumer.
func (d *Dasher) BeginPath() {
	d.dashes = 0
	d.beginSubpath(geom.Point{})
	d.next.BeginPath()
}

// MoveTo implements path.Consumer. Nothing is forwarded until the pen goes
// down.
func (d *Dasher) MoveTo(x, y float64) {
	d.beginSubpath(geom.Pt(x, y))
}

// LineTo implements path.Consumer.
func (d *Dasher) LineTo(x, y float64) {
	d.walk(curve.Line{P0: d.current, P1: geom.Pt(x, y)})
}

// QuadTo implements path.Consumer.
func (d *Dasher) QuadTo(cx, cy, x, y float64) {
	d.walk(curve.Quad{P0: d.current, P1: geom.Pt(cx, cy), P2: geom.Pt(x, y)})
}

// CubicTo implements path.Consumer.
func (d *Dasher) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	d.walk(curve.Cubic{
		P0: d.current,
		P1: geom.Pt(c1x, c1y),
		P2: geom.Pt(c2x, c2y),
		P3: geom.Pt(x, y),
	})
}

// ClosePath implements path.Consumer. The closing edge is dashed like any
// other segment; the close itself is forwarded only when the whole subpath was
// drawn as a single dash.
func (d *Dasher) ClosePath() {
	if d.current != d.start {
		d.walk(curve.Line{P0: d.current, P1: d.start})
	}
	if d.pen == penDown && !d.lifted {
		d.next.ClosePath()
	}
	d.beginSubpath(d.start)
}

// EndPath implements path.Consumer.
func (d *Dasher) EndPath() {
	logging.Logger().Debug("dash: path done", "dashes", d.dashes)
	d.next.EndPath()
}

func (d *Dasher) beginSubpath(p geom.Point) {
	d.start = p
	d.current = p
	d.index, d.remaining = d.pattern.Lookup(d.pattern.Phase())
	d.pen = penInit
	d.lifted = false
}

// walk cuts c at every pattern boundary it crosses.
func (d *Dasher) walk(c curve.Curve) {
	d.current = c.End()
	length := c.HullLength()
	if length <= 0 {
		return
	}
	for {
		if d.remaining <= 0 {
			d.index, d.remaining = d.pattern.Next(d.index)
			continue
		}
		if length <= d.remaining {
			d.emit(c)
			d.remaining -= length
			return
		}
		head, tail := c.Split(d.remaining / length)
		d.emit(head)
		length -= d.remaining
		c = tail
		d.index, d.remaining = d.pattern.Next(d.index)
	}
}

func (d *Dasher) emit(c curve.Curve) {
	if d.index%2 == 1 {
		d.lifted = true
		if d.pen == penDown {
			d.pen = penUp
		}
		return
	}
	if d.pen != penDown {
		s := c.Start()
		d.next.MoveTo(s.X, s.Y)
		d.pen = penDown
		d.dashes++
	}
	c.AppendTo(d.next)
}
