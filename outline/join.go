package outline

import (
	"math"

	"github.com/gogpu/stroker/internal/curve"
	"github.com/gogpu/stroker/internal/geom"
)

// Turn thresholds on unit tangents. They are tunable, not exact.
const (
	// crossEpsilon is the sine below which two directions count as parallel.
	crossEpsilon = 1e-9
	// arcEpsilon is the relative cross product below which a round join is
	// drawn as a half circle.
	arcEpsilon = 1e-6
)

// join appends the connection from a, the end of the offset of prev, to b,
// the start of the offset of next. Both curves meet at the path vertex.
func (o *Outliner) join(prev, next curve.Curve, a, b geom.Point) {
	if a.DistanceSquared(b) <= o.flatnessSq {
		return
	}
	v := next.Start()
	t1 := prev.EndTangent().Normalize()
	t2 := next.StartTangent().Normalize()

	if leftTurn(t1, t2) {
		// Inner side: the offsets overlap, route through the vertex.
		o.line(a, v)
		o.line(v, b)
		return
	}

	switch o.opts.Join {
	case JoinBevel:
		o.line(a, b)
	case JoinRound:
		o.arc(v, a, b, t1)
	default:
		o.miter(v, a, b, t1, t2)
	}
}

// miter appends the miter spike a -> apex -> b, or the clamped form when the
// apex is farther than MiterLimit*Radius from v.
func (o *Outliner) miter(v, a, b, t1, t2 geom.Point) {
	if o.opts.MiterLimit > 0 {
		if apex, ok := geom.LineIntersection(a, t1, b, t2); ok && apex.DistanceSquared(v) <= o.miterLenSq {
			o.line(a, apex)
			o.line(apex, b)
			return
		}
	}
	o.clampedMiter(a, b, t1, t2)
}

// clampedMiter cuts the spike off so that its two outer corners lie at
// exactly MiterLimit*Radius from the vertex: a -> p1 -> p2 -> b, where p1 and
// p2 continue the incoming and outgoing edges. With a limit at or below 1 the
// corners collapse onto a and b and the join is a bevel.
func (o *Outliner) clampedMiter(a, b, t1, t2 geom.Point) {
	o.stats.clamped++
	r := o.opts.Radius
	h := math.Sqrt(math.Max(o.miterLenSq-r*r, 0))
	p1 := a.Add(t1.Mul(h))
	p2 := b.Sub(t2.Mul(h))
	o.line(a, p1)
	o.line(p1, p2)
	o.line(p2, b)
}

// arc appends a circular arc around c from a to b as one cubic. t is the
// direction of travel at a, used when the arc is a half circle.
func (o *Outliner) arc(c, a, b, t geom.Point) {
	va := a.Sub(c)
	vb := b.Sub(c)
	q1 := va.Dot(va)
	q2 := q1 + va.Dot(vb)
	cross := va.Cross(vb)

	if math.Abs(cross) <= arcEpsilon*q1 {
		if q2 < q1 {
			o.halfCircle(a, b, t)
		} else {
			o.line(a, b)
		}
		return
	}

	k := 4.0 / 3.0 * (math.Sqrt(2*q1*q2) - q2) / cross
	o.loop = append(o.loop, curve.Cubic{
		P0: a,
		P1: a.Add(va.Perp().Mul(k)),
		P2: b.Sub(vb.Perp().Mul(k)),
		P3: b,
	})
}

// halfCircle appends a single-cubic half circle from a to b bulging along t.
func (o *Outliner) halfCircle(a, b, t geom.Point) {
	arm := t.Mul(4.0 / 3.0 * o.opts.Radius)
	o.loop = append(o.loop, curve.Cubic{P0: a, P1: a.Add(arm), P2: b.Add(arm), P3: b})
}

// cap appends the end cap from a on one side of the stroke to b on the
// other. t is the unit direction leaving the stroke.
func (o *Outliner) cap(a, b, t geom.Point) {
	switch o.opts.Cap {
	case CapRound:
		o.halfCircle(a, b, t)
	case CapSquare:
		ext := t.Mul(o.opts.Radius)
		o.line(a, a.Add(ext))
		o.line(a.Add(ext), b.Add(ext))
		o.line(b.Add(ext), b)
	default:
		o.line(a, b)
	}
}

func (o *Outliner) line(a, b geom.Point) {
	o.loop = append(o.loop, curve.Line{P0: a, P1: b})
}
