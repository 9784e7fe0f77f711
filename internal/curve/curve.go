// Package curve provides the line, quadratic and cubic Bezier primitives the
// stroking stages operate on.
//
// Curves are small value types. Cubic is the canonical representation:
// quadratics raise to cubics whenever a uniform form is needed, for example
// when building offset curves.
package curve

import (
	"math"

	"github.com/gogpu/stroker/internal/geom"
	"github.com/gogpu/stroker/path"
)

// Point is the point type shared with the geometry helpers.
type Point = geom.Point

// Curve is a single path segment: a line, quadratic or cubic Bezier.
type Curve interface {
	// Start returns the first point of the curve.
	Start() Point
	// End returns the last point of the curve.
	End() Point
	// Eval evaluates the curve at parameter t in [0, 1].
	Eval(t float64) Point
	// Subdivide splits the curve at t=0.5.
	Subdivide() (Curve, Curve)
	// Split splits the curve at parameter t using De Casteljau blending.
	Split(t float64) (Curve, Curve)
	// Reversed returns the curve traversed from End to Start.
	Reversed() Curve
	// StartTangent returns the (unnormalized) direction leaving Start.
	StartTangent() Point
	// EndTangent returns the (unnormalized) direction arriving at End.
	EndTangent() Point
	// HullLength returns the length of the control polygon.
	HullLength() float64
	// FlatnessSquared returns the largest squared distance from a control
	// point to the chord between Start and End.
	FlatnessSquared() float64
	// SharpTurn reports whether two adjacent control-polygon edges point
	// away from each other (negative dot product).
	SharpTurn() bool
	// Offset returns an approximation of the parallel curve at distance r
	// to the left (along StartTangent().Perp()).
	Offset(r float64) Curve
	// Degenerate reports whether all control points coincide.
	Degenerate() bool
	// AppendTo emits the curve to c as a LineTo, QuadTo or CubicTo. The
	// consumer's current point is assumed to be Start.
	AppendTo(c path.Consumer)
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Start returns the starting point of the line.
func (l Line) Start() Point { return l.P0 }

// End returns the ending point of the line.
func (l Line) End() Point { return l.P1 }

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Subdivide splits the line at t=0.5 into two halves.
func (l Line) Subdivide() (Curve, Curve) {
	return l.Split(0.5)
}

// Split splits the line at parameter t.
func (l Line) Split(t float64) (Curve, Curve) {
	mid := l.Eval(t)
	return Line{P0: l.P0, P1: mid}, Line{P0: mid, P1: l.P1}
}

// Reversed returns a copy of the line with endpoints swapped.
func (l Line) Reversed() Curve {
	return Line{P0: l.P1, P1: l.P0}
}

func (l Line) StartTangent() Point { return l.P1.Sub(l.P0) }
func (l Line) EndTangent() Point   { return l.P1.Sub(l.P0) }

// HullLength returns the length of the line segment.
func (l Line) HullLength() float64 {
	return l.P0.Distance(l.P1)
}

// FlatnessSquared is always zero for a line.
func (l Line) FlatnessSquared() float64 { return 0 }

// SharpTurn is always false for a line.
func (l Line) SharpTurn() bool { return false }

// Offset translates the line by r along its left normal.
func (l Line) Offset(r float64) Curve {
	n := l.P1.Sub(l.P0).Normalize().Perp().Mul(r)
	return Line{P0: l.P0.Add(n), P1: l.P1.Add(n)}
}

// Degenerate reports whether the line has zero length.
func (l Line) Degenerate() bool {
	return l.P1.Sub(l.P0).IsZero()
}

// AppendTo emits a LineTo to P1.
func (l Line) AppendTo(c path.Consumer) {
	c.LineTo(l.P1.X, l.P1.Y)
}

// -------------------------------------------------------------------
// Quad - Quadratic Bezier Curve
// -------------------------------------------------------------------

// Quad represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type Quad struct {
	P0, P1, P2 Point
}

// Start returns the starting point of the curve.
func (q Quad) Start() Point { return q.P0 }

// End returns the ending point of the curve.
func (q Quad) End() Point { return q.P2 }

// Eval evaluates the curve at parameter t (0 to 1).
func (q Quad) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q Quad) Subdivide() (Curve, Curve) {
	return q.Split(0.5)
}

// Split splits the curve at parameter t using de Casteljau.
func (q Quad) Split(t float64) (Curve, Curve) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	mid := p01.Lerp(p12, t)
	return Quad{P0: q.P0, P1: p01, P2: mid}, Quad{P0: mid, P1: p12, P2: q.P2}
}

// Reversed returns the curve traversed backwards.
func (q Quad) Reversed() Curve {
	return Quad{P0: q.P2, P1: q.P1, P2: q.P0}
}

// StartTangent returns the direction leaving P0.
func (q Quad) StartTangent() Point {
	if d := q.P1.Sub(q.P0); !d.IsZero() {
		return d
	}
	return q.P2.Sub(q.P0)
}

// EndTangent returns the direction arriving at P2.
func (q Quad) EndTangent() Point {
	if d := q.P2.Sub(q.P1); !d.IsZero() {
		return d
	}
	return q.P2.Sub(q.P0)
}

// HullLength returns the control polygon length.
func (q Quad) HullLength() float64 {
	return q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
}

// FlatnessSquared returns the squared distance of the control point to the chord.
func (q Quad) FlatnessSquared() float64 {
	return geom.DistanceToSegmentSquared(q.P1, q.P0, q.P2)
}

// SharpTurn reports whether the control polygon folds back on itself.
func (q Quad) SharpTurn() bool {
	return q.P1.Sub(q.P0).Dot(q.P2.Sub(q.P1)) < 0
}

// Offset raises the curve to a cubic and offsets that.
func (q Quad) Offset(r float64) Curve {
	return q.Raise().Offset(r)
}

// Degenerate reports whether all control points coincide.
func (q Quad) Degenerate() bool {
	return q.P1.Sub(q.P0).IsZero() && q.P2.Sub(q.P0).IsZero()
}

// AppendTo emits a QuadTo.
func (q Quad) AppendTo(c path.Consumer) {
	c.QuadTo(q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
}

// Raise elevates the quadratic to an exactly equivalent cubic Bezier curve.
func (q Quad) Raise() Cubic {
	// C1 = P0 + 2/3 * (P1 - P0), C2 = P2 + 2/3 * (P1 - P2)
	return Cubic{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// Cubic - Cubic Bezier Curve
// -------------------------------------------------------------------

// Cubic represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// Start returns the starting point of the curve.
func (c Cubic) Start() Point { return c.P0 }

// End returns the ending point of the curve.
func (c Cubic) End() Point { return c.P3 }

// Eval evaluates the curve at parameter t (0 to 1).
func (c Cubic) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c Cubic) Subdivide() (Curve, Curve) {
	return c.Split(0.5)
}

// Split splits the curve at parameter t using de Casteljau.
func (c Cubic) Split(t float64) (Curve, Curve) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return Cubic{P0: c.P0, P1: p01, P2: p012, P3: mid},
		Cubic{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Reversed returns the curve traversed backwards.
func (c Cubic) Reversed() Curve {
	return Cubic{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// StartTangent returns the direction leaving P0, skipping coincident
// control points.
func (c Cubic) StartTangent() Point {
	if d := c.P1.Sub(c.P0); !d.IsZero() {
		return d
	}
	if d := c.P2.Sub(c.P0); !d.IsZero() {
		return d
	}
	return c.P3.Sub(c.P0)
}

// EndTangent returns the direction arriving at P3, skipping coincident
// control points.
func (c Cubic) EndTangent() Point {
	if d := c.P3.Sub(c.P2); !d.IsZero() {
		return d
	}
	if d := c.P3.Sub(c.P1); !d.IsZero() {
		return d
	}
	return c.P3.Sub(c.P0)
}

// HullLength returns the control polygon length.
func (c Cubic) HullLength() float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// FlatnessSquared returns the larger squared distance of the two control
// points to the chord.
func (c Cubic) FlatnessSquared() float64 {
	return math.Max(
		geom.DistanceToSegmentSquared(c.P1, c.P0, c.P3),
		geom.DistanceToSegmentSquared(c.P2, c.P0, c.P3),
	)
}

// SharpTurn reports whether two adjacent control-polygon edges point away
// from each other.
func (c Cubic) SharpTurn() bool {
	e0 := c.P1.Sub(c.P0)
	e1 := c.P2.Sub(c.P1)
	e2 := c.P3.Sub(c.P2)
	return e0.Dot(e1) < 0 || e1.Dot(e2) < 0 || (e1.IsZero() && e0.Dot(e2) < 0)
}

// Offset approximates the parallel curve at distance r. The end points move
// along their normals and keep their tangent directions; the control arms are
// scaled by a single factor chosen so that the offset curve passes through the
// offset of the source midpoint.
func (c Cubic) Offset(r float64) Curve {
	n0 := c.StartTangent().Normalize().Perp()
	n3 := c.EndTangent().Normalize().Perp()
	q0 := c.P0.Add(n0.Mul(r))
	q3 := c.P3.Add(n3.Mul(r))

	a0 := c.P1.Sub(c.P0)
	a1 := c.P2.Sub(c.P3)

	// B(0.5) = (P0+P3)/2 + 3/8*(a0+a1), and B'(0.5) is parallel to P3+P2-P1-P0.
	midTan := c.P3.Add(c.P2).Sub(c.P1).Sub(c.P0)
	if midTan.IsZero() {
		midTan = c.P3.Sub(c.P0)
	}
	target := c.Eval(0.5).Add(midTan.Normalize().Perp().Mul(r))

	k := 1.0
	v := a0.Add(a1).Mul(3.0 / 8.0)
	if l2 := v.LengthSquared(); l2 > geom.Epsilon {
		k = target.Sub(q0.Lerp(q3, 0.5)).Dot(v) / l2
	}
	if k < 0 {
		k = 0
	}

	return Cubic{P0: q0, P1: q0.Add(a0.Mul(k)), P2: q3.Add(a1.Mul(k)), P3: q3}
}

// Degenerate reports whether all control points coincide.
func (c Cubic) Degenerate() bool {
	return c.P1.Sub(c.P0).IsZero() && c.P2.Sub(c.P0).IsZero() && c.P3.Sub(c.P0).IsZero()
}

// AppendTo emits a CubicTo.
func (c Cubic) AppendTo(cons path.Consumer) {
	cons.CubicTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
}

// FromSegment builds the curve for a path segment starting at from.
// coords holds the segment's coordinates as delivered by a Consumer.
func FromSegment(from Point, cmd path.Command, coords ...float64) Curve {
	switch cmd {
	case path.QuadToCmd:
		return Quad{P0: from, P1: geom.Pt(coords[0], coords[1]), P2: geom.Pt(coords[2], coords[3])}
	case path.CubicToCmd:
		return Cubic{
			P0: from,
			P1: geom.Pt(coords[0], coords[1]),
			P2: geom.Pt(coords[2], coords[3]),
			P3: geom.Pt(coords[4], coords[5]),
		}
	default:
		return Line{P0: from, P1: geom.Pt(coords[0], coords[1])}
	}
}
