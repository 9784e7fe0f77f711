// Package geom provides the point arithmetic shared by the stroking stages.
package geom

import "math"

// Epsilon is the squared-length threshold below which a vector is treated
// as zero.
const Epsilon = 1e-18

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Neg returns the negated vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// DistanceSquared returns the squared distance between two points.
func (p Point) DistanceSquared(q Point) float64 {
	return p.Sub(q).LengthSquared()
}

// Normalize returns a unit vector in the same direction, or the zero vector
// when p is degenerate.
func (p Point) Normalize() Point {
	l2 := p.LengthSquared()
	if l2 < Epsilon {
		return Point{}
	}
	l := math.Sqrt(l2)
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns the vector rotated 90 degrees: (-y, x).
// With y pointing up this is the left-hand normal of a direction.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsZero reports whether p is shorter than Epsilon.
func (p Point) IsZero() bool {
	return p.LengthSquared() < Epsilon
}

// DistanceToSegmentSquared returns the squared distance from p to the line
// segment (a, b). A degenerate segment is treated as the point a.
func DistanceToSegmentSquared(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 < Epsilon {
		return p.DistanceSquared(a)
	}

	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.DistanceSquared(a)
	case t > 1:
		return p.DistanceSquared(b)
	}
	return p.DistanceSquared(a.Add(ab.Mul(t)))
}

// LineIntersection intersects the lines p0 + s*d0 and p1 + u*d1.
// It returns false when the lines are parallel.
func LineIntersection(p0, d0, p1, d1 Point) (Point, bool) {
	den := d0.Cross(d1)
	if den*den <= Epsilon*d0.LengthSquared()*d1.LengthSquared() {
		return Point{}, false
	}
	s := p1.Sub(p0).Cross(d1) / den
	return p0.Add(d0.Mul(s)), true
}
