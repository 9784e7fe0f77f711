package outline

import (
	"github.com/gogpu/stroker/internal/curve"
	"github.com/gogpu/stroker/internal/geom"
)

// offset appends the left offset of c to the loop. Curves whose control
// polygon folds back, or whose offset strays from the true parallel curve by
// more than the flatness, are split in half first.
func (o *Outliner) offset(c curve.Curve, depth int) {
	off := c.Offset(o.opts.Radius)
	if _, ok := c.(curve.Line); ok {
		o.loop = append(o.loop, off)
		return
	}
	if c.SharpTurn() || !o.faithful(c, off) {
		if depth < MaxDepth {
			a, b := c.Subdivide()
			o.offset(a, depth+1)
			o.offset(b, depth+1)
			return
		}
		o.stats.depthHits++
	}
	o.loop = append(o.loop, off)
}

// faithful samples off at t=0.25 and t=0.75 and compares it with the exact
// offset of c at the same parameters. The midpoint is exact by construction.
func (o *Outliner) faithful(c, off curve.Curve) bool {
	for _, t := range [...]float64{0.25, 0.75} {
		head, _ := c.Split(t)
		n := head.EndTangent().Normalize().Perp()
		want := c.Eval(t).Add(n.Mul(o.opts.Radius))
		if off.Eval(t).DistanceSquared(want) > o.flatnessSq {
			return false
		}
	}
	return true
}

// leftTurn reports whether the direction turns counter-clockwise from d1 to
// d2, which puts the left offset on the inside of the turn.
func leftTurn(d1, d2 geom.Point) bool {
	return d1.Cross(d2) > crossEpsilon
}
