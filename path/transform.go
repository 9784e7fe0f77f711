package path

import mt "github.com/rustyoz/Mtransform"

// Transformer is a pipeline stage that applies an affine transform to every
// point before passing it on.
type Transformer struct {
	next Consumer
	m    mt.Transform
}

// NewTransformer creates a stage applying m in front of next.
func NewTransformer(next Consumer, m mt.Transform) *Transformer {
	return &Transformer{next: next, m: m}
}

// Transform returns a new path with m applied to every point of p.
func Transform(p *Path, m mt.Transform) *Path {
	c := NewCollector()
	FeedSegments(p, NewTransformer(c, m))
	return c.Path()
}

// AcceptedSegments reports the kinds accepted downstream; affine maps keep
// segment kinds unchanged.
func (t *Transformer) AcceptedSegments() Segments {
	return AcceptedSegments(t.next)
}

func (t *Transformer) BeginPath() { t.next.BeginPath() }

func (t *Transformer) MoveTo(x, y float64) {
	x, y = t.m.Apply(x, y)
	t.next.MoveTo(x, y)
}

func (t *Transformer) LineTo(x, y float64) {
	x, y = t.m.Apply(x, y)
	t.next.LineTo(x, y)
}

func (t *Transformer) QuadTo(cx, cy, x, y float64) {
	cx, cy = t.m.Apply(cx, cy)
	x, y = t.m.Apply(x, y)
	t.next.QuadTo(cx, cy, x, y)
}

func (t *Transformer) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c1x, c1y = t.m.Apply(c1x, c1y)
	c2x, c2y = t.m.Apply(c2x, c2y)
	x, y = t.m.Apply(x, y)
	t.next.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (t *Transformer) ClosePath() { t.next.ClosePath() }
func (t *Transformer) EndPath()   { t.next.EndPath() }
