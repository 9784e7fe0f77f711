package path

import (
	"fmt"
	"math"
)

// Collector is a terminal consumer that records everything it receives into
// a Path.
type Collector struct {
	path *Path
}

// NewCollector creates a collector with an empty path.
func NewCollector() *Collector {
	return &Collector{path: New()}
}

// Path returns the collected path.
func (c *Collector) Path() *Path { return c.path }

func (c *Collector) BeginPath()          {}
func (c *Collector) MoveTo(x, y float64) { c.path.MoveTo(x, y) }
func (c *Collector) LineTo(x, y float64) { c.path.LineTo(x, y) }
func (c *Collector) QuadTo(cx, cy, x, y float64) {
	c.path.QuadTo(cx, cy, x, y)
}
func (c *Collector) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (c *Collector) ClosePath() { c.path.Close() }
func (c *Collector) EndPath()   {}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Bounds is a terminal consumer computing the bounding box of every point it
// receives, control points included.
type Bounds struct {
	rect  Rect
	empty bool
}

// NewBounds creates an empty bounds calculator.
func NewBounds() *Bounds {
	return &Bounds{empty: true}
}

// Rect returns the accumulated bounding box. It is the zero Rect when no
// point was received.
func (b *Bounds) Rect() Rect { return b.rect }

// Empty reports whether no point was received.
func (b *Bounds) Empty() bool { return b.empty }

func (b *Bounds) add(x, y float64) {
	if b.empty {
		b.rect = Rect{Min: Point{x, y}, Max: Point{x, y}}
		b.empty = false
		return
	}
	b.rect.Min.X = math.Min(b.rect.Min.X, x)
	b.rect.Min.Y = math.Min(b.rect.Min.Y, y)
	b.rect.Max.X = math.Max(b.rect.Max.X, x)
	b.rect.Max.Y = math.Max(b.rect.Max.Y, y)
}

func (b *Bounds) BeginPath()          {}
func (b *Bounds) MoveTo(x, y float64) { b.add(x, y) }
func (b *Bounds) LineTo(x, y float64) { b.add(x, y) }
func (b *Bounds) QuadTo(cx, cy, x, y float64) {
	b.add(cx, cy)
	b.add(x, y)
}
func (b *Bounds) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.add(c1x, c1y)
	b.add(c2x, c2y)
	b.add(x, y)
}
func (b *Bounds) ClosePath() {}
func (b *Bounds) EndPath()   {}

// Polygon is one subpath collected by Polyline.
type Polygon struct {
	Points []Point
	Closed bool
}

// Polyline is a terminal consumer for flattened input. It accepts LineTo
// only and panics with ErrUnsupportedSegment when it receives a curve.
type Polyline struct {
	polys []Polygon
}

// NewPolyline creates an empty polyline collector.
func NewPolyline() *Polyline {
	return &Polyline{}
}

// Polygons returns the collected subpaths in order.
func (p *Polyline) Polygons() []Polygon { return p.polys }

// AcceptedSegments implements SegmentAcceptor.
func (p *Polyline) AcceptedSegments() Segments { return LineSegments }

func (p *Polyline) BeginPath() {}

func (p *Polyline) MoveTo(x, y float64) {
	p.polys = append(p.polys, Polygon{Points: []Point{{x, y}}})
}

func (p *Polyline) LineTo(x, y float64) {
	if len(p.polys) == 0 || p.polys[len(p.polys)-1].Closed {
		var start Point
		if n := len(p.polys); n > 0 {
			start = p.polys[n-1].Points[0]
		}
		p.MoveTo(start.X, start.Y)
	}
	last := &p.polys[len(p.polys)-1]
	last.Points = append(last.Points, Point{x, y})
}

func (p *Polyline) QuadTo(_, _, _, _ float64) {
	panic(fmt.Errorf("%w: QuadTo reached a polyline consumer", ErrUnsupportedSegment))
}

func (p *Polyline) CubicTo(_, _, _, _, _, _ float64) {
	panic(fmt.Errorf("%w: CubicTo reached a polyline consumer", ErrUnsupportedSegment))
}

func (p *Polyline) ClosePath() {
	if n := len(p.polys); n > 0 {
		p.polys[n-1].Closed = true
	}
}

func (p *Polyline) EndPath() {}

// Discard is a consumer that drops everything.
type Discard struct{}

func (Discard) BeginPath()                       {}
func (Discard) MoveTo(_, _ float64)              {}
func (Discard) LineTo(_, _ float64)              {}
func (Discard) QuadTo(_, _, _, _ float64)        {}
func (Discard) CubicTo(_, _, _, _, _, _ float64) {}
func (Discard) ClosePath()                       {}
func (Discard) EndPath()                         {}
