package path

import "errors"

// ErrUnsupportedSegment reports a segment kind reaching a consumer that
// declared it cannot handle it. It always indicates a misconfigured pipeline.
var ErrUnsupportedSegment = errors.New("path: unsupported segment type")

// Consumer is the push-style sink every pipeline stage implements.
//
// A producer calls BeginPath once, then any sequence of MoveTo, LineTo,
// QuadTo, CubicTo and ClosePath, and finally EndPath. Stages implement
// Consumer for their input and drive another Consumer with their output.
type Consumer interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	EndPath()
}

// Segments is a set of drawable segment kinds.
type Segments uint8

const (
	// LineSegments is the LineTo segment kind.
	LineSegments Segments = 1 << iota
	// QuadSegments is the QuadTo segment kind.
	QuadSegments
	// CubicSegments is the CubicTo segment kind.
	CubicSegments

	// AllSegments accepts every segment kind.
	AllSegments = LineSegments | QuadSegments | CubicSegments
)

// Has reports whether s contains every kind in k.
func (s Segments) Has(k Segments) bool {
	return s&k == k
}

// SegmentAcceptor is implemented by consumers that only handle some segment
// kinds. Consumers that do not implement it accept everything.
type SegmentAcceptor interface {
	AcceptedSegments() Segments
}

// AcceptedSegments reports which segment kinds c accepts.
func AcceptedSegments(c Consumer) Segments {
	if a, ok := c.(SegmentAcceptor); ok {
		return a.AcceptedSegments()
	}
	return AllSegments
}

// Feed replays p into c, wrapped in BeginPath and EndPath.
func Feed(p *Path, c Consumer) {
	c.BeginPath()
	FeedSegments(p, c)
	c.EndPath()
}

// FeedSegments replays p's segments into c without BeginPath or EndPath, so
// several paths can be streamed into one consumer pass.
func FeedSegments(p *Path, c Consumer) {
	it := p.Iter()
	for it.Next() {
		v := it.Coords()
		switch it.Command() {
		case MoveToCmd:
			c.MoveTo(v[0], v[1])
		case LineToCmd:
			c.LineTo(v[0], v[1])
		case QuadToCmd:
			c.QuadTo(v[0], v[1], v[2], v[3])
		case CubicToCmd:
			c.CubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
		case CloseCmd:
			c.ClosePath()
		}
	}
}
