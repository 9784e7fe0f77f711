package outline

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/stroker/flatten"
	"github.com/gogpu/stroker/internal/geom"
	"github.com/gogpu/stroker/internal/logging"
	"github.com/gogpu/stroker/path"
)

// subpath is one loop of an outline: its on-curve points and whether it was
// closed.
type subpath struct {
	points []geom.Point
	closed bool
}

func subpaths(p *path.Path) []subpath {
	var out []subpath
	it := p.Iter()
	for it.Next() {
		v := it.Coords()
		switch it.Command() {
		case path.MoveToCmd:
			out = append(out, subpath{points: []geom.Point{geom.Pt(v[0], v[1])}})
		case path.CloseCmd:
			out[len(out)-1].closed = true
		default:
			n := len(v)
			last := &out[len(out)-1]
			last.points = append(last.points, geom.Pt(v[n-2], v[n-1]))
		}
	}
	return out
}

func square() *path.Path {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	p.Close()
	return p
}

func line(x0, y0, x1, y1 float64) *path.Path {
	p := path.New()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}

// distanceToPolyline returns the distance from q to the nearest edge of pts.
func distanceToPolyline(q geom.Point, pts []geom.Point, closed bool) float64 {
	best := math.Inf(1)
	n := len(pts)
	edges := n - 1
	if closed {
		edges = n
	}
	for i := 0; i < edges; i++ {
		d := geom.DistanceToSegmentSquared(q, pts[i], pts[(i+1)%n])
		best = math.Min(best, d)
	}
	return math.Sqrt(best)
}

func TestOutlineButtLine(t *testing.T) {
	got := Path(line(0, 0, 10, 0), Options{Radius: 1, Cap: CapButt}).String()
	if want := "M 0 1 L 10 1 L 10 -1 L 0 -1 Z"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestOutlineSquareCapLine(t *testing.T) {
	got := Path(line(0, 0, 10, 0), Options{Radius: 1, Cap: CapSquare}).String()
	if want := "M 0 1 L 10 1 L 11 1 L 11 -1 L 10 -1 L 0 -1 L -1 -1 L -1 1 Z"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestOutlineRoundCapLine(t *testing.T) {
	out := Path(line(0, 0, 10, 0), Options{Radius: 1, Cap: CapRound})
	b := path.NewBounds()
	path.Feed(out, flatten.New(b, 1e-6))
	r := b.Rect()

	if math.Abs(r.Min.X+1) > 1e-3 || math.Abs(r.Max.X-11) > 1e-3 {
		t.Errorf("x extent = [%v, %v], want [-1, 11]", r.Min.X, r.Max.X)
	}
	if math.Abs(r.Min.Y+1) > 1e-9 || math.Abs(r.Max.Y-1) > 1e-9 {
		t.Errorf("y extent = [%v, %v], want [-1, 1]", r.Min.Y, r.Max.Y)
	}
}

func TestOutlineSymmetry(t *testing.T) {
	tests := []struct {
		name   string
		d      float64
		radius float64
	}{
		{"short", 1, 0.5},
		{"long", 250, 3},
		{"wide", 4, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Path(line(0, 0, tt.d, 0), Options{Radius: tt.radius})
			b := path.NewBounds()
			path.Feed(out, b)
			if w := b.Rect().Width(); math.Abs(w-tt.d) > 1e-9 {
				t.Errorf("width = %v, want %v", w, tt.d)
			}
			if h := b.Rect().Height(); math.Abs(h-2*tt.radius) > 1e-9 {
				t.Errorf("height = %v, want %v", h, 2*tt.radius)
			}
		})
	}
}

func TestOutlineClosedProducesTwoLoops(t *testing.T) {
	for _, join := range []Join{JoinMiter, JoinRound, JoinBevel} {
		t.Run(join.String(), func(t *testing.T) {
			loops := subpaths(Path(square(), Options{Radius: 1, Join: join, MiterLimit: 4}))
			if len(loops) != 2 {
				t.Fatalf("got %d loops, want 2", len(loops))
			}
			for i, l := range loops {
				if !l.closed {
					t.Errorf("loop %d is not closed", i)
				}
			}
		})
	}
}

func TestOutlineClosure(t *testing.T) {
	p := path.New()
	p.Circle(0, 0, 20)
	p.MoveTo(50, 0)
	p.CubicTo(60, 20, 80, -20, 90, 0)
	p.QuadTo(100, 10, 90, 20)
	p.Close()
	p.RoundedRectangle(-40, -40, 30, 20, 5)

	for _, c := range []Cap{CapButt, CapRound, CapSquare} {
		out := Path(p, Options{Radius: 2, Cap: c, Join: JoinRound})
		for i, l := range subpaths(out) {
			if !l.closed {
				t.Errorf("cap %v: loop %d is not closed", c, i)
			}
		}
	}
}

func TestOutlineMiterSquare(t *testing.T) {
	loops := subpaths(Path(square(), Options{Radius: 1, Join: JoinMiter, MiterLimit: 10}))
	if len(loops) != 2 {
		t.Fatalf("got %d loops, want 2", len(loops))
	}
	sq := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}

	// The outer loop carries four full miters at distance r*sqrt(2).
	outer := loops[1].points
	for _, corner := range []geom.Point{geom.Pt(11, -1), geom.Pt(11, 11), geom.Pt(-1, 11), geom.Pt(-1, -1)} {
		found := false
		for _, p := range outer {
			if p.DistanceSquared(corner) < 1e-18 {
				found = true
			}
		}
		if !found {
			t.Errorf("outer loop %v has no miter apex at %v", outer, corner)
		}
	}
	var maxDist float64
	for _, p := range outer {
		maxDist = math.Max(maxDist, distanceToPolyline(p, sq, true))
	}
	if math.Abs(maxDist-math.Sqrt2) > 1e-9 {
		t.Errorf("max distance from the square = %v, want sqrt(2)", maxDist)
	}

	// The inner loop routes through the square's corners.
	for _, corner := range sq {
		found := false
		for _, p := range loops[0].points {
			if p == corner {
				found = true
			}
		}
		if !found {
			t.Errorf("inner loop does not pass through vertex %v", corner)
		}
	}
}

func TestOutlineMiterClampedSquare(t *testing.T) {
	orig := logging.Logger()
	t.Cleanup(func() { logging.Set(orig) })
	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	loops := subpaths(Path(square(), Options{Radius: 1, Join: JoinMiter, MiterLimit: 1}))
	if len(loops) != 2 {
		t.Fatalf("got %d loops, want 2", len(loops))
	}
	sq := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	outer := loops[1].points
	for _, p := range outer {
		if d := distanceToPolyline(p, sq, true); d > 1+1e-9 {
			t.Errorf("vertex %v is %v from the square, want at most 1", p, d)
		}
	}
	// Four edges and four bevels.
	if len(outer) != 8 {
		t.Errorf("outer loop has %d points, want 8: %v", len(outer), outer)
	}
	if !strings.Contains(buf.String(), "clampedMiters=4") {
		t.Errorf("expected clamp count in debug log, got %q", buf.String())
	}
}

// TestOutlineMiterLimit checks that no join vertex lies farther than
// MiterLimit*Radius from the path vertex, for a range of turn angles.
func TestOutlineMiterLimit(t *testing.T) {
	const r = 1.0
	v := geom.Pt(10, 0)
	for _, deg := range []float64{20, 45, 90, 135, 160, 179} {
		for _, limit := range []float64{-10, math.NaN(), 0, 1, 1.5, 2, 4} {
			a := deg * math.Pi / 180
			p := path.New()
			p.MoveTo(0, 0)
			p.LineTo(v.X, v.Y)
			p.LineTo(v.X+10*math.Cos(a), v.Y-10*math.Sin(a))

			loops := subpaths(Path(p, Options{Radius: r, Join: JoinMiter, MiterLimit: limit}))
			maxLen := r
			if limit > 1 {
				maxLen = limit * r
			}
			for _, q := range loops[0].points {
				d := q.Distance(v)
				if math.IsNaN(d) || d < 5 && d > maxLen+1e-9 {
					t.Errorf("turn %v°, limit %v: vertex %v at %v from the corner, limit %v",
						deg, limit, q, d, maxLen)
				}
			}
		}
	}
}

func TestOutlineRoundJoin(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, -10)

	out := Path(p, Options{Radius: 2, Join: JoinRound})
	pl := path.NewPolyline()
	path.Feed(out, flatten.New(pl, 1e-8))

	src := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, -10)}
	corner := geom.Pt(10, 0)
	var nearArc bool
	for _, poly := range pl.Polygons() {
		for _, q := range poly.Points {
			pt := geom.Pt(q.X, q.Y)
			if d := distanceToPolyline(pt, src, false); d > 2*(1+1e-3) {
				t.Errorf("point %v is %v from the path, want at most 2", pt, d)
			}
			// Bisector of the outer corner.
			if pt.Distance(geom.Pt(10+math.Sqrt2, math.Sqrt2)) < 1e-2 {
				nearArc = true
			}
			if pt.Distance(geom.Pt(12, 2)) < 1e-6 {
				t.Error("round join produced a miter apex")
			}
		}
	}
	if !nearArc {
		t.Errorf("no outline point on the arc around %v", corner)
	}
}

func TestOutlineUTurn(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(0, 0)

	tests := []struct {
		join Join
		maxX float64
	}{
		{JoinMiter, 10 + math.Sqrt(15)}, // clamped at 4r
		{JoinRound, 11},
		{JoinBevel, 10},
	}
	for _, tt := range tests {
		out := Path(p, Options{Radius: 1, Join: tt.join, MiterLimit: 4})
		b := path.NewBounds()
		path.Feed(out, flatten.New(b, 1e-6))
		if got := b.Rect().Max.X; math.Abs(got-tt.maxX) > 1e-3 {
			t.Errorf("%v: U-turn extends to x=%v, want %v", tt.join, got, tt.maxX)
		}
	}
}

func TestOutlineCircleFidelity(t *testing.T) {
	p := path.New()
	p.Circle(0, 0, 20)

	out := Path(p, Options{Radius: 1, FlatnessSquared: 1e-4})
	loops := subpaths(flatten.Path(out, 1e-6))
	if len(loops) != 2 {
		t.Fatalf("got %d loops, want 2", len(loops))
	}
	for i, want := range []float64{19, 21} {
		for _, q := range loops[i].points {
			if d := math.Hypot(q.X, q.Y); math.Abs(d-want) > 0.05 {
				t.Errorf("loop %d: point %v at radius %v, want %v", i, q, d, want)
			}
		}
	}
}

func TestOutlineDots(t *testing.T) {
	tests := []struct {
		cap    Cap
		points int
	}{
		{CapButt, 0},
		{CapRound, 5},
		{CapSquare, 4},
	}
	for _, tt := range tests {
		t.Run(tt.cap.String(), func(t *testing.T) {
			p := path.New()
			p.MoveTo(5, 5)
			p.Close()
			p.MoveTo(20, 20)
			p.LineTo(20, 20)

			loops := subpaths(Path(p, Options{Radius: 2, Cap: tt.cap}))
			if tt.points == 0 {
				if len(loops) != 0 {
					t.Errorf("butt dot produced %d loops", len(loops))
				}
				return
			}
			if len(loops) != 2 {
				t.Fatalf("got %d loops, want 2", len(loops))
			}
			for _, l := range loops {
				if !l.closed || len(l.points) != tt.points {
					t.Errorf("dot = %+v, want closed loop of %d points", l, tt.points)
				}
			}
		})
	}

	// A lone MoveTo draws nothing.
	p := path.New()
	p.MoveTo(1, 1)
	if out := Path(p, Options{Radius: 2, Cap: CapRound}); !out.Empty() {
		t.Errorf("MoveTo alone produced %q", out)
	}
}

func TestOutlineRepeatedClose(t *testing.T) {
	col := path.NewCollector()
	o := New(col, Options{Radius: 1, Cap: CapRound})
	o.BeginPath()
	o.ClosePath() // nothing open yet
	o.MoveTo(0, 0)
	o.LineTo(10, 0)
	o.LineTo(10, 10)
	o.ClosePath()
	o.ClosePath()
	o.EndPath()

	if loops := subpaths(col.Path()); len(loops) != 2 {
		t.Errorf("got %d loops, want 2 for one closed triangle", len(loops))
	}
}

func TestOutlineCurvesStayCurves(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.CubicTo(30, 40, 60, 40, 90, 0)

	out := Path(p, Options{Radius: 3, Cap: CapRound})
	var cubics int
	for _, c := range out.Commands() {
		if c == path.CubicToCmd {
			cubics++
		}
	}
	if cubics < 4 {
		t.Errorf("got %d cubics, want offsets on both sides and two caps", cubics)
	}
}

func TestStyleText(t *testing.T) {
	var c Cap
	if err := c.UnmarshalText([]byte("Square")); err != nil || c != CapSquare {
		t.Errorf("UnmarshalText(Square) = %v, %v", c, err)
	}
	var j Join
	if err := j.UnmarshalText([]byte("bevel")); err != nil || j != JoinBevel {
		t.Errorf("UnmarshalText(bevel) = %v, %v", j, err)
	}
	if err := j.UnmarshalText([]byte("arcs")); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("UnmarshalText(arcs) error = %v, want ErrUnknownStyle", err)
	}
	if b, _ := JoinRound.MarshalText(); string(b) != "round" {
		t.Errorf("MarshalText = %q, want round", b)
	}
	if s := Cap(9).String(); s != "Cap(9)" {
		t.Errorf("String() = %q", s)
	}
}

func BenchmarkOutlineCircle(b *testing.B) {
	p := path.New()
	p.Circle(100, 100, 80)
	opts := Options{Radius: 4, Join: JoinRound, Cap: CapRound}
	for i := 0; i < b.N; i++ {
		path.Feed(p, New(path.Discard{}, opts))
	}
}
