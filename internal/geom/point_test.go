package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Perp(); got != Pt(-4, 3) {
		t.Errorf("Perp() = %v, want (-4, 3)", got)
	}
	if got := p.Cross(Pt(1, 0)); got != -4 {
		t.Errorf("Cross() = %v, want -4", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 20), 0.25); got != Pt(2.5, 5) {
		t.Errorf("Lerp() = %v, want (2.5, 5)", got)
	}
	if got := Pt(0, 0).Normalize(); got != (Point{}) {
		t.Errorf("Normalize() of zero = %v, want zero", got)
	}
}

func TestDistanceToSegmentSquared(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"above middle", Pt(5, 3), Pt(0, 0), Pt(10, 0), 9},
		{"before start", Pt(-3, 4), Pt(0, 0), Pt(10, 0), 25},
		{"after end", Pt(13, 4), Pt(0, 0), Pt(10, 0), 25},
		{"degenerate segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceToSegmentSquared(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DistanceToSegmentSquared() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineIntersection(t *testing.T) {
	p, ok := LineIntersection(Pt(0, 1), Pt(1, 0), Pt(11, 0), Pt(0, 1))
	if !ok {
		t.Fatal("expected intersection")
	}
	if p != Pt(11, 1) {
		t.Errorf("intersection = %v, want (11, 1)", p)
	}

	if _, ok := LineIntersection(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(2, 0)); ok {
		t.Error("parallel lines should not intersect")
	}
}
