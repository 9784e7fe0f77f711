// Package dash splits paths into dashes.
//
// A Pattern holds alternating pen-down and pen-up lengths. The Dasher walks
// each subpath by approximate arc length, cutting segments at pattern
// boundaries and forwarding only the pen-down pieces, each as its own
// subpath. Curve length is measured along the control polygon, so dashes on
// strongly curved segments are approximate.
package dash

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidPattern is returned for patterns without a full down/up pair or
// with non-positive, NaN or infinite entries.
var ErrInvalidPattern = errors.New("dash: invalid pattern")

// Pattern is a validated dash pattern. It is immutable once built.
type Pattern struct {
	lengths []float64
	cum     []float64 // cum[i] = lengths[0] + ... + lengths[i]
	phase   float64   // normalized to [0, Total)
}

// NewPattern validates lengths and builds the cumulative table. A trailing odd
// element is dropped so every dash has a matching gap. phase is the distance
// into the pattern at which each subpath starts; it may be negative.
func NewPattern(lengths []float64, phase float64) (*Pattern, error) {
	n := len(lengths) &^ 1
	if n == 0 {
		return nil, fmt.Errorf("%w: need at least one dash and one gap, got %d lengths",
			ErrInvalidPattern, len(lengths))
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return nil, fmt.Errorf("%w: phase %v", ErrInvalidPattern, phase)
	}

	p := &Pattern{
		lengths: make([]float64, n),
		cum:     make([]float64, n),
	}
	var sum float64
	for i, l := range lengths[:n] {
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("%w: length %d is %v", ErrInvalidPattern, i, l)
		}
		sum += l
		p.lengths[i] = l
		p.cum[i] = sum
	}
	p.phase = p.wrap(phase)
	return p, nil
}

// Lengths returns a copy of the pattern lengths after truncation.
func (p *Pattern) Lengths() []float64 {
	out := make([]float64, len(p.lengths))
	copy(out, p.lengths)
	return out
}

// Phase returns the start offset normalized to [0, Total).
func (p *Pattern) Phase() float64 { return p.phase }

// Total returns the length of one full cycle.
func (p *Pattern) Total() float64 { return p.cum[len(p.cum)-1] }

// DutyCycle returns the pen-down fraction of one cycle.
func (p *Pattern) DutyCycle() float64 {
	var down float64
	for i := 0; i < len(p.lengths); i += 2 {
		down += p.lengths[i]
	}
	return down / p.Total()
}

// Lookup returns the interval containing arc-length position s, taken modulo
// the cycle length, and the distance left until that interval ends. Even
// indices are dashes, odd indices are gaps.
func (p *Pattern) Lookup(s float64) (index int, remaining float64) {
	s = p.wrap(s)
	i := sort.Search(len(p.cum), func(j int) bool { return p.cum[j] > s })
	if i == len(p.cum) {
		// s rounded up to Total.
		return 0, p.lengths[0]
	}
	return i, p.cum[i] - s
}

// Next returns the interval following i and its full length.
func (p *Pattern) Next(i int) (index int, length float64) {
	i++
	if i == len(p.lengths) {
		i = 0
	}
	return i, p.lengths[i]
}

func (p *Pattern) wrap(s float64) float64 {
	s = math.Mod(s, p.Total())
	if s < 0 {
		s += p.Total()
	}
	return s
}
