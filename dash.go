package stroker

import (
	"math"
	"slices"

	"github.com/gogpu/stroker/dash"
)

// Dash is a dash pattern in path units: Array alternates drawn and skipped
// lengths, and Offset is how far into the pattern each subpath starts.
//
// An odd trailing length has no gap to pair with and is ignored, so
// [5, 3, 2] dashes like [5, 3].
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash returns a dash pattern with the absolute values of lengths, or nil
// when no length is positive:
//
//	NewDash(5, 3)        // 5 on, 3 off
//	NewDash(10, 5, 2, 5) // 10 on, 5 off, 2 on, 5 off
func NewDash(lengths ...float64) *Dash {
	if !slices.ContainsFunc(lengths, func(l float64) bool { return l > 0 }) {
		return nil
	}
	d := &Dash{Array: make([]float64, len(lengths))}
	for i, l := range lengths {
		d.Array[i] = math.Abs(l)
	}
	return d
}

// WithOffset returns a copy of d starting offset units into the pattern.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	c := d.Clone()
	c.Offset = offset
	return c
}

func (d *Dash) effectiveArray() []float64 {
	if d == nil {
		return nil
	}
	return d.Array[:len(d.Array)&^1]
}

// PatternLength is the length of one pattern cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed reports whether d has at least one on/off pair with a positive
// length. A nil Dash is solid.
func (d *Dash) IsDashed() bool {
	return slices.ContainsFunc(d.effectiveArray(), func(l float64) bool { return l > 0 })
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: slices.Clone(d.Array), Offset: d.Offset}
}

// Equal reports whether d and o describe the same pattern. Two nil dashes
// are equal.
func (d *Dash) Equal(o *Dash) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Offset == o.Offset && slices.Equal(d.Array, o.Array)
}

// NormalizedOffset is Offset wrapped into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	cycle := d.PatternLength()
	if cycle <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, cycle)
	if off < 0 {
		off += cycle
	}
	return off
}

// Scale returns d with every length and the offset multiplied by factor.
// Non-positive factors return d unchanged. Dashing happens in path space,
// so a pattern meant in device units must be scaled by the inverse of the
// transform's scale.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	c := d.Clone()
	for i := range c.Array {
		c.Array[i] *= factor
	}
	c.Offset *= factor
	return c
}

// Pattern validates d and returns the pattern the dash stage walks.
// The error wraps dash.ErrInvalidPattern.
func (d *Dash) Pattern() (*dash.Pattern, error) {
	if d == nil {
		return dash.NewPattern(nil, 0)
	}
	return dash.NewPattern(d.Array, d.Offset)
}
