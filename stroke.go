package stroker

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/gogpu/stroker/outline"
)

// LineCap specifies the shape of line endpoints.
type LineCap = outline.Cap

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt = outline.CapButt
	// LineCapRound specifies a rounded line cap.
	LineCapRound = outline.CapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare = outline.CapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin = outline.Join

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter = outline.JoinMiter
	// LineJoinRound specifies a rounded join.
	LineJoinRound = outline.JoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel = outline.JoinBevel
)

// Stroke is the style of a stroke: the width of the pen, how open ends and
// corners are drawn, and an optional dash pattern.
//
// Stroke is a value. The With* methods return modified copies, so a shared
// style can be specialized without affecting other users. Two strokes with
// the same fields are Equal and have the same Hash.
type Stroke struct {
	// Width is the full width of the stroke, centered on the path. It must
	// be positive and finite.
	Width float64

	// Cap ends open subpaths. Zero value: LineCapButt.
	Cap LineCap

	// Join connects consecutive segments. Zero value: LineJoinMiter.
	Join LineJoin

	// MiterLimit bounds the distance from a corner to its miter tip, in
	// multiples of Width/2. Miters past the limit are cut off flat. Limits of
	// 1 or less turn every miter into a bevel.
	MiterLimit float64

	// Dash, if non-nil, breaks the stroke into dashes before outlining.
	Dash *Dash
}

// DefaultStroke is a solid stroke of width 1 with butt caps and miter joins
// limited to 4.
func DefaultStroke() Stroke {
	return Stroke{Width: 1, MiterLimit: 4}
}

// Radius is the distance from the path to either edge of the stroke.
func (s Stroke) Radius() float64 {
	return s.Width / 2
}

// WithWidth returns s with its width set to w.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns s with cap c.
func (s Stroke) WithCap(c LineCap) Stroke {
	s.Cap = c
	return s
}

// WithJoin returns s with join j.
func (s Stroke) WithJoin(j LineJoin) Stroke {
	s.Join = j
	return s
}

// WithMiterLimit returns s with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns s dashed by a copy of d. A nil d makes the stroke solid.
func (s Stroke) WithDash(d *Dash) Stroke {
	s.Dash = d.Clone()
	return s
}

// WithDashPattern returns s dashed by lengths, alternating drawn and skipped
// distances along the path:
//
//	stroker.DefaultStroke().WithDashPattern(5, 3) // 5 on, 3 off
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset returns s with its dash phase set to offset. It does nothing
// to a solid stroke.
func (s Stroke) WithDashOffset(offset float64) Stroke {
	if s.Dash == nil {
		return s
	}
	s.Dash = s.Dash.WithOffset(offset)
	return s
}

// IsDashed reports whether the stroke has a usable dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}

// Clone returns a copy of s that shares no memory with it.
func (s Stroke) Clone() Stroke {
	s.Dash = s.Dash.Clone()
	return s
}

// Equal reports whether s and o describe the same stroke.
func (s Stroke) Equal(o Stroke) bool {
	return s.Width == o.Width &&
		s.Cap == o.Cap &&
		s.Join == o.Join &&
		s.MiterLimit == o.MiterLimit &&
		s.Dash.Equal(o.Dash)
}

// Hash returns a structural hash of s, consistent with Equal.
func (s Stroke) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v float64) {
		if v == 0 {
			v = 0 // -0 and +0 are Equal
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	put(s.Width)
	put(float64(s.Cap))
	put(float64(s.Join))
	put(s.MiterLimit)
	if s.Dash != nil {
		put(float64(len(s.Dash.Array)))
		for _, l := range s.Dash.Array {
			put(l)
		}
		put(s.Dash.Offset)
	}
	return h.Sum64()
}

// Validate reports ErrInvalidWidth for a width that is not positive and
// finite, ErrInvalidMiterLimit for a NaN miter limit, and wraps dash pattern
// errors. Miter limits of zero or below are valid and always clamp.
func (s Stroke) Validate() error {
	if !(s.Width > 0) || math.IsInf(s.Width, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidWidth, s.Width)
	}
	if math.IsNaN(s.MiterLimit) {
		return ErrInvalidMiterLimit
	}
	if s.Dash != nil {
		if _, err := s.Dash.Pattern(); err != nil {
			return fmt.Errorf("stroker: %w", err)
		}
	}
	return nil
}

// RoundStroke is DefaultStroke with round caps and joins.
func RoundStroke() Stroke {
	return Stroke{Width: 1, Cap: LineCapRound, Join: LineJoinRound, MiterLimit: 4}
}

// SquareStroke is DefaultStroke with square caps.
func SquareStroke() Stroke {
	return DefaultStroke().WithCap(LineCapSquare)
}

// DashedStroke is DefaultStroke dashed by lengths.
func DashedStroke(lengths ...float64) Stroke {
	return DefaultStroke().WithDashPattern(lengths...)
}

// DottedStroke draws round dots of diameter 2 every 4 units: each dash is
// short enough that its round caps make it a dot.
func DottedStroke() Stroke {
	s := RoundStroke().WithWidth(2)
	s.Dash = NewDash(0.1, 3.9)
	return s
}
