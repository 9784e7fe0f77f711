// Package glyph feeds font glyph outlines into path consumers, so text can be
// stroked like any other path.
//
// Two font backends are supported: golang.org/x/image/font/sfnt through
// FeedSFNT, and go-text/typesetting through Face. Both produce coordinates
// in the y-down convention of package path, with the glyph origin on the
// baseline at the given point.
package glyph

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/stroker/path"
)

var (
	// ErrMissingGlyph is returned when the font has no glyph for a rune.
	ErrMissingGlyph = errors.New("glyph: no glyph for rune")

	// ErrNoOutline is returned for glyphs stored as bitmaps or SVG documents.
	ErrNoOutline = errors.New("glyph: glyph has no vector outline")
)

// FeedSFNT feeds the outline of r in f at ppem pixels per em to c, with the
// glyph origin at origin. Each contour becomes a closed subpath. The calls
// are not wrapped in BeginPath and EndPath, so several glyphs can share one
// path. It returns the unhinted horizontal advance in pixels.
func FeedSFNT(f *sfnt.Font, r rune, ppem fixed.Int26_6, origin path.Point, c path.Consumer) (float64, error) {
	var buf sfnt.Buffer

	gi, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph: index %q: %w", r, err)
	}
	if gi == 0 {
		return 0, fmt.Errorf("%w %q", ErrMissingGlyph, r)
	}

	segments, err := f.LoadGlyph(&buf, gi, ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return 0, fmt.Errorf("%w: %q", ErrNoOutline, r)
		}
		return 0, fmt.Errorf("glyph: load %q: %w", r, err)
	}

	// sfnt segments are already y-down.
	pt := func(p fixed.Point26_6) (float64, float64) {
		return origin.X + fixedToFloat64(p.X), origin.Y + fixedToFloat64(p.Y)
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				c.ClosePath()
			}
			c.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			c.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			c.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			c.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		c.ClosePath()
	}

	advance, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph: advance %q: %w", r, err)
	}
	return fixedToFloat64(advance), nil
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
