package glyph

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/stroker/path"
)

// Face is a go-text font face at a fixed size.
//
// A Face is not safe for concurrent use.
type Face struct {
	face  *font.Face
	size  float64
	scale float64 // pixels per font unit
}

// NewFace parses TrueType or OpenType data and returns a face rendering at
// size pixels per em.
func NewFace(data []byte, size float64) (*Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	upem := face.Upem()
	if upem == 0 {
		upem = 1000
	}
	return &Face{face: face, size: size, scale: size / float64(upem)}, nil
}

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Advance returns the horizontal advance of r in pixels.
func (f *Face) Advance(r rune) (float64, error) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingGlyph, r)
	}
	return float64(f.face.HorizontalAdvance(gid)) * f.scale, nil
}

// FeedRune feeds the outline of r to c with the glyph origin at origin and
// returns its horizontal advance. Like FeedSFNT it emits no BeginPath or
// EndPath. For a bitmap or color glyph it feeds nothing and returns the
// advance with ErrNoOutline.
func (f *Face) FeedRune(r rune, origin path.Point, c path.Consumer) (float64, error) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingGlyph, r)
	}
	outline, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return float64(f.face.HorizontalAdvance(gid)) * f.scale, fmt.Errorf("%w: %q", ErrNoOutline, r)
	}

	sc := f.scale
	// Font units are y-up.
	pt := func(p opentype.SegmentPoint) (float64, float64) {
		return origin.X + float64(p.X)*sc, origin.Y - float64(p.Y)*sc
	}

	open := false
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				c.ClosePath()
			}
			c.MoveTo(pt(s.Args[0]))
			open = true
		case opentype.SegmentOpLineTo:
			c.LineTo(pt(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			x, y := pt(s.Args[1])
			c.QuadTo(cx, cy, x, y)
		case opentype.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			x, y := pt(s.Args[2])
			c.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		c.ClosePath()
	}
	return float64(f.face.HorizontalAdvance(gid)) * sc, nil
}

// FeedText feeds the outlines of s, normalized to NFC, as one path: a single
// BeginPath, every glyph laid out left to right by its advance, then EndPath.
// There is no shaping or kerning. Runes without a glyph advance by nothing
// and are reported after the whole string is fed; glyphs without an outline
// still advance. The first error other than a missing glyph takes precedence.
// It returns the total advance.
func (f *Face) FeedText(s string, origin path.Point, c path.Consumer) (float64, error) {
	return layout(norm.NFC.String(s), origin, c, f.FeedRune)
}

type runeFeeder func(r rune, at path.Point, c path.Consumer) (float64, error)

func layout(s string, origin path.Point, c path.Consumer, feed runeFeeder) (float64, error) {
	var (
		missing []rune
		first   error
	)
	pen := origin

	c.BeginPath()
	for _, r := range s {
		adv, err := feed(r, pen, c)
		switch {
		case errors.Is(err, ErrMissingGlyph):
			missing = append(missing, r)
			continue
		case err != nil && first == nil:
			first = err
		}
		pen.X += adv
	}
	c.EndPath()

	switch {
	case first != nil:
		return pen.X - origin.X, first
	case len(missing) > 0:
		return pen.X - origin.X, fmt.Errorf("%w: %q", ErrMissingGlyph, string(missing))
	}
	return pen.X - origin.X, nil
}
