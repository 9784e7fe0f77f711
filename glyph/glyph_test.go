package glyph

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cheekybits/is"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/stroker/outline"
	"github.com/gogpu/stroker/path"
)

func closes(p *path.Path) int {
	n := 0
	for _, cmd := range p.Commands() {
		if cmd == path.CloseCmd {
			n++
		}
	}
	return n
}

func bounds(p *path.Path) path.Rect {
	b := path.NewBounds()
	path.Feed(p, b)
	return b.Rect()
}

func TestFeedSFNT(t *testing.T) {
	is := is.New(t)

	f, err := sfnt.Parse(goregular.TTF)
	is.NoErr(err)

	col := path.NewCollector()
	adv, err := FeedSFNT(f, 'O', fixed.I(64), path.Point{X: 10, Y: 100}, col)
	is.NoErr(err)
	is.True(adv > 30 && adv < 64)

	p := col.Path()
	is.Equal(closes(p), 2) // outer and inner contour

	r := bounds(p)
	is.True(r.Min.X >= 10)
	is.True(r.Max.X <= 10+adv)
	is.True(r.Max.Y <= 101) // sits on the baseline
	is.True(r.Min.Y < 100-40)
}

func TestFeedSFNTMissing(t *testing.T) {
	is := is.New(t)

	f, err := sfnt.Parse(goregular.TTF)
	is.NoErr(err)

	_, err = FeedSFNT(f, '\U0001F600', fixed.I(16), path.Point{}, path.Discard{})
	is.True(errors.Is(err, ErrMissingGlyph))
}

func TestFeedSFNTSpace(t *testing.T) {
	is := is.New(t)

	f, err := sfnt.Parse(goregular.TTF)
	is.NoErr(err)

	col := path.NewCollector()
	adv, err := FeedSFNT(f, ' ', fixed.I(32), path.Point{}, col)
	is.NoErr(err)
	is.True(adv > 0)
	is.True(col.Path().Empty())
}

func TestFaceMatchesSFNT(t *testing.T) {
	is := is.New(t)

	face, err := NewFace(goregular.TTF, 64)
	is.NoErr(err)
	f, err := sfnt.Parse(goregular.TTF)
	is.NoErr(err)

	for _, r := range "OAg&" {
		a := path.NewCollector()
		advA, err := face.FeedRune(r, path.Point{}, a)
		is.NoErr(err)

		b := path.NewCollector()
		advB, err := FeedSFNT(f, r, fixed.I(64), path.Point{}, b)
		is.NoErr(err)

		is.True(math.Abs(advA-advB) < 0.1)
		is.Equal(closes(a.Path()), closes(b.Path()))

		ra, rb := bounds(a.Path()), bounds(b.Path())
		is.True(math.Abs(ra.Min.X-rb.Min.X) < 0.1)
		is.True(math.Abs(ra.Min.Y-rb.Min.Y) < 0.1)
		is.True(math.Abs(ra.Max.X-rb.Max.X) < 0.1)
		is.True(math.Abs(ra.Max.Y-rb.Max.Y) < 0.1)
	}
}

func TestFeedText(t *testing.T) {
	is := is.New(t)

	face, err := NewFace(goregular.TTF, 32)
	is.NoErr(err)
	is.Equal(face.Size(), 32.0)

	advA, err := face.Advance('A')
	is.NoErr(err)
	advV, err := face.Advance('V')
	is.NoErr(err)

	col := path.NewCollector()
	total, err := face.FeedText("AV", path.Point{}, col)
	is.NoErr(err)
	is.True(math.Abs(total-(advA+advV)) < 1e-9)

	r := bounds(col.Path())
	is.True(r.Max.X > advA) // the V follows the A
}

func TestFeedTextNormalizes(t *testing.T) {
	is := is.New(t)

	face, err := NewFace(goregular.TTF, 32)
	is.NoErr(err)

	composed, err := face.FeedText("\u00e9", path.Point{}, path.Discard{})
	is.NoErr(err)
	decomposed, err := face.FeedText("e\u0301", path.Point{}, path.Discard{})
	is.NoErr(err)
	is.Equal(composed, decomposed)
}

func TestFeedTextMissing(t *testing.T) {
	is := is.New(t)

	face, err := NewFace(goregular.TTF, 32)
	is.NoErr(err)

	col := path.NewCollector()
	_, err = face.FeedText("a\U0001F600b", path.Point{}, col)
	is.True(errors.Is(err, ErrMissingGlyph))
	is.True(!col.Path().Empty())
}

func TestNewFaceInvalid(t *testing.T) {
	is := is.New(t)

	_, err := NewFace([]byte("not a font"), 12)
	is.True(err != nil)
}

func TestStrokeGlyph(t *testing.T) {
	is := is.New(t)

	face, err := NewFace(goregular.TTF, 48)
	is.NoErr(err)

	col := path.NewCollector()
	_, err = face.FeedText("S", path.Point{X: 0, Y: 48}, col)
	is.NoErr(err)

	out := outline.Path(col.Path(), outline.Options{Radius: 1, Join: outline.JoinRound})
	is.True(!out.Empty())

	in, stroked := bounds(col.Path()), bounds(out)
	is.True(stroked.Min.X < in.Min.X)
	is.True(stroked.Max.Y > in.Max.Y)
}

func TestLayoutKeepsNonMissingError(t *testing.T) {
	is := is.New(t)

	feed := func(r rune, _ path.Point, _ path.Consumer) (float64, error) {
		switch r {
		case 'x':
			return 0, fmt.Errorf("%w %q", ErrMissingGlyph, r)
		case 'b':
			return 7, fmt.Errorf("%w: %q", ErrNoOutline, r)
		}
		return 10, nil
	}

	adv, err := layout("axb", path.Point{}, path.Discard{}, feed)
	is.True(errors.Is(err, ErrNoOutline))
	is.True(!errors.Is(err, ErrMissingGlyph))
	is.Equal(adv, 17.0) // bitmap glyphs still advance, missing ones do not

	adv, err = layout("ax", path.Point{}, path.Discard{}, feed)
	is.True(errors.Is(err, ErrMissingGlyph))
	is.Equal(adv, 10.0)
}
