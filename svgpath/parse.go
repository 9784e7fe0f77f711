// Package svgpath reads and writes SVG path data, the mini-language of the
// d attribute of an SVG path element.
//
// Parse streams the commands of a path data string into any path.Consumer,
// so SVG shapes can be stroked without building an intermediate Path.
// Elliptical arcs (A and a) are not supported.
package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"

	"github.com/gogpu/stroker/path"
)

var (
	// ErrSyntax is returned for malformed path data.
	ErrSyntax = errors.New("svgpath: syntax error")

	// ErrUnsupportedCommand is returned for valid commands this package does
	// not implement.
	ErrUnsupportedCommand = errors.New("svgpath: unsupported command")
)

// arity is the number of coordinates each command consumes per repetition.
var arity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'Q': 4, 'T': 2, 'C': 6, 'S': 4,
	'Z': 0,
}

type parser struct {
	lex *gl.Lexer
	c   path.Consumer

	x, y   float64 // current point
	sx, sy float64 // subpath start
	cx, cy float64 // last control point, for S and T
	last   byte    // last command, upper case
	args   [6]float64

	want, seen int // token bytes in the input, token bytes read
}

// Parse reads path data d and feeds it to c, wrapped in BeginPath and
// EndPath. On error c has received the commands before the offending one
// but no EndPath.
func Parse(d string, c path.Consumer) error {
	src, want, err := normalize(d)
	if err != nil {
		return err
	}
	l, items := gl.Lex("d", src)
	// The lexer goroutine exits only once its channel is read to the end.
	defer func() {
		for range items {
		}
	}()
	p := &parser{lex: l, c: c, want: want}

	c.BeginPath()
	if err := p.run(); err != nil {
		return err
	}
	c.EndPath()
	return nil
}

// ParsePath reads path data d into a new Path.
func ParsePath(d string) (*path.Path, error) {
	c := path.NewCollector()
	if err := Parse(d, c); err != nil {
		return nil, err
	}
	return c.Path(), nil
}

func (p *parser) run() error {
	for {
		p.skipSeparators()
		i := p.lex.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			if p.seen != p.want {
				return fmt.Errorf("%w: unreadable input after byte %d", ErrSyntax, p.seen)
			}
			return nil
		case gl.ItemError:
			return fmt.Errorf("%w: %s", ErrSyntax, i.Value)
		case gl.ItemLetter, gl.ItemWord:
			p.seen += len(i.Value)
			// Adjacent letters arrive as one token, as in "zM". Only the
			// last of them may take arguments.
			for k := 0; k < len(i.Value); k++ {
				letter := i.Value[k : k+1]
				if k < len(i.Value)-1 && arity[strings.ToUpper(letter)[0]] > 0 {
					return fmt.Errorf("%w: %s without arguments", ErrSyntax, letter)
				}
				if err := p.command(letter); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: unexpected %q, want a command letter", ErrSyntax, i.Value)
		}
	}
}

func (p *parser) command(letter string) error {
	cmd := strings.ToUpper(letter)[0]
	rel := letter[0] != cmd

	if cmd == 'A' {
		return fmt.Errorf("%w: %s (elliptical arc)", ErrUnsupportedCommand, letter)
	}
	n, ok := arity[cmd]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrSyntax, letter)
	}
	if cmd == 'Z' {
		p.c.ClosePath()
		p.x, p.y = p.sx, p.sy
		p.last = 'Z'
		return nil
	}

	// The first group is required, further groups repeat the command.
	for first := true; first || p.more(); first = false {
		if err := p.numbers(p.args[:n]); err != nil {
			return fmt.Errorf("%s: %w", letter, err)
		}
		if rel {
			p.relative(cmd, p.args[:n])
		}
		p.emit(cmd, first)
	}
	return nil
}

// relative converts the arguments of a relative command to absolute.
func (p *parser) relative(cmd byte, a []float64) {
	switch cmd {
	case 'H':
		a[0] += p.x
	case 'V':
		a[0] += p.y
	default:
		for i := 0; i < len(a); i += 2 {
			a[i] += p.x
			a[i+1] += p.y
		}
	}
}

func (p *parser) emit(cmd byte, first bool) {
	a := p.args
	switch cmd {
	case 'M':
		if first {
			p.c.MoveTo(a[0], a[1])
			p.sx, p.sy = a[0], a[1]
		} else {
			// Extra pairs after a moveto are implicit linetos.
			p.c.LineTo(a[0], a[1])
			cmd = 'L'
		}
		p.x, p.y = a[0], a[1]
	case 'L':
		p.c.LineTo(a[0], a[1])
		p.x, p.y = a[0], a[1]
	case 'H':
		p.c.LineTo(a[0], p.y)
		p.x = a[0]
	case 'V':
		p.c.LineTo(p.x, a[0])
		p.y = a[0]
	case 'Q':
		p.c.QuadTo(a[0], a[1], a[2], a[3])
		p.cx, p.cy = a[0], a[1]
		p.x, p.y = a[2], a[3]
	case 'T':
		cx, cy := p.reflect('Q', 'T')
		p.c.QuadTo(cx, cy, a[0], a[1])
		p.cx, p.cy = cx, cy
		p.x, p.y = a[0], a[1]
	case 'C':
		p.c.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		p.cx, p.cy = a[2], a[3]
		p.x, p.y = a[4], a[5]
	case 'S':
		c1x, c1y := p.reflect('C', 'S')
		p.c.CubicTo(c1x, c1y, a[0], a[1], a[2], a[3])
		p.cx, p.cy = a[0], a[1]
		p.x, p.y = a[2], a[3]
	}
	p.last = cmd
}

// reflect returns the reflection of the last control point about the current
// point if the previous command was one of kinds, else the current point.
func (p *parser) reflect(kinds ...byte) (float64, float64) {
	for _, k := range kinds {
		if p.last == k {
			return 2*p.x - p.cx, 2*p.y - p.cy
		}
	}
	return p.x, p.y
}

func (p *parser) numbers(dst []float64) error {
	for i := range dst {
		p.skipSeparators()
		it := p.lex.NextItem()
		if it.Type != gl.ItemNumber {
			return fmt.Errorf("%w: expected number, got %q", ErrSyntax, it.Value)
		}
		p.seen += len(it.Value)
		v, err := strconv.ParseFloat(it.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		dst[i] = v
	}
	return nil
}

// more reports whether another argument group follows.
func (p *parser) more() bool {
	p.skipSeparators()
	return p.lex.PeekItem().Type == gl.ItemNumber
}

func (p *parser) skipSeparators() {
	p.lex.ConsumeWhiteSpace()
	p.lex.ConsumeComma()
	p.lex.ConsumeWhiteSpace()
}

// normalize rewrites d into the number forms the lexer reads: a decimal point
// that does not follow a digit gets a leading zero, a second point in a number
// starts a new one (".5.5" is two numbers), and exponent markers are lower
// case. It also returns the number of non-separator bytes, and rejects bytes
// that cannot occur in path data.
func normalize(d string) (string, int, error) {
	var b strings.Builder
	b.Grow(len(d) + 8)
	want := 0
	inNum, dot, exp := false, false, false
	var prev byte
	put := func(ch byte) {
		b.WriteByte(ch)
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != ',' {
			want++
		}
		prev = ch
	}

	for i := 0; i < len(d); i++ {
		ch := d[i]
		switch {
		case ch >= '0' && ch <= '9':
			if !inNum {
				inNum, dot, exp = true, false, false
			}
			put(ch)
		case ch == '-' || ch == '+':
			if !(inNum && prev == 'e') {
				inNum, dot, exp = true, false, false
			}
			put(ch)
		case ch == '.':
			switch {
			case inNum && !dot && !exp && isDigit(prev):
			case inNum && !dot && !exp:
				put('0')
			default:
				if inNum {
					put(' ')
				}
				put('0')
				inNum, exp = true, false
			}
			dot = true
			put('.')
		case (ch == 'e' || ch == 'E') && inNum && !exp && (isDigit(prev) || prev == '.'):
			exp = true
			put('e')
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f':
			inNum = false
			put(' ')
		case ch == ',':
			inNum = false
			put(ch)
		case ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z':
			inNum = false
			put(ch)
		default:
			return "", 0, fmt.Errorf("%w: unexpected %q at byte %d", ErrSyntax, rune(ch), i)
		}
	}
	return b.String(), want, nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
