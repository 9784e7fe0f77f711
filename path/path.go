// Package path implements the appendable path model and the consumer
// protocol that every stroking stage implements and drives.
//
// A Path stores its segments as two parallel slices: one Command per segment
// and a flat slice of coordinates, each command consuming exactly its arity.
// Stages never see a Path directly; they receive segments through the
// Consumer interface, either from Feed or from an upstream stage.
package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownCommand is returned by Append for a command outside the
	// MoveTo..Close range.
	ErrUnknownCommand = errors.New("path: unknown command")

	// ErrCoordinateCount is returned by Append when the coordinate count does
	// not match the command's arity.
	ErrCoordinateCount = errors.New("path: wrong number of coordinates")
)

// Point is a 2D point in the caller's coordinate space.
type Point struct {
	X, Y float64
}

// Path is an ordered sequence of MoveTo, LineTo, QuadTo, CubicTo and Close
// segments. The zero value is an empty path ready to use.
//
// LineTo, QuadTo and CubicTo without an open subpath implicitly start one at
// the last known position (the origin for an empty path). Close without an
// open subpath does nothing.
type Path struct {
	cmds   []Command
	coords []float64

	start   Point // Starting point of current subpath
	current Point // Current point
	open    bool  // A subpath has been started and not closed
}

// New creates an empty path with room for a typical small shape.
func New() *Path {
	return &Path{
		cmds:   make([]Command, 0, 16),
		coords: make([]float64, 0, 64),
	}
}

// Append adds a segment given as a command and its coordinates.
func (p *Path) Append(cmd Command, coords ...float64) error {
	n := cmd.Arity()
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownCommand, cmd)
	}
	if len(coords) != n {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrCoordinateCount, cmd, n, len(coords))
	}

	switch cmd {
	case MoveToCmd:
		p.MoveTo(coords[0], coords[1])
	case LineToCmd:
		p.LineTo(coords[0], coords[1])
	case QuadToCmd:
		p.QuadTo(coords[0], coords[1], coords[2], coords[3])
	case CubicToCmd:
		p.CubicTo(coords[0], coords[1], coords[2], coords[3], coords[4], coords[5])
	case CloseCmd:
		p.Close()
	}
	return nil
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.coords = append(p.coords, x, y)
	p.start = Point{X: x, Y: y}
	p.current = p.start
	p.open = true
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ensureSubpath()
	p.cmds = append(p.cmds, LineToCmd)
	p.coords = append(p.coords, x, y)
	p.current = Point{X: x, Y: y}
}

// QuadTo draws a quadratic Bezier curve with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureSubpath()
	p.cmds = append(p.cmds, QuadToCmd)
	p.coords = append(p.coords, cx, cy, x, y)
	p.current = Point{X: x, Y: y}
}

// CubicTo draws a cubic Bezier curve with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureSubpath()
	p.cmds = append(p.cmds, CubicToCmd)
	p.coords = append(p.coords, c1x, c1y, c2x, c2y, x, y)
	p.current = Point{X: x, Y: y}
}

// Close closes the current subpath. The current point returns to the
// subpath start.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.cmds = append(p.cmds, CloseCmd)
	p.current = p.start
	p.open = false
}

func (p *Path) ensureSubpath() {
	if !p.open {
		p.MoveTo(p.current.X, p.current.Y)
	}
}

// Clear removes all segments from the path, keeping the allocated storage.
func (p *Path) Clear() {
	p.cmds = p.cmds[:0]
	p.coords = p.coords[:0]
	p.start = Point{}
	p.current = Point{}
	p.open = false
}

// Len returns the number of segments in the path.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Commands returns the command sequence. The slice aliases the path storage.
func (p *Path) Commands() []Command {
	return p.cmds
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		cmds:    make([]Command, len(p.cmds)),
		coords:  make([]float64, len(p.coords)),
		start:   p.start,
		current: p.current,
		open:    p.open,
	}
	copy(result.cmds, p.cmds)
	copy(result.coords, p.coords)
	return result
}

// String returns the path as SVG-style path data with absolute commands.
func (p *Path) String() string {
	var sb strings.Builder
	it := p.Iter()
	for it.Next() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(it.Command().String())
		for _, v := range it.Coords() {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return sb.String()
}
