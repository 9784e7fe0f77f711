package outline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when a cap or join name cannot be parsed.
var ErrUnknownStyle = errors.New("outline: unknown style name")

// Cap specifies the shape at the two ends of an open subpath.
type Cap int

const (
	// CapButt ends the stroke flat at the end point.
	CapButt Cap = iota
	// CapRound ends the stroke with a half circle.
	CapRound
	// CapSquare extends the stroke by half its width before ending it flat.
	CapSquare
)

// String returns the lower-case name of the cap.
func (c Cap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("Cap(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Cap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cap) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "butt":
		*c = CapButt
	case "round":
		*c = CapRound
	case "square":
		*c = CapSquare
	default:
		return fmt.Errorf("%w: cap %q", ErrUnknownStyle, text)
	}
	return nil
}

// Join specifies the shape where two segments meet.
type Join int

const (
	// JoinMiter extends the outer edges to their intersection.
	JoinMiter Join = iota
	// JoinRound connects the outer edges with a circular arc.
	JoinRound
	// JoinBevel connects the outer edges with a straight line.
	JoinBevel
)

// String returns the lower-case name of the join.
func (j Join) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("Join(%d)", int(j))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (j Join) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *Join) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "miter":
		*j = JoinMiter
	case "round":
		*j = JoinRound
	case "bevel":
		*j = JoinBevel
	default:
		return fmt.Errorf("%w: join %q", ErrUnknownStyle, text)
	}
	return nil
}

// DefaultFlatnessSquared is used when Options.FlatnessSquared is not positive.
const DefaultFlatnessSquared = 0.01

// MaxDepth bounds the subdivision of a curve before offsetting.
const MaxDepth = 20

// Options configures an Outliner.
type Options struct {
	// Radius is half the stroke width. It must be positive.
	Radius float64

	Cap  Cap
	Join Join

	// MiterLimit is the largest allowed ratio of miter length to Radius.
	// Joins beyond it, or any miter join when the limit is not positive, are
	// clamped to MiterLimit*Radius.
	MiterLimit float64

	// FlatnessSquared is the squared distance below which offset curves are
	// accepted and join end points are treated as coincident.
	FlatnessSquared float64
}

func (o Options) flatnessSquared() float64 {
	if o.FlatnessSquared > 0 {
		return o.FlatnessSquared
	}
	return DefaultFlatnessSquared
}
