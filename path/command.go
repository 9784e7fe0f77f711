package path

// Command identifies the kind of a path segment.
type Command uint8

const (
	// MoveToCmd starts a new subpath at its single point.
	MoveToCmd Command = iota
	// LineToCmd draws a straight line to its single point.
	LineToCmd
	// QuadToCmd draws a quadratic Bezier: control point, end point.
	QuadToCmd
	// CubicToCmd draws a cubic Bezier: two control points, end point.
	CubicToCmd
	// CloseCmd closes the current subpath.
	CloseCmd
)

// Arity returns the number of coordinates (not points) a command carries.
// It returns -1 for unknown commands.
func (c Command) Arity() int {
	switch c {
	case MoveToCmd, LineToCmd:
		return 2
	case QuadToCmd:
		return 4
	case CubicToCmd:
		return 6
	case CloseCmd:
		return 0
	default:
		return -1
	}
}

// String returns the SVG path-data letter for the command.
func (c Command) String() string {
	switch c {
	case MoveToCmd:
		return "M"
	case LineToCmd:
		return "L"
	case QuadToCmd:
		return "Q"
	case CubicToCmd:
		return "C"
	case CloseCmd:
		return "Z"
	default:
		return "?"
	}
}
