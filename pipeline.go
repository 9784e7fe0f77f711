package stroker

import (
	"errors"
	"fmt"

	"github.com/gogpu/stroker/dash"
	"github.com/gogpu/stroker/flatten"
	"github.com/gogpu/stroker/outline"
	"github.com/gogpu/stroker/path"
)

// ErrInvalidWidth is returned for a stroke width that is not positive and
// finite.
var ErrInvalidWidth = errors.New("stroker: stroke width must be positive")

// ErrInvalidMiterLimit is returned for a NaN miter limit.
var ErrInvalidMiterLimit = errors.New("stroker: miter limit is not a number")

// Pipeline strokes everything it consumes into a sink. It is the head of a
// chain of stages:
//
//	[flatten] -> [dash] -> outline -> [transform] -> [flatten] -> sink
//
// The bracketed stages are present only when configured. A Pipeline is a
// path.Consumer and may be reused for any number of paths, but not
// concurrently.
type Pipeline struct {
	head   path.Consumer
	stages []string
}

// NewPipeline builds a pipeline stroking with style into sink.
//
// It fails with ErrInvalidWidth or a dash.ErrInvalidPattern for a bad style,
// and with path.ErrUnsupportedSegment when sink does not take the curves the
// outline contains and WithFlattenOutput was not requested.
func NewPipeline(sink path.Consumer, style Stroke, opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := style.Validate(); err != nil {
		return nil, err
	}
	if !o.flattenOutput {
		if acc := path.AcceptedSegments(sink); !acc.Has(path.LineSegments | path.CubicSegments) {
			return nil, fmt.Errorf("stroker: sink rejects curves, use WithFlattenOutput: %w",
				path.ErrUnsupportedSegment)
		}
	}

	p := &Pipeline{}
	c := sink
	if o.flattenOutput {
		c = flatten.New(c, o.toleranceSq)
		p.stages = append(p.stages, "flatten")
	}
	if o.transform != nil {
		c = path.NewTransformer(c, *o.transform)
		p.stages = append(p.stages, "transform")
	}
	c = outline.New(c, outline.Options{
		Radius:          style.Radius(),
		Cap:             style.Cap,
		Join:            style.Join,
		MiterLimit:      style.MiterLimit,
		FlatnessSquared: o.flatnessSq,
	})
	p.stages = append(p.stages, "outline")
	if style.Dash != nil {
		pattern, err := style.Dash.Pattern()
		if err != nil {
			return nil, err
		}
		c = dash.New(c, pattern)
		p.stages = append(p.stages, "dash")
	}
	if o.flattenInput {
		c = flatten.New(c, o.toleranceSq)
		p.stages = append(p.stages, "flatten")
	}
	p.head = c

	// Stages were added back to front.
	for i, j := 0, len(p.stages)-1; i < j; i, j = i+1, j-1 {
		p.stages[i], p.stages[j] = p.stages[j], p.stages[i]
	}
	Logger().Debug("stroker: pipeline built", "stages", p.stages, "width", style.Width)
	return p, nil
}

// StrokePath returns the fill outline of p stroked with style.
func StrokePath(p *path.Path, style Stroke, opts ...Option) (*path.Path, error) {
	c := path.NewCollector()
	pl, err := NewPipeline(c, style, opts...)
	if err != nil {
		return nil, err
	}
	path.Feed(p, pl)
	return c.Path(), nil
}

// Stages returns the names of the configured stages in data-flow order.
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.stages))
	copy(out, p.stages)
	return out
}

// AcceptedSegments implements path.SegmentAcceptor.
func (p *Pipeline) AcceptedSegments() path.Segments { return path.AllSegments }

// BeginPath implements path.Consumer.
func (p *Pipeline) BeginPath() { p.head.BeginPath() }

// MoveTo implements path.Consumer.
func (p *Pipeline) MoveTo(x, y float64) { p.head.MoveTo(x, y) }

// LineTo implements path.Consumer.
func (p *Pipeline) LineTo(x, y float64) { p.head.LineTo(x, y) }

// QuadTo implements path.Consumer.
func (p *Pipeline) QuadTo(cx, cy, x, y float64) { p.head.QuadTo(cx, cy, x, y) }

// CubicTo implements path.Consumer.
func (p *Pipeline) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.head.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath implements path.Consumer.
func (p *Pipeline) ClosePath() { p.head.ClosePath() }

// EndPath implements path.Consumer.
func (p *Pipeline) EndPath() { p.head.EndPath() }
