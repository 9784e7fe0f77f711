package stroker

import (
	mt "github.com/rustyoz/Mtransform"

	"github.com/gogpu/stroker/flatten"
	"github.com/gogpu/stroker/outline"
)

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Stroke and flatten the outline for a line-only sink
//	p, err := stroker.NewPipeline(sink, style, stroker.WithFlattenOutput(true))
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	toleranceSq   float64
	flatnessSq    float64
	flattenInput  bool
	flattenOutput bool
	transform     *mt.Transform
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		toleranceSq: flatten.DefaultToleranceSquared,
		flatnessSq:  outline.DefaultFlatnessSquared,
	}
}

// WithTolerance sets the largest distance between a curve and the lines that
// replace it when flattening. Non-positive values are ignored.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance > 0 {
			o.toleranceSq = tolerance * tolerance
		}
	}
}

// WithFlatness sets how far an offset curve may stray from the true parallel
// curve before it is split. Non-positive values are ignored.
func WithFlatness(flatness float64) Option {
	return func(o *options) {
		if flatness > 0 {
			o.flatnessSq = flatness * flatness
		}
	}
}

// WithFlattenInput flattens the source path before dashing and stroking.
// Joins then appear between every flattened segment.
func WithFlattenInput(enabled bool) Option {
	return func(o *options) {
		o.flattenInput = enabled
	}
}

// WithFlattenOutput flattens the outline, for sinks that accept lines only.
func WithFlattenOutput(enabled bool) Option {
	return func(o *options) {
		o.flattenOutput = enabled
	}
}

// WithTransform applies m to the outline. The stroke is computed in the
// untransformed space, so a non-uniform scale yields an elliptical pen.
func WithTransform(m mt.Transform) Option {
	return func(o *options) {
		o.transform = &m
	}
}
