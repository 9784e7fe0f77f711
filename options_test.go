package stroker

import (
	"testing"

	mt "github.com/rustyoz/Mtransform"

	"github.com/gogpu/stroker/flatten"
	"github.com/gogpu/stroker/outline"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.toleranceSq != flatten.DefaultToleranceSquared {
		t.Errorf("toleranceSq = %v, want %v", o.toleranceSq, flatten.DefaultToleranceSquared)
	}
	if o.flatnessSq != outline.DefaultFlatnessSquared {
		t.Errorf("flatnessSq = %v, want %v", o.flatnessSq, outline.DefaultFlatnessSquared)
	}
	if o.flattenInput || o.flattenOutput || o.transform != nil {
		t.Errorf("unexpected defaults: %+v", o)
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	m := mt.Identity()
	for _, opt := range []Option{
		WithTolerance(0.5),
		WithFlatness(0.2),
		WithFlattenInput(true),
		WithFlattenOutput(true),
		WithTransform(m),
	} {
		opt(&o)
	}

	if o.toleranceSq != 0.25 {
		t.Errorf("toleranceSq = %v, want 0.25", o.toleranceSq)
	}
	if o.flatnessSq < 0.04-1e-15 || o.flatnessSq > 0.04+1e-15 {
		t.Errorf("flatnessSq = %v, want 0.04", o.flatnessSq)
	}
	if !o.flattenInput || !o.flattenOutput {
		t.Error("flatten options not applied")
	}
	if o.transform == nil {
		t.Error("WithTransform not applied")
	}
}

func TestOptionsIgnoreNonPositive(t *testing.T) {
	o := defaultOptions()
	WithTolerance(0)(&o)
	WithTolerance(-1)(&o)
	WithFlatness(-3)(&o)
	if o != defaultOptions() {
		t.Errorf("non-positive values changed options: %+v", o)
	}
}
