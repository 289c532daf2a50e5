package easing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// testCurves are cubic Béziers with control points in the unit square, plus a
// few that overshoot in y.
var testCurves = []CubicBezier{
	Ease,
	EaseIn,
	EaseOut,
	EaseInOut,
	NewCubicBezier(0, 0, 1, 1),
	NewCubicBezier(0, 1, 1, 0),
	NewCubicBezier(1, 0, 0, 1),
	NewCubicBezier(0.1, 0.7, 1.0, 0.1),
	NewCubicBezier(0.68, -0.55, 0.265, 1.55),
	NewCubicBezier(0.5, -0.5, 0.5, 1.5),
}

var approx = cmpopts.EquateApprox(0, 1e-9)
