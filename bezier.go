package easing

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultIterations is the number of bisection steps used by
// [CubicBezier.Eval] when [CubicBezier.Iterations] isn't set.
//
// Thirty halvings of [0, 1] bound the error of the curve parameter by 2⁻³⁰,
// which is below the precision needed for any animation.
const DefaultIterations = 30

var _ Curve = CubicBezier{}

// CubicBezier is a timing function described by the cubic Bézier curve with the
// control points (0, 0), (X1, Y1), (X2, Y2) and (1, 1).
//
// The curve is only a function of x when X1 and X2 are in [0, 1], which isn't
// enforced.
type CubicBezier struct {
	X1, Y1 float64
	X2, Y2 float64

	// Iterations is the number of bisection steps used when solving for the
	// curve parameter. Values less than 1 select [DefaultIterations].
	Iterations int
}

// NewCubicBezier returns the timing function cubic-bezier(x1, y1, x2, y2).
// It accepts any control points.
func NewCubicBezier(x1, y1, x2, y2 float64) CubicBezier {
	return CubicBezier{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Eval implements [Curve].
//
// Eval(0) is exactly 0 and Eval(1) is exactly 1. A NaN input results in NaN, as
// do NaN control points.
func (cb CubicBezier) Eval(x float64) float64 {
	if x == 0 {
		return 0
	}
	if x == 1 {
		return 1
	}
	if math.IsNaN(x) {
		return x
	}
	return cb.yForT(cb.SolveT(x))
}

// SolveT returns the curve parameter t ∈ [0, 1] at which the curve's x
// coordinate equals x, using [Bisect]. Inputs outside of the curve's range of x
// values result in t being 0 or 1, up to the bisection's resolution.
func (cb CubicBezier) SolveT(x float64) float64 {
	return Bisect(cb.xForT, x, 0, 1, cb.iterations())
}

// At evaluates the curve at parameter t.
func (cb CubicBezier) At(t float64) Point {
	return Pt(cb.xForT(t), cb.yForT(t))
}

// Bez returns the curve as a general cubic Bézier.
func (cb CubicBezier) Bez() CubicBez {
	return CubicBez{
		P0: Pt(0, 0),
		P1: Pt(cb.X1, cb.Y1),
		P2: Pt(cb.X2, cb.Y2),
		P3: Pt(1, 1),
	}
}

// IsMonotonic reports whether both control points have x coordinates in
// [0, 1], which guarantees that the curve's x coordinate is non-decreasing in t
// and thus that the curve is a function of x.
func (cb CubicBezier) IsMonotonic() bool {
	return inUnit(cb.X1) && inUnit(cb.X2)
}

// Validate returns an error wrapping [ErrInvalidParameter] if the curve isn't
// monotonic in x. See [CubicBezier.IsMonotonic].
func (cb CubicBezier) Validate() error {
	if !inUnit(cb.X1) {
		return fmt.Errorf("%w: x1 = %g is not in [0, 1]", ErrInvalidParameter, cb.X1)
	}
	if !inUnit(cb.X2) {
		return fmt.Errorf("%w: x2 = %g is not in [0, 1]", ErrInvalidParameter, cb.X2)
	}
	return nil
}

// OutputRange returns the smallest and largest values the curve takes for
// t ∈ [0, 1]. For monotonic curves that is the range of Eval over [0, 1]. The
// range always includes [0, 1]; it is larger for curves that overshoot.
func (cb CubicBezier) OutputRange() (lo, hi float64) {
	lo, hi = 0, 1
	ex, n := extrema(cb.Y1, cb.Y2-cb.Y1, 1-cb.Y2)
	for _, t := range ex[:n] {
		y := cb.yForT(t)
		lo = min(lo, y)
		hi = max(hi, y)
	}
	return lo, hi
}

func (cb CubicBezier) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", f(cb.X1), f(cb.Y1), f(cb.X2), f(cb.Y2))
}

func (cb CubicBezier) iterations() int {
	if cb.Iterations < 1 {
		return DefaultIterations
	}
	return cb.Iterations
}

func (cb CubicBezier) xForT(t float64) float64 { return bezierCoord(t, cb.X1, cb.X2) }
func (cb CubicBezier) yForT(t float64) float64 { return bezierCoord(t, cb.Y1, cb.Y2) }

// bezierCoord evaluates 3(1-t)²t·c1 + 3(1-t)t²·c2 + t³, one coordinate of a
// cubic Bézier anchored at 0 and 1.
//
// The conversions round every product, which prevents fused multiply-adds.
func bezierCoord(t, c1, c2 float64) float64 {
	omt := 1 - t
	a := float64(3 * omt * omt * t * c1)
	b := float64(3 * omt * t * t * c2)
	c := float64(t * t * t)
	return a + b + c
}
