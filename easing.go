package easing

import (
	"errors"
	"iter"
)

// ErrInvalidParameter is returned by the Validate methods of curves whose
// parameters don't describe a well-formed timing function.
var ErrInvalidParameter = errors.New("invalid timing function parameter")

// Curve describes timing functions.
type Curve interface {
	// Eval maps the input progress x, generally in the range [0, 1], to the
	// output progress.
	Eval(x float64) float64
}

var (
	_ Curve = Linear{}
	_ Curve = Func(nil)
)

// The predefined cubic Bézier timing functions.
var (
	Ease      = CubicBezier{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}
	EaseIn    = CubicBezier{X1: 0.42, Y1: 0, X2: 1, Y2: 1}
	EaseOut   = CubicBezier{X1: 0, Y1: 0, X2: 0.58, Y2: 1}
	EaseInOut = CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}
)

// Linear is the identity timing function.
//
// Unlike cubic-bezier(0, 0, 1, 1), it is exact.
type Linear struct{}

// Eval implements [Curve].
func (Linear) Eval(x float64) float64 { return x }

func (Linear) String() string { return "linear" }

// Func is an adapter for using ordinary functions as curves. For example:
//
//	Func(func(x float64) float64 { return x * x })
type Func func(x float64) float64

// Eval implements [Curve].
func (fn Func) Eval(x float64) float64 {
	return fn(x)
}

// Sample returns an iterator over n+1 evenly spaced samples of c, starting at
// x = 0 and ending at x = 1. Values of n less than 1 are treated as 1.
func Sample(c Curve, n int) iter.Seq[Point] {
	n = max(n, 1)
	return func(yield func(Point) bool) {
		for i := range n + 1 {
			x := float64(i) / float64(n)
			if !yield(Pt(x, c.Eval(x))) {
				return
			}
		}
	}
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
