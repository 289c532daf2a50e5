// Package easing provides timing functions for animations: mappings from the
// progress of an animation, a fraction in [0, 1], to an adjusted progress that
// controls acceleration and deceleration of interpolated values.
//
// All curves are immutable values. Evaluating a curve has no side effects,
// takes a fixed amount of time, and is safe for concurrent use.
//
// # Curves
//
// [Curve] describes timing functions. This package includes the following
// curves:
//   - [CubicBezier], the cubic-bezier() family, including the predefined
//     [Ease], [EaseIn], [EaseOut], and [EaseInOut]
//   - [Steps], staircase functions with jumps at the start or the end of each
//     step (see [StepStart] and [StepEnd])
//   - [Linear], the identity
//
// [Func] adapts ordinary functions.
//
// Curves are meant to be evaluated for x ∈ [0, 1], but every curve is defined
// for other inputs as well, extrapolating with the same formula.
//
// # Cubic Béziers
//
// A cubic Bézier timing function is the curve through (0, 0) and (1, 1) with two
// caller-supplied control points. It is a parametric curve, so evaluating it at
// some x first requires solving x(t) = x for t. This is done with a fixed
// number of bisection steps ([DefaultIterations] unless
// [CubicBezier.Iterations] says otherwise), which makes both the result and the
// cost of an evaluation independent of the input. The end points x = 0 and x = 1
// are special-cased and map exactly to 0 and 1.
//
// Bisection assumes that x(t) is monotonic, which is the case when both control
// points have x coordinates in [0, 1]. This isn't enforced; curves with other
// control points evaluate to something, just not to anything meaningful. Use
// [CubicBezier.Validate] to reject them.
//
// The y coordinates are unconstrained. Curves whose control points leave the
// unit square overshoot; see [CubicBezier.OutputRange].
//
// # Numerical reproducibility
//
// Evaluation is written such that the compiler cannot fuse multiplications and
// additions. Results are therefore identical across architectures, and
// identical to an implementation that rounds every operation, such as one
// running in a JavaScript engine.
//
// # Literature
//
//   - [CSS Easing Functions Level 1]
//   - [A Primer on Bézier Curves]
//
// [CSS Easing Functions Level 1]: https://www.w3.org/TR/css-easing-1/
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package easing
