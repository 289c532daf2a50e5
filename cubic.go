package easing

import (
	"fmt"
	"sort"
)

// MaxExtrema is the maximum number of extrema reported by [CubicBez.Extrema].
const MaxExtrema = 4

// CubicBez is a cubic Bézier curve in the plane.
//
// Timing functions use the special case anchored at (0, 0) and (1, 1), see
// [CubicBezier.Bez].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez{%s, %s, %s, %s}", c.P0, c.P1, c.P2, c.P3)
}

// Eval evaluates the curve at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Extrema returns the parameters in (0, 1) at which either coordinate of the
// curve has a local extremum, in increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	xs, n := extrema(d0.X, d1.X, d2.X)
	outN += copy(out[outN:], xs[:n])
	ys, n := extrema(d0.Y, d1.Y, d2.Y)
	outN += copy(out[outN:], ys[:n])
	sort.Float64s(out[:outN])
	return out, outN
}

// extrema returns the parameters in (0, 1) at which one coordinate of a cubic
// Bézier has zero derivative. d0, d1 and d2 are the differences between
// successive control points in that coordinate.
func extrema(d0, d1, d2 float64) ([2]float64, int) {
	var out [2]float64
	var outN int
	a := d0 - 2*d1 + d2
	b := 2 * (d1 - d0)
	roots, n := SolveQuadratic(d0, b, a)
	for _, t := range roots[:n] {
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	return out, outN
}
