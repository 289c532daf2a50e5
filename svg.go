package easing

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// DefaultSamples is the number of line segments [WriteSVG] uses for curves
// that it cannot represent exactly, unless [SVGOptions.Samples] is set.
const DefaultSamples = 64

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int

	// Samples is the number of line segments used to approximate curves
	// other than [CubicBezier], [Steps] and [Linear]. A value of 0 selects
	// [DefaultSamples].
	Samples int
}

// SVG converts a curve to a string of SVG path commands, plotting it over
// x ∈ [0, 1].
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(c Curve, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, c, opts)
	return sb.String()
}

// WriteSVG converts a curve to a string of SVG path commands and writes it to
// w.
//
// Cubic Béziers are written as a single cubic Bézier command, step functions
// and [Linear] as exact polylines. All other curves get sampled with
// [Sample].
//
// Coordinates are those of the curve, with y increasing upwards. SVG's y axis
// points downwards, so the path usually needs to be flipped by the viewer, for
// example with transform="scale(1, -1)".
func WriteSVG(w io.Writer, c Curve, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}

	if cb, ok := c.(CubicBezier); ok {
		writef("M0,0 C%s,%s %s,%s 1,1",
			format(cb.X1), format(cb.Y1),
			format(cb.X2), format(cb.Y2))
		return err
	}

	first := true
	for pt := range polyline(c, opts.Samples) {
		if first {
			writef("M%s,%s", format(pt.X), format(pt.Y))
			first = false
		} else {
			writef(" L%s,%s", format(pt.X), format(pt.Y))
		}
	}
	return err
}

func polyline(c Curve, samples int) iter.Seq[Point] {
	switch c := c.(type) {
	case Linear:
		return func(yield func(Point) bool) {
			_ = yield(Pt(0, 0)) && yield(Pt(1, 1))
		}
	case Steps:
		if c.Validate() == nil {
			return c.corners()
		}
	}
	if samples <= 0 {
		samples = DefaultSamples
	}
	return Sample(c, samples)
}
