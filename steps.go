package easing

import (
	"fmt"
	"iter"
	"math"
)

var _ Curve = Steps{}

// StepPosition selects where in each interval a [Steps] curve jumps.
type StepPosition int

const (
	// JumpEnd jumps at the end of each interval. The output starts at 0 and
	// reaches 1 only at x = 1.
	JumpEnd StepPosition = iota
	// JumpStart jumps at the start of each interval. The first jump has
	// already happened at x = 0.
	JumpStart
)

func (pos StepPosition) String() string {
	switch pos {
	case JumpEnd:
		return "end"
	case JumpStart:
		return "start"
	default:
		return fmt.Sprintf("StepPosition(%d)", int(pos))
	}
}

// Steps is a timing function that divides the input into N equal intervals and
// holds the output constant within each of them.
//
// N should be positive. Other values don't panic, but the output is
// meaningless, usually NaN or ±Inf.
type Steps struct {
	N        int
	Position StepPosition
}

// StepEnd returns the timing function steps(n, end), floor(x·n) / n.
func StepEnd(n int) Steps {
	return Steps{N: n, Position: JumpEnd}
}

// StepStart returns the timing function steps(n, start),
// min(floor(x·n + 1) / n, 1).
func StepStart(n int) Steps {
	return Steps{N: n, Position: JumpStart}
}

// Eval implements [Curve].
//
// A JumpEnd curve isn't clamped and extrapolates for inputs outside of
// [0, 1]. A JumpStart curve is clamped to at most 1, but not from below.
// Unknown positions are treated like JumpEnd.
func (s Steps) Eval(x float64) float64 {
	n := float64(s.N)
	switch s.Position {
	case JumpStart:
		// The conversion keeps x·n + 1 from being fused.
		return min(math.Floor(float64(x*n)+1.0)/n, 1.0)
	default:
		return math.Floor(x*n) / n
	}
}

// Validate returns an error wrapping [ErrInvalidParameter] if the step count
// isn't positive or the position is unknown.
func (s Steps) Validate() error {
	if s.N < 1 {
		return fmt.Errorf("%w: step count %d is not positive", ErrInvalidParameter, s.N)
	}
	if s.Position != JumpEnd && s.Position != JumpStart {
		return fmt.Errorf("%w: unknown step position %v", ErrInvalidParameter, s.Position)
	}
	return nil
}

func (s Steps) String() string {
	return fmt.Sprintf("steps(%d, %s)", s.N, s.Position)
}

// corners returns an iterator over the corners of the staircase in the unit
// square, starting at (0, 0) and ending at (1, 1).
func (s Steps) corners() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !yield(Pt(0, 0)) {
			return
		}
		n := float64(s.N)
		for i := 1; i <= s.N; i++ {
			prev := float64(i-1) / n
			cur := float64(i) / n
			var knee Point
			if s.Position == JumpStart {
				knee = Pt(prev, cur)
			} else {
				knee = Pt(cur, prev)
			}
			if !yield(knee) || !yield(Pt(cur, cur)) {
				return
			}
		}
	}
}
