package fuzzy

import (
	"fmt"
	"math"
)

// Shape names a membership function family.
type Shape string

const (
	// ShapeTriangular is the trimf family
	ShapeTriangular Shape = "trimf"
	// ShapeTrapezoidal is the trapmf family
	ShapeTrapezoidal Shape = "trapmf"
)

// A MembershipFunc maps a crisp value to a degree in [0,1].
// Implementations must be pure and defined on the whole real line.
type MembershipFunc interface {
	Degree(x float64) float64
	Shape() Shape
	// Params returns the breakpoints the function was built from.
	Params() []float64
}

// Triangular is 0 at or outside A and C, 1 at B and linear in between.
// A == B or B == C give a shoulder.
type Triangular struct {
	A, B, C float64
}

var _ MembershipFunc = Triangular{}

// NewTriangular checks a <= b <= c.
func NewTriangular(a, b, c float64) (Triangular, error) {
	if err := checkBreakpoints(a, b, c); err != nil {
		return Triangular{}, err
	}
	return Triangular{A: a, B: b, C: c}, nil
}

// Degree of membership at x
func (t Triangular) Degree(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x == t.B:
		return 1
	case x <= t.A || x >= t.C:
		return 0
	case x < t.B:
		return clamp01((x - t.A) / (t.B - t.A))
	default:
		return clamp01((t.C - x) / (t.C - t.B))
	}
}

// Shape returns ShapeTriangular
func (Triangular) Shape() Shape { return ShapeTriangular }

// Params returns [A, B, C]
func (t Triangular) Params() []float64 { return []float64{t.A, t.B, t.C} }

func (t Triangular) String() string {
	return fmt.Sprintf("trimf[%g %g %g]", t.A, t.B, t.C)
}

// Trapezoidal is 0 at or outside A and D, 1 on [B, C] and linear in between.
type Trapezoidal struct {
	A, B, C, D float64
}

var _ MembershipFunc = Trapezoidal{}

// NewTrapezoidal checks a <= b <= c <= d.
func NewTrapezoidal(a, b, c, d float64) (Trapezoidal, error) {
	if err := checkBreakpoints(a, b, c, d); err != nil {
		return Trapezoidal{}, err
	}
	return Trapezoidal{A: a, B: b, C: c, D: d}, nil
}

// Degree of membership at x
func (t Trapezoidal) Degree(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= t.B && x <= t.C:
		return 1
	case x <= t.A || x >= t.D:
		return 0
	case x < t.B:
		return clamp01((x - t.A) / (t.B - t.A))
	default:
		return clamp01((t.D - x) / (t.D - t.C))
	}
}

// Shape returns ShapeTrapezoidal
func (Trapezoidal) Shape() Shape { return ShapeTrapezoidal }

// Params returns [A, B, C, D]
func (t Trapezoidal) Params() []float64 { return []float64{t.A, t.B, t.C, t.D} }

func (t Trapezoidal) String() string {
	return fmt.Sprintf("trapmf[%g %g %g %g]", t.A, t.B, t.C, t.D)
}

// NewMembershipFunc builds a function of the given shape from its breakpoints.
func NewMembershipFunc(shape Shape, params []float64) (MembershipFunc, error) {
	switch shape {
	case ShapeTriangular:
		if len(params) != 3 {
			return nil, constructionErrorf(ErrInvalidShape, string(shape), "want 3 breakpoints, got %d", len(params))
		}
		return NewTriangular(params[0], params[1], params[2])
	case ShapeTrapezoidal:
		if len(params) != 4 {
			return nil, constructionErrorf(ErrInvalidShape, string(shape), "want 4 breakpoints, got %d", len(params))
		}
		return NewTrapezoidal(params[0], params[1], params[2], params[3])
	default:
		return nil, constructionErrorf(ErrInvalidShape, string(shape), "unknown shape")
	}
}

func checkBreakpoints(points ...float64) error {
	for i, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return constructionErrorf(ErrInvalidShape, "", "non-finite breakpoint %v", p)
		}
		if i > 0 && points[i-1] > p {
			return constructionErrorf(ErrInvalidShape, "", "breakpoints %v not ascending", points)
		}
	}
	return nil
}

func clamp01(d float64) float64 {
	return math.Max(0, math.Min(1, d))
}
