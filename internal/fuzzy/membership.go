// Package fuzzy implements a small Mamdani fuzzy inference system:
// triangular membership functions over sampled universes, min-AND rule
// firing, min implication, max aggregation, and centroid
// defuzzification. Models are built once, frozen, and shared read-only.
package fuzzy

import "fmt"

// #region triangle

// Triangle is a piecewise-linear triangular membership function defined by
// three breakpoints a <= b <= c: degree 0 at and outside [a, c], 1 at b,
// linear in between. The degenerate case a == b == c is a unit spike that
// is 1 exactly at b and 0 everywhere else (used for binary terms).
type Triangle struct {
	a, b, c float64
}

// NewTriangle validates the breakpoints and returns the membership function.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if a > b || b > c {
		return Triangle{}, fmt.Errorf("triangle breakpoints must satisfy a <= b <= c, got (%g, %g, %g)", a, b, c)
	}
	return Triangle{a: a, b: b, c: c}, nil
}

// Breakpoints returns the a, b, c breakpoints.
func (t Triangle) Breakpoints() (a, b, c float64) {
	return t.a, t.b, t.c
}

// Degree returns the membership degree of x in [0, 1].
func (t Triangle) Degree(x float64) float64 {
	switch {
	case x == t.b:
		return 1
	case x <= t.a || x >= t.c:
		return 0
	case x < t.b:
		return (x - t.a) / (t.b - t.a)
	default:
		return (t.c - x) / (t.c - t.b)
	}
}

// #endregion triangle
