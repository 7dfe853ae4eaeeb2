package fuzzy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// #region universe

// Universe is the ordered, finite set of sample points over which a
// linguistic variable is defined. It is immutable once built; accessors
// hand out copies. Sample points should include every membership
// breakpoint of interest since defuzzification sums over them.
type Universe struct {
	points []float64
}

// NewUniverse validates that the sample points are non-decreasing and
// non-empty. A single-point universe is legal (binary variables).
func NewUniverse(points ...float64) (Universe, error) {
	if len(points) == 0 {
		return Universe{}, fmt.Errorf("universe needs at least one sample point")
	}
	for i := 1; i < len(points); i++ {
		if points[i] < points[i-1] {
			return Universe{}, fmt.Errorf("universe sample points must be non-decreasing, got %g before %g", points[i-1], points[i])
		}
	}
	owned := make([]float64, len(points))
	copy(owned, points)
	return Universe{points: owned}, nil
}

// Min returns the lowest sample point.
func (u Universe) Min() float64 {
	return floats.Min(u.points)
}

// Max returns the highest sample point.
func (u Universe) Max() float64 {
	return floats.Max(u.points)
}

// Points returns a copy of the sample points.
func (u Universe) Points() []float64 {
	out := make([]float64, len(u.points))
	copy(out, u.points)
	return out
}

// Clamp bounds x to [Min, Max] and reports whether bounding was needed.
// Membership functions are undefined outside the declared universe, so
// callers should surface the clamp as a diagnostic.
func (u Universe) Clamp(x float64) (float64, bool) {
	if lo := u.Min(); x < lo {
		return lo, true
	}
	if hi := u.Max(); x > hi {
		return hi, true
	}
	return x, false
}

// #endregion universe
