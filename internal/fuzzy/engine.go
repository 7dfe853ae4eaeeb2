package fuzzy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// #region result

// ErrNoRuleFired is returned when the aggregated output membership is
// zero everywhere, which makes the centroid undefined. It is reported
// explicitly so callers can tell it apart from a legitimate low score.
var ErrNoRuleFired = errors.New("no rule fired: aggregated output membership is zero everywhere")

// Clamp records an input that fell outside its variable's universe and
// was bounded before evaluation. The result is an extrapolation.
type Clamp struct {
	Variable string
	Given    float64
	Bound    float64
}

// Result is the per-call evaluation context: the crisp output plus the
// intermediate degrees kept for diagnostics. It is created fresh per
// Evaluate call and never shared.
type Result struct {
	Output      float64
	Clamped     []Clamp
	Strengths   []float64                     // per-rule firing strength, in rule order
	Memberships map[string]map[string]float64 // variable -> term -> degree
}

// #endregion result

// #region evaluate

// Evaluate runs the Mamdani pipeline for one crisp input tuple:
// fuzzification, min-AND firing strengths, min implication, max
// aggregation over the output universe, centroid defuzzification.
// Every input variable must be present in the map.
func (m *Model) Evaluate(inputs map[string]float64) (Result, error) {
	res := Result{
		Strengths:   make([]float64, len(m.rules)),
		Memberships: make(map[string]map[string]float64, len(m.inputs)),
	}

	// Fuzzification. Out-of-universe inputs clamp to the boundary and
	// are surfaced as diagnostics rather than failing the call.
	for _, v := range m.inputs {
		x, ok := inputs[v.name]
		if !ok {
			return Result{}, fmt.Errorf("missing input for variable %q", v.name)
		}
		bounded, clamped := v.universe.Clamp(x)
		if clamped {
			res.Clamped = append(res.Clamped, Clamp{Variable: v.name, Given: x, Bound: bounded})
		}

		degrees := make(map[string]float64, len(v.order))
		for _, term := range v.order {
			degrees[term] = v.terms[term].Degree(bounded)
		}
		res.Memberships[v.name] = degrees
	}

	// Rule firing strengths: fuzzy AND = minimum over antecedent degrees.
	for i, r := range m.rules {
		strength := math.Inf(1)
		for _, cl := range r.when {
			d := res.Memberships[cl.variable.name][cl.term]
			if d < strength {
				strength = d
			}
		}
		res.Strengths[i] = strength
	}

	// Implication clips each consequent at the rule's firing strength;
	// aggregation takes the maximum across rules per output sample point.
	points := m.output.universe.points
	agg := make([]float64, len(points))
	for i, r := range m.rules {
		strength := res.Strengths[i]
		if strength == 0 {
			continue
		}
		for j, p := range points {
			clipped := math.Min(strength, r.then.mf.Degree(p))
			if clipped > agg[j] {
				agg[j] = clipped
			}
		}
	}

	// Centroid defuzzification over the sampled output universe.
	total := floats.Sum(agg)
	if total == 0 {
		return res, ErrNoRuleFired
	}
	res.Output = floats.Dot(points, agg) / total
	return res, nil
}

// #endregion evaluate
