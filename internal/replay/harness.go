package replay

import (
	"errors"
	"math"

	"github.com/danielpatrickdp/mrta-suitability/internal/fuzzy"
	"github.com/danielpatrickdp/mrta-suitability/internal/suitability"
)

// #region types

// Result captures the outcome of replaying one scenario.
type Result struct {
	Name   string
	Got    float64
	Want   float64
	Err    error
	Passed bool
	Reason string
}

// Summary aggregates a replay run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// #endregion types

// #region replay

// Replay evaluates every scenario in order against the model and checks
// each outcome. It operates entirely in memory; a scenario failure or
// evaluation error never stops the run.
func Replay(m *fuzzy.Model, f *Fixture) ([]Result, Summary) {
	results := make([]Result, 0, len(f.Scenarios))
	var sum Summary

	for _, sc := range f.Scenarios {
		score, err := suitability.Evaluate(m, sc.Load, sc.DistanceToTask, sc.TotalDistance, sc.Capability)
		r := Result{Name: sc.Name, Want: sc.Expected, Err: err}

		switch {
		case sc.ExpectError:
			if errors.Is(err, fuzzy.ErrNoRuleFired) {
				r.Passed = true
			} else {
				r.Reason = "expected degenerate-output error"
				r.Got = score.Value
			}
		case err != nil:
			r.Reason = "unexpected evaluation error"
		default:
			r.Got = score.Value
			if math.Abs(score.Value-sc.Expected) <= f.Tolerance {
				r.Passed = true
			} else {
				r.Reason = "score outside tolerance"
			}
		}

		results = append(results, r)
		sum.Total++
		if r.Passed {
			sum.Passed++
		} else {
			sum.Failed++
		}
	}
	return results, sum
}

// #endregion replay
