package suitability

import "github.com/danielpatrickdp/mrta-suitability/internal/fuzzy"

// #region score

// Score is the crisp suitability of one robot/task pair. Higher is more
// suitable; the output universe spans 0 to 10. Clamped lists inputs that
// fell outside their universe, in which case the value is an
// extrapolation.
type Score struct {
	Value   float64
	Clamped []fuzzy.Clamp
}

// #endregion score

// #region evaluate

// Evaluate scores one candidate. Capability is conventionally 0 (no
// match) or 1 (matched); a value strictly between the two belongs to
// neither capability term and surfaces fuzzy.ErrNoRuleFired. Evaluation
// is stateless and deterministic; errors are per-call and must not stop
// a batch of candidates.
func Evaluate(m *fuzzy.Model, load, distanceToTask, totalDistance, capability float64) (Score, error) {
	res, err := m.Evaluate(map[string]float64{
		VarLoadHistory:    load,
		VarDistanceToTask: distanceToTask,
		VarTotalDistance:  totalDistance,
		VarCapability:     capability,
	})
	if err != nil {
		return Score{}, err
	}
	return Score{Value: res.Output, Clamped: res.Clamped}, nil
}

// #endregion evaluate
