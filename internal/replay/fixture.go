// Package replay runs recorded scoring scenarios against the built
// model and checks the outputs. The rule surface was tuned by hand, so
// fixtures pin its behaviour against accidental re-tuning.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a scenario fixture.
type Fixture struct {
	Description string     `json:"description"`
	Tolerance   float64    `json:"tolerance"`
	Scenarios   []Scenario `json:"scenarios"`
}

// Scenario is one crisp input tuple with its expected outcome: either a
// score (within the fixture tolerance) or a degenerate-output error.
type Scenario struct {
	Name           string  `json:"name"`
	Load           float64 `json:"load"`
	DistanceToTask float64 `json:"distance_to_task"`
	TotalDistance  float64 `json:"total_distance"`
	Capability     float64 `json:"capability"`
	Expected       float64 `json:"expected"`
	ExpectError    bool    `json:"expect_error,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.Tolerance <= 0 {
		f.Tolerance = 1e-6
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("fixture %s has no scenarios", path)
	}
	return &f, nil
}

// #endregion fixture-loader
