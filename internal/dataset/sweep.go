// Package dataset generates control-surface datasets from the
// suitability model and persists them in SQLite. It is a harness around
// the stateless core: the model is only read, never mutated.
package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/danielpatrickdp/mrta-suitability/internal/fuzzy"
	"github.com/danielpatrickdp/mrta-suitability/internal/suitability"
)

// #region types

// Sample is one evaluated grid cell of the control surface.
type Sample struct {
	Load           float64
	DistanceToTask float64
	TotalDistance  float64
	Capability     float64
	Suitability    float64
}

// SweepConfig sets the grid resolution per numeric input and the fixed
// capability value the surface is swept at.
type SweepConfig struct {
	Steps      int
	Capability float64
}

// DefaultSweepConfig sweeps a 21-point grid per axis on the matched side.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{Steps: 21, Capability: 1}
}

// #endregion types

// #region sweep

// Sweep evaluates the model over a Steps^3 grid spanning the three
// numeric input universes at the configured capability. Grid points lie
// inside the universes, so no clamping occurs and, with capability at 0
// or 1, no cell can degenerate.
func Sweep(m *fuzzy.Model, cfg SweepConfig) ([]Sample, error) {
	if cfg.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps per axis, got %d", cfg.Steps)
	}

	axis := func(name string) ([]float64, error) {
		for _, v := range m.Inputs() {
			if v.Name() == name {
				u := v.Universe()
				return floats.Span(make([]float64, cfg.Steps), u.Min(), u.Max()), nil
			}
		}
		return nil, fmt.Errorf("model has no input variable %q", name)
	}

	loads, err := axis(suitability.VarLoadHistory)
	if err != nil {
		return nil, err
	}
	distances, err := axis(suitability.VarDistanceToTask)
	if err != nil {
		return nil, err
	}
	travelled, err := axis(suitability.VarTotalDistance)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, cfg.Steps*cfg.Steps*cfg.Steps)
	for _, td := range travelled {
		for _, d := range distances {
			for _, l := range loads {
				score, err := suitability.Evaluate(m, l, d, td, cfg.Capability)
				if err != nil {
					return nil, fmt.Errorf("sweep cell (%.3f, %.3f, %.3f): %w", l, d, td, err)
				}
				samples = append(samples, Sample{
					Load:           l,
					DistanceToTask: d,
					TotalDistance:  td,
					Capability:     cfg.Capability,
					Suitability:    score.Value,
				})
			}
		}
	}
	return samples, nil
}

// #endregion sweep
