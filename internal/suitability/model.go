// Package suitability defines the fuzzy inference model that scores how
// suitable a robot is for a task in multi-robot task allocation, from
// its load history, distance to the task, total distance travelled, and
// a binary capability match.
package suitability

import (
	"fmt"

	"github.com/danielpatrickdp/mrta-suitability/internal/fuzzy"
)

// #region names

// Variable names.
const (
	VarLoadHistory    = "Load History"
	VarDistanceToTask = "Distance to Task"
	VarTotalDistance  = "Total Distance Travelled"
	VarCapability     = "Capability"
	VarSuitability    = "Suitability"
)

// Term names. Low/Medium/High are shared by the three numeric inputs;
// the capability input is two-valued; the output has five grades plus
// the unacceptable spike at zero.
const (
	TermLow    = "Low"
	TermMedium = "Medium"
	TermHigh   = "High"

	TermNoMatch = "No Match"
	TermMatched = "Matched"

	TermUnacceptable = "Unacceptable"
	TermVeryLow      = "Very Low"
	TermVeryHigh     = "Very High"
)

// #endregion names

// #region build

// BuildModel constructs the immutable suitability FIS: universes, terms,
// and the 28-rule base. Called once at startup; the returned model is
// safe to share read-only across concurrent evaluations. The sample
// points and breakpoints carry the hand-tuned control surface, so any
// change here changes scoring behaviour.
func BuildModel() (*fuzzy.Model, error) {
	lhUniverse, err := fuzzy.NewUniverse(0, 5.0/6.0, 4, 5, 6, 55.0/6.0, 10)
	if err != nil {
		return nil, fmt.Errorf("load history universe: %w", err)
	}
	dttUniverse, err := fuzzy.NewUniverse(0, 25.0/12.0, 10, 12.5, 15, 275.0/12.0, 25)
	if err != nil {
		return nil, fmt.Errorf("distance to task universe: %w", err)
	}
	tdtUniverse, err := fuzzy.NewUniverse(0, 25.0/6.0, 15, 25, 30, 275.0/6.0, 50)
	if err != nil {
		return nil, fmt.Errorf("total distance universe: %w", err)
	}
	capUniverse, err := fuzzy.NewUniverse(0, 1)
	if err != nil {
		return nil, fmt.Errorf("capability universe: %w", err)
	}
	suitUniverse, err := fuzzy.NewUniverse(
		0, 5.0/12.0, 25.0/12.0, 2.5, 35.0/12.0, 55.0/12.0, 5,
		65.0/12.0, 85.0/12.0, 7.5, 95.0/12.0, 115.0/12.0, 10,
	)
	if err != nil {
		return nil, fmt.Errorf("suitability universe: %w", err)
	}

	lh := fuzzy.NewVariable(VarLoadHistory, lhUniverse)
	dtt := fuzzy.NewVariable(VarDistanceToTask, dttUniverse)
	tdt := fuzzy.NewVariable(VarTotalDistance, tdtUniverse)
	capability := fuzzy.NewVariable(VarCapability, capUniverse)
	suit := fuzzy.NewVariable(VarSuitability, suitUniverse)

	type termDef struct {
		v       *fuzzy.Variable
		term    string
		a, b, c float64
	}
	terms := []termDef{
		{lh, TermLow, 0, 0, 6},
		{lh, TermMedium, 5.0 / 6.0, 5, 55.0 / 6.0},
		{lh, TermHigh, 4, 10, 10},

		{dtt, TermLow, 0, 0, 15},
		{dtt, TermMedium, 25.0 / 12.0, 12.5, 275.0 / 12.0},
		{dtt, TermHigh, 10, 25, 25},

		{tdt, TermLow, 0, 0, 30},
		{tdt, TermMedium, 25.0 / 6.0, 25, 275.0 / 6.0},
		{tdt, TermHigh, 15, 50, 50},

		{capability, TermNoMatch, 0, 0, 0},
		{capability, TermMatched, 1, 1, 1},

		{suit, TermUnacceptable, 0, 0, 0},
		{suit, TermVeryLow, 0, 0, 25.0 / 12.0},
		{suit, TermLow, 5.0 / 12.0, 2.5, 55.0 / 12.0},
		{suit, TermMedium, 35.0 / 12.0, 5, 85.0 / 12.0},
		{suit, TermHigh, 65.0 / 12.0, 7.5, 115.0 / 12.0},
		{suit, TermVeryHigh, 95.0 / 12.0, 10, 10},
	}
	for _, td := range terms {
		if err := td.v.AddTerm(td.term, td.a, td.b, td.c); err != nil {
			return nil, err
		}
	}

	rules, err := buildRules(lh, dtt, tdt, capability, suit)
	if err != nil {
		return nil, err
	}

	model, err := fuzzy.NewModel([]*fuzzy.Variable{lh, dtt, tdt, capability}, suit, rules)
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}
	return model, nil
}

// #endregion build
