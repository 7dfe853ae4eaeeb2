package fuzzy

import "fmt"

// #region model

// Model is an immutable Mamdani FIS specification: input variables, one
// output variable, and an ordered rule base. Built once at startup and
// safe to share read-only across concurrent Evaluate calls; each
// evaluation allocates only per-call state.
type Model struct {
	inputs []*Variable
	output *Variable
	rules  []Rule
	byName map[string]*Variable
}

// NewModel validates the rule base against the declared variables and
// freezes every variable so no terms can be added after the build phase.
func NewModel(inputs []*Variable, output *Variable, rules []Rule) (*Model, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("model needs at least one input variable")
	}
	if output == nil {
		return nil, fmt.Errorf("model needs an output variable")
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("model needs at least one rule")
	}

	byName := make(map[string]*Variable, len(inputs))
	for _, v := range inputs {
		if _, dup := byName[v.name]; dup {
			return nil, fmt.Errorf("duplicate input variable %q", v.name)
		}
		if v == output {
			return nil, fmt.Errorf("variable %q cannot be both input and output", v.name)
		}
		byName[v.name] = v
	}

	for i, r := range rules {
		for _, cl := range r.when {
			if byName[cl.variable.name] != cl.variable {
				return nil, fmt.Errorf("rule %d references variable %q which is not a model input", i+1, cl.variable.name)
			}
		}
		if r.then.variable != output {
			return nil, fmt.Errorf("rule %d consequent references %q, not the output variable %q", i+1, r.then.variable.name, output.name)
		}
	}

	for _, v := range inputs {
		v.frozen = true
	}
	output.frozen = true

	owned := make([]Rule, len(rules))
	copy(owned, rules)

	return &Model{inputs: inputs, output: output, rules: owned, byName: byName}, nil
}

// Inputs returns the input variables in declaration order.
func (m *Model) Inputs() []*Variable {
	out := make([]*Variable, len(m.inputs))
	copy(out, m.inputs)
	return out
}

// Output returns the output variable.
func (m *Model) Output() *Variable {
	return m.output
}

// Rules returns a copy of the ordered rule base.
func (m *Model) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// #endregion model
