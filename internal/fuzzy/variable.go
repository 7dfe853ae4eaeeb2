package fuzzy

import "fmt"

// #region variable

// Variable is a named linguistic axis bound to a universe, owning a
// mapping from term name to membership function. It is mutable only
// while the model is being built; NewModel freezes every variable it
// receives, after which AddTerm fails.
type Variable struct {
	name     string
	universe Universe
	order    []string
	terms    map[string]Triangle
	frozen   bool
}

// NewVariable creates a variable with no terms over the given universe.
func NewVariable(name string, u Universe) *Variable {
	return &Variable{
		name:     name,
		universe: u,
		terms:    make(map[string]Triangle),
	}
}

// Name returns the variable name.
func (v *Variable) Name() string {
	return v.name
}

// Universe returns the variable's universe.
func (v *Variable) Universe() Universe {
	return v.universe
}

// AddTerm registers a triangular membership function under the given
// term name. Duplicate term names and malformed breakpoints are
// construction errors, as is mutating a frozen variable.
func (v *Variable) AddTerm(term string, a, b, c float64) error {
	if v.frozen {
		return fmt.Errorf("variable %q is frozen, cannot add term %q", v.name, term)
	}
	if _, exists := v.terms[term]; exists {
		return fmt.Errorf("variable %q already has term %q", v.name, term)
	}
	mf, err := NewTriangle(a, b, c)
	if err != nil {
		return fmt.Errorf("term %q on variable %q: %w", term, v.name, err)
	}
	v.terms[term] = mf
	v.order = append(v.order, term)
	return nil
}

// Term returns the membership function registered under the given name.
func (v *Variable) Term(term string) (Triangle, bool) {
	mf, ok := v.terms[term]
	return mf, ok
}

// Terms returns the term names in definition order.
func (v *Variable) Terms() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// #endregion variable

// #region clause

// Clause pairs a variable with one of its terms for use in a rule. The
// membership function is resolved here, at construction time, so a typo
// in a term name fails fast instead of producing an always-zero rule.
type Clause struct {
	variable *Variable
	term     string
	mf       Triangle
}

// Is builds a clause for the given term, failing if the term is not
// defined on the variable.
func (v *Variable) Is(term string) (Clause, error) {
	mf, ok := v.terms[term]
	if !ok {
		return Clause{}, fmt.Errorf("variable %q has no term %q", v.name, term)
	}
	return Clause{variable: v, term: term, mf: mf}, nil
}

// Variable returns the clause's variable name.
func (c Clause) Variable() string {
	return c.variable.name
}

// Term returns the clause's term name.
func (c Clause) Term() string {
	return c.term
}

// #endregion clause
