package fuzzy

import "fmt"

// #region rule

// Rule pairs a conjunction of antecedent clauses (fuzzy AND = minimum)
// with a single consequent clause. Rules are immutable once built; the
// rule base preserves construction order for reproducibility even though
// aggregation is commutative.
type Rule struct {
	when []Clause
	then Clause
}

// NewRule builds a rule from at least one antecedent clause and a
// consequent clause.
func NewRule(antecedents []Clause, consequent Clause) (Rule, error) {
	if len(antecedents) == 0 {
		return Rule{}, fmt.Errorf("rule needs at least one antecedent clause")
	}
	when := make([]Clause, len(antecedents))
	copy(when, antecedents)
	return Rule{when: when, then: consequent}, nil
}

// Antecedents returns a copy of the antecedent clauses.
func (r Rule) Antecedents() []Clause {
	out := make([]Clause, len(r.when))
	copy(out, r.when)
	return out
}

// Consequent returns the consequent clause.
func (r Rule) Consequent() Clause {
	return r.then
}

// #endregion rule
