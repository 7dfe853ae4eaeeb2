package suitability

import "github.com/danielpatrickdp/mrta-suitability/internal/fuzzy"

// #region rule-table

// ruleSpec is one row of the rule table: antecedent term names per input
// variable (empty string = variable absent from the rule) and the
// consequent suitability term.
type ruleSpec struct {
	load, distance, travelled, capability string
	suitability                           string
}

// ruleTable is the fixed 28-rule base: a 3x3x3 grid over the numeric
// inputs' Low/Medium/High terms for the capability-matched case, plus a
// single catch-all mapping an unmatched capability to Unacceptable. The
// rows were tuned against the control surface they produce; order is
// kept for reproducibility only, aggregation does not depend on it.
var ruleTable = [28]ruleSpec{
	// Total distance travelled Low.
	{TermLow, TermLow, TermLow, TermMatched, TermVeryHigh},
	{TermMedium, TermLow, TermLow, TermMatched, TermHigh},
	{TermHigh, TermLow, TermLow, TermMatched, TermMedium},
	{TermLow, TermMedium, TermLow, TermMatched, TermHigh},
	{TermMedium, TermMedium, TermLow, TermMatched, TermMedium},
	{TermHigh, TermMedium, TermLow, TermMatched, TermMedium},
	{TermLow, TermHigh, TermLow, TermMatched, TermMedium},
	{TermMedium, TermHigh, TermLow, TermMatched, TermMedium},
	{TermHigh, TermHigh, TermLow, TermMatched, TermLow},

	// Total distance travelled Medium.
	{TermLow, TermLow, TermMedium, TermMatched, TermHigh},
	{TermMedium, TermLow, TermMedium, TermMatched, TermMedium},
	{TermHigh, TermLow, TermMedium, TermMatched, TermMedium},
	{TermLow, TermMedium, TermMedium, TermMatched, TermMedium},
	{TermMedium, TermMedium, TermMedium, TermMatched, TermLow},
	{TermHigh, TermMedium, TermMedium, TermMatched, TermLow},
	{TermLow, TermHigh, TermMedium, TermMatched, TermMedium},
	{TermMedium, TermHigh, TermMedium, TermMatched, TermLow},
	{TermHigh, TermHigh, TermMedium, TermMatched, TermVeryLow},

	// Total distance travelled High.
	{TermLow, TermLow, TermHigh, TermMatched, TermMedium},
	{TermMedium, TermLow, TermHigh, TermMatched, TermMedium},
	{TermHigh, TermLow, TermHigh, TermMatched, TermLow},
	{TermLow, TermMedium, TermHigh, TermMatched, TermMedium},
	{TermMedium, TermMedium, TermHigh, TermMatched, TermLow},
	{TermHigh, TermMedium, TermHigh, TermMatched, TermVeryLow},
	{TermLow, TermHigh, TermHigh, TermMatched, TermLow},
	{TermMedium, TermHigh, TermHigh, TermMatched, TermVeryLow},
	{TermHigh, TermHigh, TermHigh, TermMatched, TermVeryLow},

	// Capability catch-all.
	{"", "", "", TermNoMatch, TermUnacceptable},
}

// #endregion rule-table

// #region build-rules

// buildRules resolves the table rows into rules. Term resolution happens
// here, at construction time, so an undefined term name aborts the build
// instead of silently yielding a zero-firing rule.
func buildRules(lh, dtt, tdt, capability, suit *fuzzy.Variable) ([]fuzzy.Rule, error) {
	rules := make([]fuzzy.Rule, 0, len(ruleTable))
	for _, spec := range ruleTable {
		var when []fuzzy.Clause

		pairs := []struct {
			v    *fuzzy.Variable
			term string
		}{
			{lh, spec.load},
			{dtt, spec.distance},
			{tdt, spec.travelled},
			{capability, spec.capability},
		}
		for _, p := range pairs {
			if p.term == "" {
				continue
			}
			cl, err := p.v.Is(p.term)
			if err != nil {
				return nil, err
			}
			when = append(when, cl)
		}

		then, err := suit.Is(spec.suitability)
		if err != nil {
			return nil, err
		}
		rule, err := fuzzy.NewRule(when, then)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// #endregion build-rules
