package fuzzy

import (
	"errors"
	"math"
	"testing"
)

// tinyModel builds a two-term fan controller: cold -> low, hot -> high.
// The term supports leave a gap at exactly 5 where nothing fires.
func tinyModel(t *testing.T) *Model {
	t.Helper()

	in := NewVariable("temp", testUniverse(t, 0, 2.5, 5, 7.5, 10))
	out := NewVariable("fan", testUniverse(t, 0, 2.5, 5, 7.5, 10))

	add := func(v *Variable, term string, a, b, c float64) {
		t.Helper()
		if err := v.AddTerm(term, a, b, c); err != nil {
			t.Fatalf("AddTerm(%s): %v", term, err)
		}
	}
	add(in, "cold", 0, 0, 5)
	add(in, "hot", 5, 10, 10)
	add(out, "low", 0, 0, 5)
	add(out, "high", 5, 10, 10)

	clause := func(v *Variable, term string) Clause {
		t.Helper()
		cl, err := v.Is(term)
		if err != nil {
			t.Fatalf("Is(%s): %v", term, err)
		}
		return cl
	}
	rule := func(when Clause, then Clause) Rule {
		t.Helper()
		r, err := NewRule([]Clause{when}, then)
		if err != nil {
			t.Fatalf("NewRule: %v", err)
		}
		return r
	}

	rules := []Rule{
		rule(clause(in, "cold"), clause(out, "low")),
		rule(clause(in, "hot"), clause(out, "high")),
	}
	m, err := NewModel([]*Variable{in}, out, rules)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestEvaluateCentroid(t *testing.T) {
	m := tinyModel(t)

	// temp=0: only cold fires at 1, low is clipped at full height.
	// Nonzero output points: 0 (degree 1) and 2.5 (degree 0.5), so the
	// centroid is 2.5*0.5 / 1.5 = 5/6.
	res, err := m.Evaluate(map[string]float64{"temp": 0})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if math.Abs(res.Output-5.0/6.0) > 1e-12 {
		t.Fatalf("output = %f, want %f", res.Output, 5.0/6.0)
	}
	if len(res.Clamped) != 0 {
		t.Fatalf("unexpected clamp diagnostics: %v", res.Clamped)
	}
	if res.Memberships["temp"]["cold"] != 1 || res.Memberships["temp"]["hot"] != 0 {
		t.Fatalf("memberships = %v, want cold=1 hot=0", res.Memberships["temp"])
	}
	if res.Strengths[0] != 1 || res.Strengths[1] != 0 {
		t.Fatalf("strengths = %v, want [1 0]", res.Strengths)
	}

	// Mirror case at the other end of the universe.
	res, err = m.Evaluate(map[string]float64{"temp": 10})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if math.Abs(res.Output-55.0/6.0) > 1e-12 {
		t.Fatalf("output = %f, want %f", res.Output, 55.0/6.0)
	}
}

func TestEvaluateMissingInput(t *testing.T) {
	m := tinyModel(t)
	if _, err := m.Evaluate(map[string]float64{}); err == nil {
		t.Fatal("expected error for missing input variable")
	}
}

func TestEvaluateClampsOutOfRangeInputs(t *testing.T) {
	m := tinyModel(t)

	res, err := m.Evaluate(map[string]float64{"temp": -3})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(res.Clamped) != 1 {
		t.Fatalf("expected one clamp diagnostic, got %v", res.Clamped)
	}
	cl := res.Clamped[0]
	if cl.Variable != "temp" || cl.Given != -3 || cl.Bound != 0 {
		t.Fatalf("clamp = %+v, want temp -3 -> 0", cl)
	}

	// Clamped input must evaluate like the boundary value.
	atBound, err := m.Evaluate(map[string]float64{"temp": 0})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Output != atBound.Output {
		t.Fatalf("clamped output %f != boundary output %f", res.Output, atBound.Output)
	}
}

func TestEvaluateNoRuleFired(t *testing.T) {
	m := tinyModel(t)

	// Both term supports are open at 5, so nothing fires there.
	_, err := m.Evaluate(map[string]float64{"temp": 5})
	if !errors.Is(err, ErrNoRuleFired) {
		t.Fatalf("expected ErrNoRuleFired, got %v", err)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	m := tinyModel(t)
	in := map[string]float64{"temp": 3.7}

	first, err := m.Evaluate(in)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	second, err := m.Evaluate(in)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if first.Output != second.Output {
		t.Fatalf("outputs differ across identical calls: %f vs %f", first.Output, second.Output)
	}
}

func TestNewModelValidation(t *testing.T) {
	in := NewVariable("temp", testUniverse(t, 0, 5, 10))
	out := NewVariable("fan", testUniverse(t, 0, 5, 10))
	other := NewVariable("humidity", testUniverse(t, 0, 50, 100))
	for _, v := range []*Variable{in, out, other} {
		if err := v.AddTerm("any", 0, 5, 10); err != nil {
			t.Fatalf("AddTerm: %v", err)
		}
	}

	inAny, _ := in.Is("any")
	outAny, _ := out.Is("any")
	otherAny, _ := other.Is("any")

	if _, err := NewRule(nil, outAny); err == nil {
		t.Fatal("expected error for rule without antecedents")
	}

	good, err := NewRule([]Clause{inAny}, outAny)
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}

	if _, err := NewModel(nil, out, []Rule{good}); err == nil {
		t.Fatal("expected error for model without inputs")
	}
	if _, err := NewModel([]*Variable{in}, out, nil); err == nil {
		t.Fatal("expected error for model without rules")
	}

	foreign, err := NewRule([]Clause{otherAny}, outAny)
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}
	if _, err := NewModel([]*Variable{in}, out, []Rule{foreign}); err == nil {
		t.Fatal("expected error for rule referencing a non-input variable")
	}

	wrongOut, err := NewRule([]Clause{inAny}, inAny)
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}
	if _, err := NewModel([]*Variable{in}, out, []Rule{wrongOut}); err == nil {
		t.Fatal("expected error for consequent not on the output variable")
	}
}
