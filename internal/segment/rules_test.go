package segment

import (
	"testing"

	"github.com/minicrm/backend/internal/model"
)

func TestValidateRulesAcceptsCanonicalGrammar(t *testing.T) {
	rules := []model.Rule{
		{Field: "visits", Operator: "greater_than", Value: "5"},
		{Field: "totalSpend", Operator: "less_than", Value: 100.0},
		{Field: "email", Operator: "equals", Value: "ana@example.com"},
		{Field: "last_active", Operator: "not_equals", Value: 0.0},
	}
	if err := ValidateRules(rules); err != nil {
		t.Errorf("expected valid rules, got %v", err)
	}
}

func TestValidateRulesEmptyListIsValid(t *testing.T) {
	if err := ValidateRules(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidateRulesRejectsSymbolicOperators(t *testing.T) {
	// the old segment forms sent >, >=, ==, ...; only the word tokens are canonical
	for _, op := range []string{">", ">=", "<", "<=", "==", "!="} {
		err := ValidateRules([]model.Rule{{Field: "visits", Operator: op, Value: "5"}})
		if err == nil {
			t.Errorf("operator %q: expected validation error", op)
		}
	}
}

func TestValidateRulesRejectsUnknownField(t *testing.T) {
	err := ValidateRules([]model.Rule{{Field: "loyalty_tier", Operator: "equals", Value: "gold"}})
	if err == nil {
		t.Error("expected validation error for unknown field")
	}
}

func TestValidateRulesRejectsMissingValue(t *testing.T) {
	err := ValidateRules([]model.Rule{{Field: "visits", Operator: "equals"}})
	if err == nil {
		t.Error("expected validation error for missing value")
	}
}
