package segment

import (
	"reflect"
	"testing"

	"github.com/minicrm/backend/internal/model"
)

func TestBuildFilterZeroRulesMatchesEverything(t *testing.T) {
	cond, args := BuildFilter(nil)
	if cond != "TRUE" {
		t.Errorf("expected TRUE, got %q", cond)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildFilterEquals(t *testing.T) {
	cond, args := BuildFilter([]model.Rule{
		{Field: "email", Operator: "equals", Value: "ana@example.com"},
	})
	if cond != "email = $1" {
		t.Errorf("unexpected condition: %q", cond)
	}
	if !reflect.DeepEqual(args, []interface{}{"ana@example.com"}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildFilterEqualsNumericCoercion(t *testing.T) {
	cond, args := BuildFilter([]model.Rule{
		{Field: "visits", Operator: "equals", Value: "10"},
	})
	if cond != "visits = $1" {
		t.Errorf("unexpected condition: %q", cond)
	}
	if !reflect.DeepEqual(args, []interface{}{10.0}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildFilterVisitsGreaterThan(t *testing.T) {
	// the canonical audience scenario: visits > "5"
	cond, args := BuildFilter([]model.Rule{
		{Field: "visits", Operator: "greater_than", Value: "5"},
	})
	if cond != "visits > $1" {
		t.Errorf("unexpected condition: %q", cond)
	}
	if !reflect.DeepEqual(args, []interface{}{5.0}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildFilterNonNumericComparisonMatchesNothing(t *testing.T) {
	for _, op := range []string{"greater_than", "less_than"} {
		cond, args := BuildFilter([]model.Rule{
			{Field: "totalSpend", Operator: op, Value: "lots"},
		})
		if cond != "FALSE" {
			t.Errorf("%s: expected FALSE, got %q", op, cond)
		}
		if len(args) != 0 {
			t.Errorf("%s: expected no args, got %v", op, args)
		}
	}
}

func TestBuildFilterNonNumericEquality(t *testing.T) {
	cond, _ := BuildFilter([]model.Rule{
		{Field: "visits", Operator: "equals", Value: "many"},
	})
	if cond != "FALSE" {
		t.Errorf("equals: expected FALSE, got %q", cond)
	}

	cond, _ = BuildFilter([]model.Rule{
		{Field: "visits", Operator: "not_equals", Value: "many"},
	})
	if cond != "TRUE" {
		t.Errorf("not_equals: expected TRUE, got %q", cond)
	}
}

func TestBuildFilterUnknownOperatorPassesThrough(t *testing.T) {
	cond, args := BuildFilter([]model.Rule{
		{Field: "visits", Operator: "between", Value: "5"},
	})
	if cond != "TRUE" {
		t.Errorf("expected TRUE, got %q", cond)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildFilterUnknownFieldMatchesNothing(t *testing.T) {
	cond, _ := BuildFilter([]model.Rule{
		{Field: "loyalty_tier", Operator: "equals", Value: "gold"},
	})
	if cond != "FALSE" {
		t.Errorf("expected FALSE, got %q", cond)
	}
}

func TestBuildFilterCombinesWithAnd(t *testing.T) {
	cond, args := BuildFilter([]model.Rule{
		{Field: "visits", Operator: "greater_than", Value: "5", Logic: "OR"},
		{Field: "totalSpend", Operator: "less_than", Value: 100.0},
	})
	// the per-rule logic tag is ignored; rules always AND-combine
	if cond != "visits > $1 AND total_spend < $2" {
		t.Errorf("unexpected condition: %q", cond)
	}
	if !reflect.DeepEqual(args, []interface{}{5.0, 100.0}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildFilterLastActiveComparesEpochMillis(t *testing.T) {
	cond, args := BuildFilter([]model.Rule{
		{Field: "lastActive", Operator: "less_than", Value: 1700000000000.0},
	})
	if cond != "(EXTRACT(EPOCH FROM last_active) * 1000) < $1" {
		t.Errorf("unexpected condition: %q", cond)
	}
	if !reflect.DeepEqual(args, []interface{}{1700000000000.0}) {
		t.Errorf("unexpected args: %v", args)
	}
}
