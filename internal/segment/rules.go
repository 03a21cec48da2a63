// internal/segment/rules.go
package segment

import (
	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
)

// Canonical rule operators. The symbolic grammar some older segment forms
// produced (>, >=, ==, ...) is not accepted; create/update validates against
// these tokens only.
const (
	OpEquals      = "equals"
	OpNotEquals   = "not_equals"
	OpGreaterThan = "greater_than"
	OpLessThan    = "less_than"
)

// fieldColumns maps rule field names to customer columns. Both the camelCase
// names the segment forms send and the column spellings are accepted.
var fieldColumns = map[string]string{
	"name":        "name",
	"email":       "email",
	"phone":       "phone",
	"totalSpend":  "total_spend",
	"total_spend": "total_spend",
	"visits":      "visits",
	"lastActive":  "last_active",
	"last_active": "last_active",
}

// numericColumns compare by value; last_active compares on its epoch-millis
// form so rules can carry plain numbers for it.
var numericColumns = map[string]bool{
	"total_spend": true,
	"visits":      true,
	"last_active": true,
}

func knownOperator(op string) bool {
	switch op {
	case OpEquals, OpNotEquals, OpGreaterThan, OpLessThan:
		return true
	}
	return false
}

// ValidateRules is the boundary check applied on segment create/update.
// The evaluator itself stays permissive with whatever is already stored.
func ValidateRules(rules []model.Rule) error {
	for i, rule := range rules {
		if rule.Field == "" {
			return appErrors.NewValidation("rule %d: field is required", i+1)
		}
		if _, ok := fieldColumns[rule.Field]; !ok {
			return appErrors.NewValidation("rule %d: unknown field %q", i+1, rule.Field)
		}
		if !knownOperator(rule.Operator) {
			return appErrors.NewValidation("rule %d: unknown operator %q", i+1, rule.Operator)
		}
		if rule.Value == nil {
			return appErrors.NewValidation("rule %d: value is required", i+1)
		}
	}
	return nil
}
