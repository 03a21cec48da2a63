// internal/segment/filter.go
package segment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minicrm/backend/internal/model"
)

// BuildFilter compiles segment rules into a SQL condition over the customers
// table plus its positional arguments. Zero rules compile to TRUE so an empty
// segment matches every customer. Rules are AND-combined; a per-rule logic
// tag is ignored.
//
// The compiled condition assumes it is the only parameterized part of the
// query it is appended to.
func BuildFilter(rules []model.Rule) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}

	for _, rule := range rules {
		cond := compileRule(rule, &args)
		if cond == "" {
			// unrecognized operator contributes no constraint
			continue
		}
		conds = append(conds, cond)
	}

	if len(conds) == 0 {
		return "TRUE", args
	}
	return strings.Join(conds, " AND "), args
}

func compileRule(rule model.Rule, args *[]interface{}) string {
	col, ok := fieldColumns[rule.Field]
	if !ok {
		// stored rule referencing a field we cannot interpolate safely:
		// matches nothing rather than erroring
		return "FALSE"
	}

	switch rule.Operator {
	case OpEquals, OpNotEquals:
		op := "="
		if rule.Operator == OpNotEquals {
			op = "!="
		}
		if numericColumns[col] {
			n, err := toNumber(rule.Value)
			if err != nil {
				// a value that never equals any number
				if rule.Operator == OpNotEquals {
					return "TRUE"
				}
				return "FALSE"
			}
			*args = append(*args, n)
			return fmt.Sprintf("%s %s $%d", numericExpr(col), op, len(*args))
		}
		*args = append(*args, stringValue(rule.Value))
		return fmt.Sprintf("%s %s $%d", col, op, len(*args))

	case OpGreaterThan, OpLessThan:
		n, err := toNumber(rule.Value)
		if err != nil {
			// the NaN comparison of the original evaluator: matches nothing
			return "FALSE"
		}
		op := ">"
		if rule.Operator == OpLessThan {
			op = "<"
		}
		*args = append(*args, n)
		return fmt.Sprintf("%s %s $%d", numericExpr(col), op, len(*args))
	}

	return ""
}

// numericExpr returns the comparable numeric form of a column.
func numericExpr(col string) string {
	if col == "last_active" {
		return "(EXTRACT(EPOCH FROM last_active) * 1000)"
	}
	return col
}

func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
