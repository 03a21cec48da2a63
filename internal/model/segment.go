// internal/model/segment.go
package model

import "time"

// Rule is a single field/operator/value condition used to filter customers.
// Value is untyped: JSON decoding yields string or float64 depending on the
// client. Logic (AND/OR) is accepted for compatibility with older segment
// forms but the evaluator always AND-combines.
type Rule struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
	Logic    string `json:"logic,omitempty"`
}

type Segment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rules     []Rule    `json:"rules"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
