// internal/model/customer.go
package model

import (
	"fmt"
	"time"
)

type Customer struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	TotalSpend float64   `db:"total_spend" json:"total_spend"`
	Visits     int       `db:"visits" json:"visits"`
	LastActive time.Time `db:"last_active" json:"last_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Validate checks the required customer fields
func (c *Customer) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("customer name is required")
	}
	if c.Email == "" {
		return fmt.Errorf("customer email is required")
	}
	if c.Phone == "" {
		return fmt.Errorf("customer phone is required")
	}
	return nil
}
