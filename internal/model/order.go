// internal/model/order.go
package model

import "time"

// Order statuses by convention; the column stores free text and is not enforced.
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	ID         string    `db:"id" json:"id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	Amount     float64   `db:"amount" json:"amount"`
	OrderDate  time.Time `db:"order_date" json:"order_date"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	// Customer is resolved on list/get responses
	Customer *Customer `db:"-" json:"customer,omitempty"`
}
