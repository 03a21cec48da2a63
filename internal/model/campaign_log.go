// internal/model/campaign_log.go
package model

import "time"

const (
	LogStatusSent   = "sent"
	LogStatusFailed = "failed"
)

// CampaignLog records one simulated delivery attempt to one customer.
// Logs are append-only and removed only when their campaign is deleted.
type CampaignLog struct {
	ID         string    `db:"id" json:"id"`
	CampaignID string    `db:"campaign_id" json:"campaign_id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	Message    string    `db:"message" json:"message"`
	Status     string    `db:"status" json:"status"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`

	// Customer is resolved on log listings
	Customer *Customer `db:"-" json:"customer,omitempty"`
}
