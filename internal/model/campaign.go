// internal/model/campaign.go
package model

import (
	"fmt"
	"time"
)

const (
	CampaignStatusDraft = "draft"
	CampaignStatusSent  = "sent"
)

type Campaign struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Message   string     `db:"message" json:"message"`
	SegmentID string     `db:"segment_id" json:"segment_id"`
	Status    string     `db:"status" json:"status"`
	SentAt    *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`

	// Segment is resolved on list/get responses
	Segment *Segment `db:"-" json:"segment,omitempty"`
}

// Validate checks the required campaign fields
func (c *Campaign) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("campaign name is required")
	}
	if c.Message == "" {
		return fmt.Errorf("campaign message is required")
	}
	if c.SegmentID == "" {
		return fmt.Errorf("campaign segment_id is required")
	}
	return nil
}

// CanSend reports whether the draft -> sent transition is still available.
// sent is terminal.
func (c *Campaign) CanSend() bool {
	return c.Status == CampaignStatusDraft
}
