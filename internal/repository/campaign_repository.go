// internal/repository/campaign_repository.go
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id string) (*model.Campaign, error)
	ListAll() ([]model.Campaign, error)
	Delete(id string) error
	CompleteSend(campaignID string, sentAt time.Time, logs []model.CampaignLog) error
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = model.CampaignStatusDraft
	}
	c.CreatedAt = time.Now()

	query := `
        INSERT INTO campaigns (id, name, message, segment_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.DB.Exec(query, c.ID, c.Name, c.Message, c.SegmentID, c.Status, c.CreatedAt)
	return err
}

const campaignSelect = `
        SELECT c.id, c.name, c.message, c.segment_id, c.status, c.sent_at, c.created_at, c.updated_at,
               s.id, s.name, s.rules, s.created_at, s.updated_at
        FROM campaigns c
        JOIN segments s ON s.id = c.segment_id
`

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	c, err := scanCampaign(r.DB.QueryRow(campaignSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("campaign", id)
		}
		return nil, err
	}
	return c, nil
}

// ListAll returns every campaign with its segment resolved
func (r *CampaignRepository) ListAll() ([]model.Campaign, error) {
	rows, err := r.DB.Query(campaignSelect + ` ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*model.Campaign, error) {
	var c model.Campaign
	var s model.Segment
	var rules []byte
	err := row.Scan(
		&c.ID, &c.Name, &c.Message, &c.SegmentID, &c.Status, &c.SentAt, &c.CreatedAt, &c.UpdatedAt,
		&s.ID, &s.Name, &rules, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rules, &s.Rules); err != nil {
		return nil, err
	}
	c.Segment = &s
	return &c, nil
}

// Delete removes a campaign; its logs go with it via the cascade constraint
func (r *CampaignRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return mustAffect(res, "campaign", id)
}

// CompleteSend finishes a dispatch in a single transaction. The status
// update is a compare-and-swap on draft: of two concurrent sends exactly one
// claims the campaign, the other aborts here without writing any log.
func (r *CampaignRepository) CompleteSend(campaignID string, sentAt time.Time, logs []model.CampaignLog) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE campaigns SET status=$1, sent_at=$2, updated_at=$2 WHERE id=$3 AND status=$4`,
		model.CampaignStatusSent, sentAt, campaignID, model.CampaignStatusDraft,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewAlreadySent(campaignID)
	}

	insert := `
        INSERT INTO campaign_logs (id, campaign_id, customer_id, message, status, timestamp)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	for i := range logs {
		log := &logs[i]
		if log.ID == "" {
			log.ID = uuid.NewString()
		}
		if _, err := tx.Exec(insert, log.ID, log.CampaignID, log.CustomerID, log.Message, log.Status, log.Timestamp); err != nil {
			return fmt.Errorf("failed to write delivery log for customer %s: %w", log.CustomerID, err)
		}
	}

	return tx.Commit()
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
