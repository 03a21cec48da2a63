// internal/repository/campaign_log_repository.go
package repository

import (
	"database/sql"

	"github.com/minicrm/backend/internal/model"
)

type CampaignLogRepositoryInterface interface {
	ListByCampaign(campaignID string) ([]model.CampaignLog, error)
}

type CampaignLogRepository struct {
	DB *sql.DB
}

// ListByCampaign returns the frozen delivery snapshot of one campaign with
// each log's customer resolved
func (r *CampaignLogRepository) ListByCampaign(campaignID string) ([]model.CampaignLog, error) {
	query := `
        SELECT l.id, l.campaign_id, l.customer_id, l.message, l.status, l.timestamp,
               c.id, c.name, c.email, c.phone, c.total_spend, c.visits, c.last_active, c.created_at
        FROM campaign_logs l
        JOIN customers c ON c.id = l.customer_id
        WHERE l.campaign_id = $1
        ORDER BY l.timestamp
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []model.CampaignLog{}
	for rows.Next() {
		var l model.CampaignLog
		var cust model.Customer
		if err := rows.Scan(
			&l.ID, &l.CampaignID, &l.CustomerID, &l.Message, &l.Status, &l.Timestamp,
			&cust.ID, &cust.Name, &cust.Email, &cust.Phone, &cust.TotalSpend, &cust.Visits, &cust.LastActive, &cust.CreatedAt,
		); err != nil {
			return nil, err
		}
		l.Customer = &cust
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

var _ CampaignLogRepositoryInterface = (*CampaignLogRepository)(nil)
