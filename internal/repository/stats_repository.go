// internal/repository/stats_repository.go
package repository

import (
	"database/sql"
)

// StatsRepository backs the dashboard overview endpoint
type StatsRepository struct {
	DB *sql.DB
}

func (r *StatsRepository) Overview() (map[string]int, error) {
	stats := map[string]int{
		"customers":         0,
		"orders":            0,
		"segments":          0,
		"campaigns":         0,
		"campaigns_sent":    0,
		"deliveries_sent":   0,
		"deliveries_failed": 0,
	}

	counts := map[string]string{
		"customers":      `SELECT COUNT(*) FROM customers`,
		"orders":         `SELECT COUNT(*) FROM orders`,
		"segments":       `SELECT COUNT(*) FROM segments`,
		"campaigns":      `SELECT COUNT(*) FROM campaigns`,
		"campaigns_sent": `SELECT COUNT(*) FROM campaigns WHERE status = 'sent'`,
	}
	for key, query := range counts {
		var n int
		if err := r.DB.QueryRow(query).Scan(&n); err != nil {
			return nil, err
		}
		stats[key] = n
	}

	rows, err := r.DB.Query(`SELECT status, COUNT(*) FROM campaign_logs GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch status {
		case "sent":
			stats["deliveries_sent"] = count
		case "failed":
			stats["deliveries_failed"] = count
		}
	}
	return stats, rows.Err()
}
