// internal/repository/segment_repository.go
package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
)

type SegmentRepositoryInterface interface {
	Create(s *model.Segment) error
	GetByID(id string) (*model.Segment, error)
	ListAll() ([]model.Segment, error)
	Update(s *model.Segment) error
	Delete(id string) error
}

type SegmentRepository struct {
	DB *sql.DB
}

const pqForeignKeyViolation = "23503"

func (r *SegmentRepository) Create(s *model.Segment) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt

	rules, err := marshalRules(s.Rules)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO segments (id, name, rules, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err = r.DB.Exec(query, s.ID, s.Name, rules, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *SegmentRepository) GetByID(id string) (*model.Segment, error) {
	query := `SELECT id, name, rules, created_at, updated_at FROM segments WHERE id = $1`

	var s model.Segment
	var rules []byte
	err := r.DB.QueryRow(query, id).Scan(&s.ID, &s.Name, &rules, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("segment", id)
		}
		return nil, err
	}
	if err := json.Unmarshal(rules, &s.Rules); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SegmentRepository) ListAll() ([]model.Segment, error) {
	query := `SELECT id, name, rules, created_at, updated_at FROM segments ORDER BY created_at`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	segments := []model.Segment{}
	for rows.Next() {
		var s model.Segment
		var rules []byte
		if err := rows.Scan(&s.ID, &s.Name, &rules, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rules, &s.Rules); err != nil {
			return nil, err
		}
		segments = append(segments, s)
	}
	return segments, rows.Err()
}

func (r *SegmentRepository) Update(s *model.Segment) error {
	s.UpdatedAt = time.Now()

	rules, err := marshalRules(s.Rules)
	if err != nil {
		return err
	}

	query := `UPDATE segments SET name=$1, rules=$2, updated_at=$3 WHERE id=$4`
	res, err := r.DB.Exec(query, s.Name, rules, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	return mustAffect(res, "segment", s.ID)
}

func (r *SegmentRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM segments WHERE id=$1`, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqForeignKeyViolation {
			return appErrors.NewValidation("segment %s is referenced by existing campaigns", id)
		}
		return err
	}
	return mustAffect(res, "segment", id)
}

func marshalRules(rules []model.Rule) ([]byte, error) {
	if rules == nil {
		rules = []model.Rule{}
	}
	return json.Marshal(rules)
}

var _ SegmentRepositoryInterface = (*SegmentRepository)(nil)
