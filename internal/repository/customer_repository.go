// internal/repository/customer_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
	"github.com/minicrm/backend/internal/segment"
)

// CustomerRepositoryInterface defines the methods used by services and handlers
type CustomerRepositoryInterface interface {
	Create(c *model.Customer) error
	GetByID(id string) (*model.Customer, error)
	ListAll() ([]model.Customer, error)
	ListMatching(rules []model.Rule) ([]model.Customer, error)
	Update(c *model.Customer) error
	Delete(id string) error
}

// CustomerRepository is the concrete Postgres implementation
type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = `id, name, email, phone, total_spend, visits, last_active, created_at`

func (r *CustomerRepository) Create(c *model.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.LastActive.IsZero() {
		c.LastActive = time.Now()
	}
	c.CreatedAt = time.Now()

	query := `
        INSERT INTO customers (id, name, email, phone, total_spend, visits, last_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.DB.Exec(query, c.ID, c.Name, c.Email, c.Phone, c.TotalSpend, c.Visits, c.LastActive, c.CreatedAt)
	return err
}

func (r *CustomerRepository) GetByID(id string) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var c model.Customer
	err := r.DB.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.TotalSpend, &c.Visits, &c.LastActive, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("customer", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	return r.list(`SELECT `+customerColumns+` FROM customers`, nil)
}

// ListMatching resolves a segment audience: the compiled rule condition is
// executed against the customers table. Result order is whatever the query
// returns; callers must not rely on it.
func (r *CustomerRepository) ListMatching(rules []model.Rule) ([]model.Customer, error) {
	cond, args := segment.BuildFilter(rules)
	return r.list(`SELECT `+customerColumns+` FROM customers WHERE `+cond, args)
}

func (r *CustomerRepository) list(query string, args []interface{}) ([]model.Customer, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.TotalSpend, &c.Visits, &c.LastActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(c *model.Customer) error {
	query := `
        UPDATE customers
        SET name=$1, email=$2, phone=$3, total_spend=$4, visits=$5, last_active=$6
        WHERE id=$7
    `
	res, err := r.DB.Exec(query, c.Name, c.Email, c.Phone, c.TotalSpend, c.Visits, c.LastActive, c.ID)
	if err != nil {
		return err
	}
	return mustAffect(res, "customer", c.ID)
}

func (r *CustomerRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return mustAffect(res, "customer", id)
}

// mustAffect converts a zero-row write into a not-found error
func mustAffect(res sql.Result, resource, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewNotFound(resource, id)
	}
	return nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
