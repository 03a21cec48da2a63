// internal/repository/order_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
)

type OrderRepositoryInterface interface {
	Create(o *model.Order) error
	GetByID(id string) (*model.Order, error)
	ListAll() ([]model.Order, error)
	Update(o *model.Order) error
	Delete(id string) error
}

type OrderRepository struct {
	DB *sql.DB
}

func (r *OrderRepository) Create(o *model.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	o.CreatedAt = time.Now()

	query := `
        INSERT INTO orders (id, customer_id, amount, order_date, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.DB.Exec(query, o.ID, o.CustomerID, o.Amount, o.OrderDate, o.Status, o.CreatedAt)
	return err
}

func (r *OrderRepository) GetByID(id string) (*model.Order, error) {
	query := `
        SELECT o.id, o.customer_id, o.amount, o.order_date, o.status, o.created_at,
               c.id, c.name, c.email, c.phone, c.total_spend, c.visits, c.last_active, c.created_at
        FROM orders o
        JOIN customers c ON c.id = o.customer_id
        WHERE o.id = $1
    `
	var o model.Order
	var cust model.Customer
	err := r.DB.QueryRow(query, id).Scan(
		&o.ID, &o.CustomerID, &o.Amount, &o.OrderDate, &o.Status, &o.CreatedAt,
		&cust.ID, &cust.Name, &cust.Email, &cust.Phone, &cust.TotalSpend, &cust.Visits, &cust.LastActive, &cust.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("order", id)
		}
		return nil, err
	}
	o.Customer = &cust
	return &o, nil
}

// ListAll returns every order with its customer resolved
func (r *OrderRepository) ListAll() ([]model.Order, error) {
	query := `
        SELECT o.id, o.customer_id, o.amount, o.order_date, o.status, o.created_at,
               c.id, c.name, c.email, c.phone, c.total_spend, c.visits, c.last_active, c.created_at
        FROM orders o
        JOIN customers c ON c.id = o.customer_id
        ORDER BY o.order_date DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		var cust model.Customer
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.Amount, &o.OrderDate, &o.Status, &o.CreatedAt,
			&cust.ID, &cust.Name, &cust.Email, &cust.Phone, &cust.TotalSpend, &cust.Visits, &cust.LastActive, &cust.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Customer = &cust
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Update(o *model.Order) error {
	query := `
        UPDATE orders
        SET amount=$1, order_date=$2, status=$3
        WHERE id=$4
    `
	res, err := r.DB.Exec(query, o.Amount, o.OrderDate, o.Status, o.ID)
	if err != nil {
		return err
	}
	return mustAffect(res, "order", o.ID)
}

func (r *OrderRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return mustAffect(res, "order", id)
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)
