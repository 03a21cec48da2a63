// internal/handler/order_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
	"github.com/minicrm/backend/internal/repository"
)

type OrderHandler struct {
	Repo         repository.OrderRepositoryInterface
	CustomerRepo repository.CustomerRepositoryInterface
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerID string     `json:"customer_id"`
		Amount     float64    `json:"amount"`
		OrderDate  *time.Time `json:"order_date"`
		Status     string     `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.CustomerID == "" {
		writeError(w, appErrors.NewValidation("order customer_id is required"))
		return
	}

	// the referenced customer must exist
	if _, err := h.CustomerRepo.GetByID(body.CustomerID); err != nil {
		writeError(w, err)
		return
	}

	order := &model.Order{
		CustomerID: body.CustomerID,
		Amount:     body.Amount,
		Status:     body.Status,
	}
	if body.OrderDate != nil {
		order.OrderDate = *body.OrderDate
	}

	if err := h.Repo.Create(order); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Amount    *float64   `json:"amount"`
		OrderDate *time.Time `json:"order_date"`
		Status    *string    `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Amount != nil {
		order.Amount = *body.Amount
	}
	if body.OrderDate != nil {
		order.OrderDate = *body.OrderDate
	}
	if body.Status != nil {
		order.Status = *body.Status
	}

	if err := h.Repo.Update(order); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Repo.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
