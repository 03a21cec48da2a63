package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/minicrm/backend/internal/handler"
	"github.com/minicrm/backend/internal/model"
)

// StoringCustomerRepo keeps created customers so import tests can inspect them
type StoringCustomerRepo struct {
	MockCustomerRepo
	created []model.Customer
}

func (m *StoringCustomerRepo) Create(c *model.Customer) error {
	if c.ID == "" {
		c.ID = "cust-created"
	}
	m.created = append(m.created, *c)
	return nil
}

func newCustomerRouter(repo *StoringCustomerRepo) *chi.Mux {
	h := &handler.CustomerHandler{Repo: repo}
	r := chi.NewRouter()
	r.Post("/customers", h.CreateCustomer)
	r.Get("/customers", h.ListCustomers)
	r.Post("/customers/import", h.ImportCustomers)
	r.Get("/customers/export", h.ExportCustomers)
	return r
}

func TestCreateCustomerValidation(t *testing.T) {
	r := newCustomerRouter(&StoringCustomerRepo{})

	body, _ := json.Marshal(map[string]string{"name": "Ana"})
	req := httptest.NewRequest("POST", "/customers", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email/phone, got %d", w.Code)
	}
}

func TestImportCustomersCSV(t *testing.T) {
	repo := &StoringCustomerRepo{}
	r := newCustomerRouter(repo)

	csv := strings.Join([]string{
		"name,email,phone,total_spend,visits",
		"Ana,ana@example.com,+254700000001,1250.50,12",
		"Brian,brian@example.com,+254700000002,430,3",
	}, "\n")

	req := httptest.NewRequest("POST", "/customers/import", strings.NewReader(csv))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var res map[string]int
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res["imported"] != 2 {
		t.Errorf("expected 2 imported, got %d", res["imported"])
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected 2 customers created, got %d", len(repo.created))
	}
	if repo.created[0].Name != "Ana" || repo.created[0].Visits != 12 {
		t.Errorf("unexpected first customer: %+v", repo.created[0])
	}
}

func TestImportCustomersBadRowHasNoSideEffects(t *testing.T) {
	repo := &StoringCustomerRepo{}
	r := newCustomerRouter(repo)

	csv := strings.Join([]string{
		"name,email,phone,visits",
		"Ana,ana@example.com,+254700000001,12",
		"Brian,brian@example.com,+254700000002,lots",
	}, "\n")

	req := httptest.NewRequest("POST", "/customers/import", strings.NewReader(csv))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(repo.created) != 0 {
		t.Errorf("a rejected import must create nothing, got %d", len(repo.created))
	}
}

func TestExportCustomersCSV(t *testing.T) {
	repo := &StoringCustomerRepo{}
	repo.customers = []model.Customer{
		{ID: "cust-1", Name: "Ana", Email: "ana@example.com", Phone: "+254700000001", TotalSpend: 1250.5, Visits: 12, LastActive: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
	}
	r := newCustomerRouter(repo)

	req := httptest.NewRequest("GET", "/customers/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "name,email,phone,total_spend,visits,last_active" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Ana,ana@example.com,") {
		t.Errorf("unexpected row: %q", lines[1])
	}
}
