// internal/handler/customer_handler.go
package handler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
	"github.com/minicrm/backend/internal/repository"
)

type CustomerHandler struct {
	Repo repository.CustomerRepositoryInterface
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	customer.ID = ""

	if err := customer.Validate(); err != nil {
		writeError(w, appErrors.NewValidation("%v", err))
		return
	}

	if err := h.Repo.Create(&customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var customer model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	customer.ID = id

	if err := customer.Validate(); err != nil {
		writeError(w, appErrors.NewValidation("%v", err))
		return
	}
	if customer.LastActive.IsZero() {
		customer.LastActive = time.Now()
	}

	if err := h.Repo.Update(&customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
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

var csvHeader = []string{"name", "email", "phone", "total_spend", "visits", "last_active"}

// ImportCustomers handles POST /customers/import. The body is a CSV file
// with a header row; all rows are validated before anything is written, so a
// bad file has no side effects.
func (h *CustomerHandler) ImportCustomers(w http.ResponseWriter, r *http.Request) {
	reader := csv.NewReader(r.Body)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid CSV: "+err.Error())
		return
	}
	if len(records) < 2 {
		writeErrorMessage(w, http.StatusBadRequest, "CSV must contain a header row and at least one customer")
		return
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, required := range []string{"name", "email", "phone"} {
		if _, ok := cols[required]; !ok {
			writeErrorMessage(w, http.StatusBadRequest, "CSV header must include "+required)
			return
		}
	}

	customers := make([]model.Customer, 0, len(records)-1)
	for i, row := range records[1:] {
		c, err := customerFromRow(cols, row)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, fmt.Sprintf("row %d: %v", i+2, err))
			return
		}
		customers = append(customers, *c)
	}

	for i := range customers {
		if err := h.Repo.Create(&customers[i]); err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]int{"imported": len(customers)})
}

func customerFromRow(cols map[string]int, row []string) (*model.Customer, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	c := &model.Customer{
		Name:  field("name"),
		Email: field("email"),
		Phone: field("phone"),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if v := field("total_spend"); v != "" {
		spend, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid total_spend %q", v)
		}
		c.TotalSpend = spend
	}
	if v := field("visits"); v != "" {
		visits, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid visits %q", v)
		}
		c.Visits = visits
	}
	if v := field("last_active"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid last_active %q", v)
		}
		c.LastActive = t
	}
	return c, nil
}

// ExportCustomers handles GET /customers/export as a CSV download
func (h *CustomerHandler) ExportCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)

	writer := csv.NewWriter(w)
	writer.Write(csvHeader)
	for _, c := range customers {
		writer.Write([]string{
			c.Name,
			c.Email,
			c.Phone,
			strconv.FormatFloat(c.TotalSpend, 'f', -1, 64),
			strconv.Itoa(c.Visits),
			c.LastActive.Format(time.RFC3339),
		})
	}
	writer.Flush()
}
