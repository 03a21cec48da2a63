// internal/handler/respond.go
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	appErrors "github.com/minicrm/backend/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps service and repository errors onto the response taxonomy:
// validation and malformed ids are 400, missing records 404, state conflicts
// 400, everything else a logged 500 with a generic body.
func writeError(w http.ResponseWriter, err error) {
	var notFound *appErrors.ErrNotFound
	var invalidID *appErrors.ErrInvalidID
	var alreadySent *appErrors.ErrAlreadySent
	var validation *appErrors.ErrValidation

	switch {
	case errors.As(err, &invalidID), errors.As(err, &validation):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &alreadySent):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	default:
		log.Println("❌ internal error:", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID extracts and validates the {id} route parameter
func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", appErrors.NewInvalidID(id)
	}
	return id, nil
}
