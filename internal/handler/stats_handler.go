// internal/handler/stats_handler.go
package handler

import (
	"net/http"

	"github.com/minicrm/backend/internal/repository"
)

type StatsHandler struct {
	Repo *repository.StatsRepository
}

// Overview handles GET /stats for the dashboard
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Repo.Overview()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
