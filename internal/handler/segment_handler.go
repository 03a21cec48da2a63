// internal/handler/segment_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/minicrm/backend/internal/model"
	"github.com/minicrm/backend/internal/repository"
	"github.com/minicrm/backend/internal/service"
)

type SegmentHandler struct {
	Repo    repository.SegmentRepositoryInterface
	Service *service.SegmentService
}

func (h *SegmentHandler) ListSegments(w http.ResponseWriter, r *http.Request) {
	segments, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, segments)
}

func (h *SegmentHandler) GetSegment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	seg, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seg)
}

func (h *SegmentHandler) CreateSegment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string       `json:"name"`
		Rules []model.Rule `json:"rules"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seg, err := h.Service.CreateSegment(body.Name, body.Rules)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, seg)
}

func (h *SegmentHandler) UpdateSegment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Name  string       `json:"name"`
		Rules []model.Rule `json:"rules"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seg, err := h.Service.UpdateSegment(id, body.Name, body.Rules)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seg)
}

func (h *SegmentHandler) DeleteSegment(w http.ResponseWriter, r *http.Request) {
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

// PreviewAudience handles GET /segments/{id}/audience
func (h *SegmentHandler) PreviewAudience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	audience, err := h.Service.PreviewAudience(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(audience),
		"customers": audience,
	})
}
