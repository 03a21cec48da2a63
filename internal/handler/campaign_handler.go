// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/service"
)

// CampaignHandler holds the dependencies for campaign-related HTTP handlers
type CampaignHandler struct {
	Service *service.CampaignService
}

// CreateCampaign handles POST /campaigns
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name      string `json:"name"`
		Message   string `json:"message"`
		SegmentID string `json:"segment_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := h.Service.CreateCampaign(body.Name, body.Message, body.SegmentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

// ListCampaigns handles GET /campaigns; each campaign carries its segment
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.ListCampaigns()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// GetCampaign handles GET /campaigns/{id}
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	campaign, err := h.Service.GetCampaign(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /campaigns/{id}; logs cascade with it
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.DeleteCampaign(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SendCampaign handles POST /campaigns/{id}/send. A missing campaign and an
// already-sent one both answer 400, as callers treat them the same way.
func (h *CampaignHandler) SendCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.Service.SendCampaign(id)
	if err != nil {
		var notFound *appErrors.ErrNotFound
		if errors.As(err, &notFound) && notFound.Resource == "campaign" {
			writeErrorMessage(w, http.StatusBadRequest, "campaign already sent or not found")
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   result.Count,
	})
}

// ListLogs handles GET /campaigns/{id}/logs with each log's customer resolved
func (h *CampaignHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	logs, err := h.Service.Logs(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
