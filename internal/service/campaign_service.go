// internal/service/campaign_service.go
package service

import (
	"time"

	"github.com/google/uuid"

	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
	"github.com/minicrm/backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	SegmentRepo  repository.SegmentRepositoryInterface
	CustomerRepo repository.CustomerRepositoryInterface
	LogRepo      repository.CampaignLogRepositoryInterface
	Delivery     Simulator
}

// SendResult reports one finished dispatch
type SendResult struct {
	CampaignID string `json:"campaign_id"`
	Count      int    `json:"count"`
}

func (s *CampaignService) CreateCampaign(name, message, segmentID string) (*model.Campaign, error) {
	c := &model.Campaign{
		Name:      name,
		Message:   message,
		SegmentID: segmentID,
		Status:    model.CampaignStatusDraft,
	}
	if err := c.Validate(); err != nil {
		return nil, appErrors.NewValidation("%v", err)
	}

	// the target segment must exist before a draft can reference it
	if _, err := s.SegmentRepo.GetByID(segmentID); err != nil {
		return nil, err
	}

	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) ListCampaigns() ([]model.Campaign, error) {
	return s.CampaignRepo.ListAll()
}

func (s *CampaignService) GetCampaign(id string) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

func (s *CampaignService) DeleteCampaign(id string) error {
	return s.CampaignRepo.Delete(id)
}

// SendCampaign runs the one-time dispatch of a draft campaign: resolve the
// audience, simulate one delivery per customer, then persist every log and
// the draft -> sent transition atomically. The returned count is the audience
// size; simulated failures are recorded in the logs, not surfaced as errors.
func (s *CampaignService) SendCampaign(campaignID string) (*SendResult, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.CanSend() {
		return nil, appErrors.NewAlreadySent(campaignID)
	}

	seg, err := s.SegmentRepo.GetByID(campaign.SegmentID)
	if err != nil {
		return nil, err
	}

	audience, err := s.CustomerRepo.ListMatching(seg.Rules)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	logs := make([]model.CampaignLog, 0, len(audience))
	for _, customer := range audience {
		message := RenderDelivery(campaign.Message, customer.Name)

		status := model.LogStatusSent
		if !s.Delivery.Deliver(message) {
			status = model.LogStatusFailed
		}

		logs = append(logs, model.CampaignLog{
			ID:         uuid.NewString(),
			CampaignID: campaign.ID,
			CustomerID: customer.ID,
			Message:    message,
			Status:     status,
			Timestamp:  now,
		})
	}

	if err := s.CampaignRepo.CompleteSend(campaign.ID, now, logs); err != nil {
		return nil, err
	}

	return &SendResult{CampaignID: campaign.ID, Count: len(logs)}, nil
}

// Logs returns the delivery snapshot of a campaign
func (s *CampaignService) Logs(campaignID string) ([]model.CampaignLog, error) {
	return s.LogRepo.ListByCampaign(campaignID)
}
