// internal/service/segment_service.go
package service

import (
	appErrors "github.com/minicrm/backend/internal/errors"
	"github.com/minicrm/backend/internal/model"
	"github.com/minicrm/backend/internal/repository"
	"github.com/minicrm/backend/internal/segment"
)

type SegmentService struct {
	SegmentRepo  repository.SegmentRepositoryInterface
	CustomerRepo repository.CustomerRepositoryInterface
}

func (s *SegmentService) CreateSegment(name string, rules []model.Rule) (*model.Segment, error) {
	if name == "" {
		return nil, appErrors.NewValidation("segment name is required")
	}
	if err := segment.ValidateRules(rules); err != nil {
		return nil, err
	}

	seg := &model.Segment{Name: name, Rules: rules}
	if err := s.SegmentRepo.Create(seg); err != nil {
		return nil, err
	}
	return seg, nil
}

func (s *SegmentService) UpdateSegment(id, name string, rules []model.Rule) (*model.Segment, error) {
	if name == "" {
		return nil, appErrors.NewValidation("segment name is required")
	}
	if err := segment.ValidateRules(rules); err != nil {
		return nil, err
	}

	seg, err := s.SegmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	seg.Name = name
	seg.Rules = rules
	if err := s.SegmentRepo.Update(seg); err != nil {
		return nil, err
	}
	return seg, nil
}

// PreviewAudience resolves the customers currently matching a segment's rules
func (s *SegmentService) PreviewAudience(id string) ([]model.Customer, error) {
	seg, err := s.SegmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.CustomerRepo.ListMatching(seg.Rules)
}
