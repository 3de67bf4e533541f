package assistant

import (
	"context"
	"errors"
)

type StubService struct {
	GenerateDescriptionFunc func(ctx context.Context, title string) (string, error)
	SuggestTechnicianFunc   func(ctx context.Context, description string) (*TechnicianSuggestion, error)
	AnalyzePriorityFunc     func(ctx context.Context, description string) (string, error)
	EstimateTimeFunc        func(ctx context.Context, description string) (string, error)
	ModelInfo               ModelInfo
}

var _ Service = &StubService{}

func (s *StubService) GenerateDescription(ctx context.Context, title string) (string, error) {
	if s.GenerateDescriptionFunc == nil {
		return "", errors.New("GenerateDescription() not implemented by stub")
	}
	return s.GenerateDescriptionFunc(ctx, title)
}

func (s *StubService) SuggestTechnician(ctx context.Context, description string) (*TechnicianSuggestion, error) {
	if s.SuggestTechnicianFunc == nil {
		return nil, errors.New("SuggestTechnician() not implemented by stub")
	}
	return s.SuggestTechnicianFunc(ctx, description)
}

func (s *StubService) AnalyzePriority(ctx context.Context, description string) (string, error) {
	if s.AnalyzePriorityFunc == nil {
		return "", errors.New("AnalyzePriority() not implemented by stub")
	}
	return s.AnalyzePriorityFunc(ctx, description)
}

func (s *StubService) EstimateTime(ctx context.Context, description string) (string, error) {
	if s.EstimateTimeFunc == nil {
		return "", errors.New("EstimateTime() not implemented by stub")
	}
	return s.EstimateTimeFunc(ctx, description)
}

func (s *StubService) Model() ModelInfo {
	return s.ModelInfo
}
