package service

import (
	"context"

	"distribution-oos-backend/internal/domains/planning/model"
	"distribution-oos-backend/internal/domains/planning/repository"
)

type PlanService interface {
	ListPlans(ctx context.Context) ([]model.SourcePlan, error)
	GetPlanByRequestID(ctx context.Context, requestID string) (*model.SourcePlan, error)
}

type planService struct {
	repo repository.Repository
}

func NewPlanService(repo repository.Repository) PlanService {
	return &planService{repo: repo}
}

func (s *planService) ListPlans(ctx context.Context) ([]model.SourcePlan, error) {
	return s.repo.List(ctx)
}

func (s *planService) GetPlanByRequestID(ctx context.Context, requestID string) (*model.SourcePlan, error) {
	return s.repo.GetByRequestID(ctx, requestID)
}
