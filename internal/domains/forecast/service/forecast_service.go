package service

import (
	"context"

	"distribution-oos-backend/internal/domains/forecast/model"
	"distribution-oos-backend/internal/domains/forecast/repository"
)

type Service interface {
	List(ctx context.Context) ([]model.DemandForecast, error)
	Lookup(ctx context.Context, distributorID, productID string) (*model.DemandForecast, error)
}

type forecastService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &forecastService{repo: repo}
}

func (s *forecastService) List(ctx context.Context) ([]model.DemandForecast, error) {
	return s.repo.List(ctx)
}

func (s *forecastService) Lookup(ctx context.Context, distributorID, productID string) (*model.DemandForecast, error) {
	return s.repo.Lookup(ctx, distributorID, productID)
}
