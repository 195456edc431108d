package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"distribution-oos-backend/internal/domains/forecast/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.DemandForecast, error)
	// Lookup theo cặp (distributor, product); ErrForecastNotFound nếu không có data
	Lookup(ctx context.Context, distributorID, productID string) (*model.DemandForecast, error)
}

type MemoryRepository struct {
	mu        sync.RWMutex
	forecasts []model.DemandForecast
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(forecasts []model.DemandForecast) *MemoryRepository {
	return &MemoryRepository{forecasts: forecasts}
}

func NewSeededMemoryRepository() *MemoryRepository {
	return NewMemoryRepository(SeedForecasts())
}

func SeedForecasts() []model.DemandForecast {
	return []model.DemandForecast{
		{
			DistributorID:   "d1",
			ProductID:       "p1",
			ForecastDate:    time.Now().Add(7 * 24 * time.Hour),
			PredictedDemand: 1200,
			Confidence:      0.87,
			Factors: []model.ForecastFactor{
				{Type: model.FactorSeasonal, Impact: 0.15, Description: "Summer season increase", Confidence: 0.9},
				{Type: model.FactorEvent, Impact: 0.25, Description: "Local sports events", Confidence: 0.8},
			},
			HistoricalAccuracy: 0.84,
			SeasonalTrend:      model.TrendIncreasing,
		},
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]model.DemandForecast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.DemandForecast, len(r.forecasts))
	copy(out, r.forecasts)
	return out, nil
}

func (r *MemoryRepository) Lookup(ctx context.Context, distributorID, productID string) (*model.DemandForecast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.forecasts {
		if f.DistributorID == distributorID && f.ProductID == productID {
			out := f
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", model.ErrForecastNotFound, distributorID, productID)
}
