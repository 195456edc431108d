package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"distribution-oos-backend/internal/domains/planning/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.SourcePlan, error)
	GetByRequestID(ctx context.Context, requestID string) (*model.SourcePlan, error)
	// Replace xoá plan cũ của request (nếu có) rồi ghi plan mới
	Replace(ctx context.Context, plan model.SourcePlan) error
	DeleteByRequestID(ctx context.Context, requestID string) error
}

type MemoryRepository struct {
	mu    sync.RWMutex
	plans []model.SourcePlan
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(plans []model.SourcePlan) *MemoryRepository {
	return &MemoryRepository{plans: plans}
}

func NewSeededMemoryRepository() *MemoryRepository {
	return NewMemoryRepository(SeedPlans())
}

func SeedPlans() []model.SourcePlan {
	delivery := time.Now().Add(36 * time.Hour)
	return []model.SourcePlan{
		{
			RequestID: "cr1",
			Approved:  true,
			Sources: []model.SourceAllocation{
				{
					WarehouseID:       "w1",
					ProductID:         "p1",
					Quantity:          500,
					RouteID:           "r1",
					Cost:              decimal.NewFromInt(850),
					EstimatedDelivery: delivery,
				},
			},
			TotalCost:    decimal.NewFromInt(850),
			DeliveryDate: delivery,
			RiskAssessment: model.RiskAssessment{
				Level: model.RiskLow,
				Factors: []string{
					"Sufficient inventory at Petaluma facility",
					"Reliable route to SF",
					"Giants game confirmed attendance 40,000+",
				},
			},
			Alternatives: []model.AlternativePlan{
				{
					Description: "Split delivery from Oakland DC + Petaluma",
					Sources: []model.SourceAllocation{
						{WarehouseID: "w1", ProductID: "p1", Quantity: 300, RouteID: "r1", Cost: decimal.NewFromInt(510), EstimatedDelivery: delivery},
						{WarehouseID: "w2", ProductID: "p1", Quantity: 200, RouteID: "r5", Cost: decimal.NewFromInt(368), EstimatedDelivery: delivery},
					},
					Cost:         decimal.NewFromInt(878),
					DeliveryDate: delivery,
					Pros:         []string{"Load balancing", "Reduced single-point risk"},
					Cons:         []string{"Slightly higher cost", "Two delivery trucks needed"},
				},
			},
		},
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]model.SourcePlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.SourcePlan, len(r.plans))
	copy(out, r.plans)
	return out, nil
}

func (r *MemoryRepository) GetByRequestID(ctx context.Context, requestID string) (*model.SourcePlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plans {
		if p.RequestID == requestID {
			out := p
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: request %s", model.ErrPlanNotFound, requestID)
}

func (r *MemoryRepository) Replace(ctx context.Context, plan model.SourcePlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.plans[:0]
	for _, p := range r.plans {
		if p.RequestID != plan.RequestID {
			kept = append(kept, p)
		}
	}
	r.plans = append(kept, plan)
	return nil
}

func (r *MemoryRepository) DeleteByRequestID(ctx context.Context, requestID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.plans[:0]
	for _, p := range r.plans {
		if p.RequestID != requestID {
			kept = append(kept, p)
		}
	}
	r.plans = kept
	return nil
}
