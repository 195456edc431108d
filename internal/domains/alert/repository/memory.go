package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"distribution-oos-backend/internal/domains/alert/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.Alert, error)
	Create(ctx context.Context, alert model.Alert) error
	Resolve(ctx context.Context, id string) (*model.Alert, error)
	// HasUnresolved check đã có alert chưa resolve cùng type+entity chưa,
	// để scan không tạo trùng
	HasUnresolved(ctx context.Context, alertType model.AlertType, entityID string) (bool, error)
}

type MemoryRepository struct {
	mu     sync.RWMutex
	alerts []model.Alert
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(alerts []model.Alert) *MemoryRepository {
	return &MemoryRepository{alerts: alerts}
}

func NewSeededMemoryRepository() *MemoryRepository {
	return NewMemoryRepository(SeedAlerts())
}

func SeedAlerts() []model.Alert {
	now := time.Now()
	return []model.Alert{
		{
			ID:        "a1",
			Type:      model.AlertInventoryLow,
			Severity:  model.SeverityWarning,
			Message:   "Bay Area Premium Beverages: Premium Lager stock below reorder point (850 units) - Giants home series this week",
			EntityID:  "d1",
			Timestamp: now,
			Resolved:  false,
			Actions:   []string{"Increase next delivery", "Contact distributor", "Review Giants schedule impact"},
		},
		{
			ID:        "a2",
			Type:      model.AlertDemandSpike,
			Severity:  model.SeverityCritical,
			Message:   "Golden Gate Distribution: RTD Cocktail demand 40% above forecast - Fishermans Wharf tourism surge",
			EntityID:  "d2",
			Timestamp: now.Add(-30 * time.Minute),
			Resolved:  false,
			Actions:   []string{"Analyze tourist patterns", "Expedite shipment", "Update forecast model"},
		},
		{
			ID:        "a3",
			Type:      model.AlertRouteDisruption,
			Severity:  model.SeverityWarning,
			Message:   "Oakland to SF route experiencing delays due to Bay Bridge construction - expect 30min additional transit time",
			EntityID:  "r2",
			Timestamp: now.Add(-1 * time.Hour),
			Resolved:  false,
			Actions:   []string{"Use alternate route via San Rafael Bridge", "Notify distributors", "Update delivery ETA"},
		},
		{
			ID:        "a4",
			Type:      model.AlertCreditLimit,
			Severity:  model.SeverityInfo,
			Message:   "Silicon Valley Spirits Co approaching credit limit (78% utilized) - review payment terms",
			EntityID:  "d3",
			Timestamp: now.Add(-2 * time.Hour),
			Resolved:  false,
			Actions:   []string{"Contact accounts receivable", "Review payment history", "Consider credit extension"},
		},
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Alert, len(r.alerts))
	copy(out, r.alerts)
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, alert model.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
	return nil
}

func (r *MemoryRepository) Resolve(ctx context.Context, id string) (*model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].Resolved = true
			out := r.alerts[i]
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrAlertNotFound, id)
}

func (r *MemoryRepository) HasUnresolved(ctx context.Context, alertType model.AlertType, entityID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.alerts {
		if !a.Resolved && a.Type == alertType && a.EntityID == entityID {
			return true, nil
		}
	}
	return false, nil
}
