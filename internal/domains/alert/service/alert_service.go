package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"distribution-oos-backend/internal/domains/alert/model"
	"distribution-oos-backend/internal/domains/alert/repository"
	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
	"distribution-oos-backend/pkg/logger"
)

type Service interface {
	List(ctx context.Context) ([]model.Alert, error)
	Resolve(ctx context.Context, id string) (*model.Alert, error)
	// ScanInventory quét distributor inventory, raise inventory_low alert
	// cho stock dưới reorder point; chạy theo cron ở worker
	ScanInventory(ctx context.Context) (int, error)
}

type alertService struct {
	repo    repository.Repository
	catalog catalogrepo.Repository
}

func NewService(repo repository.Repository, catalog catalogrepo.Repository) Service {
	return &alertService{repo: repo, catalog: catalog}
}

func (s *alertService) List(ctx context.Context) ([]model.Alert, error) {
	return s.repo.List(ctx)
}

func (s *alertService) Resolve(ctx context.Context, id string) (*model.Alert, error) {
	return s.repo.Resolve(ctx, id)
}

func (s *alertService) ScanInventory(ctx context.Context) (int, error) {
	distributors, err := s.catalog.ListDistributors(ctx)
	if err != nil {
		return 0, err
	}

	raised := 0
	for _, d := range distributors {
		for _, inv := range d.CurrentInventory {
			if inv.CurrentStock >= inv.ReorderPoint {
				continue
			}
			exists, err := s.repo.HasUnresolved(ctx, model.AlertInventoryLow, d.ID)
			if err != nil {
				return raised, err
			}
			if exists {
				continue
			}

			product, err := s.catalog.GetProduct(ctx, inv.ProductID)
			if err != nil {
				logger.Warn("inventory scan skipped unknown product", map[string]interface{}{
					"distributor_id": d.ID,
					"product_id":     inv.ProductID,
				})
				continue
			}

			alert := model.Alert{
				ID:        "a-" + uuid.NewString(),
				Type:      model.AlertInventoryLow,
				Severity:  model.SeverityWarning,
				Message:   fmt.Sprintf("%s: %s stock below reorder point (%d units)", d.Name, product.Name, inv.CurrentStock),
				EntityID:  d.ID,
				Timestamp: time.Now(),
				Resolved:  false,
				Actions:   []string{"Increase next delivery", "Contact distributor"},
			}
			if err := s.repo.Create(ctx, alert); err != nil {
				return raised, err
			}
			raised++
		}
	}
	return raised, nil
}
