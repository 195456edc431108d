package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"distribution-oos-backend/internal/domains/catalog/model"
	"distribution-oos-backend/internal/domains/catalog/repository"
	"distribution-oos-backend/pkg/cache"
	"distribution-oos-backend/pkg/logger"
)

const (
	productListCacheKey = "catalog:products"
	productListCacheTTL = 5 * time.Minute
)

// Route optimization tuning (network optimizer pass)
var (
	optimizeCostFactor    = decimal.NewFromFloat(0.85)
	optimizeCostFloor     = decimal.NewFromInt(200)
	optimizeTimeFactor    = 0.9
	optimizeTimeFloorHRS  = 0.3
	optimizeReliabilityPt = 2
	maxReliability        = 99
)

// OptimizationRecorder nhận thông báo mỗi lần optimization pass chạy xong
// để cập nhật aggregate metrics
type OptimizationRecorder interface {
	RecordRouteOptimization(ctx context.Context) error
}

type catalogService struct {
	repo     repository.Repository
	cache    cache.Cache
	recorder OptimizationRecorder
}

func NewService(repo repository.Repository, c cache.Cache, recorder OptimizationRecorder) Service {
	return &catalogService{repo: repo, cache: c, recorder: recorder}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	if s.cache != nil {
		var cached []model.Product
		if found, err := s.cache.Get(ctx, productListCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, productListCacheKey, products, productListCacheTTL); err != nil {
			logger.Warn("product list cache set failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *catalogService) ListDistributors(ctx context.Context) ([]model.Distributor, error) {
	return s.repo.ListDistributors(ctx)
}

func (s *catalogService) GetDistributor(ctx context.Context, id string) (*model.Distributor, error) {
	return s.repo.GetDistributor(ctx, id)
}

func (s *catalogService) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return s.repo.ListWarehouses(ctx)
}

func (s *catalogService) GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error) {
	return s.repo.GetWarehouse(ctx, id)
}

func (s *catalogService) WarehousesHolding(ctx context.Context, productID string) ([]model.Warehouse, error) {
	return s.repo.WarehousesHolding(ctx, productID)
}

func (s *catalogService) ListRoutes(ctx context.Context) ([]model.Route, error) {
	return s.repo.ListRoutes(ctx)
}

func (s *catalogService) RouteBetween(ctx context.Context, warehouseID, distributorID string) (*model.Route, error) {
	return s.repo.RouteBetween(ctx, warehouseID, distributorID)
}

// OptimizeRoutes cải thiện cost/time/reliability cho mỗi route:
// cost giảm 15% nhưng không quá 200, time giảm 10% nhưng không quá 0.3h,
// reliability +2 cap 99.
func (s *catalogService) OptimizeRoutes(ctx context.Context) ([]model.Route, error) {
	routes, err := s.repo.ListRoutes(ctx)
	if err != nil {
		return nil, err
	}

	for i := range routes {
		scaled := routes[i].Cost.Mul(optimizeCostFactor)
		floored := routes[i].Cost.Sub(optimizeCostFloor)
		if scaled.GreaterThan(floored) {
			routes[i].Cost = scaled
		} else {
			routes[i].Cost = floored
		}

		scaledTime := routes[i].EstimatedTimeHours * optimizeTimeFactor
		flooredTime := routes[i].EstimatedTimeHours - optimizeTimeFloorHRS
		if scaledTime > flooredTime {
			routes[i].EstimatedTimeHours = scaledTime
		} else {
			routes[i].EstimatedTimeHours = flooredTime
		}

		routes[i].Reliability += optimizeReliabilityPt
		if routes[i].Reliability > maxReliability {
			routes[i].Reliability = maxReliability
		}
	}

	if err := s.repo.UpdateRoutes(ctx, routes); err != nil {
		return nil, err
	}

	if s.recorder != nil {
		if err := s.recorder.RecordRouteOptimization(ctx); err != nil {
			logger.Warn("route optimization metrics update failed", map[string]interface{}{"error": err.Error()})
		}
	}

	logger.Info("routes optimized", map[string]interface{}{"count": len(routes)})
	return routes, nil
}
