package service

import (
	"context"
	"sync"
	"time"

	"distribution-oos-backend/internal/domains/metrics/model"
	requestmodel "distribution-oos-backend/internal/domains/request/model"
	requestrepo "distribution-oos-backend/internal/domains/request/repository"
	"distribution-oos-backend/pkg/cache"
	"distribution-oos-backend/pkg/logger"
)

const (
	snapshotCacheKey = "metrics:snapshot"
	snapshotCacheTTL = 5 * time.Minute
)

type Service interface {
	Snapshot(ctx context.Context) (model.Metrics, error)
	// RecomputeFromRequests tính lại các counter derived từ request set;
	// gọi sau mỗi submit/decision
	RecomputeFromRequests(ctx context.Context) error
	RecordRouteOptimization(ctx context.Context) error
}

type metricsService struct {
	mu       sync.RWMutex
	current  model.Metrics
	requests requestrepo.Repository
	cache    cache.Cache
}

func NewService(requests requestrepo.Repository, c cache.Cache) Service {
	return &metricsService{
		current:  model.SeedMetrics(),
		requests: requests,
		cache:    c,
	}
}

func (s *metricsService) Snapshot(ctx context.Context) (model.Metrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func (s *metricsService) RecomputeFromRequests(ctx context.Context) error {
	all, err := s.requests.List(ctx)
	if err != nil {
		return err
	}

	total := len(all)
	approved := 0
	rejected := 0
	for _, r := range all {
		switch r.Status {
		case requestmodel.StatusApproved:
			approved++
		case requestmodel.StatusRejected:
			rejected++
		}
	}

	s.mu.Lock()
	s.current.TotalRequests = total
	s.current.ApprovedRequests = approved
	s.current.RejectedRequests = rejected
	if total > 0 {
		s.current.FulfillmentRate = float64(approved) / float64(total) * 100
	} else {
		s.current.FulfillmentRate = 0
	}
	snapshot := s.current
	s.mu.Unlock()

	s.writeThrough(ctx, snapshot)
	return nil
}

func (s *metricsService) RecordRouteOptimization(ctx context.Context) error {
	s.mu.Lock()
	s.current.CostOptimization += 3.5
	s.current.RouteEfficiency += 4.2
	if s.current.RouteEfficiency > 98 {
		s.current.RouteEfficiency = 98
	}
	snapshot := s.current
	s.mu.Unlock()

	s.writeThrough(ctx, snapshot)
	return nil
}

func (s *metricsService) writeThrough(ctx context.Context, snapshot model.Metrics) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, snapshotCacheKey, snapshot, snapshotCacheTTL); err != nil {
		logger.Warn("metrics snapshot cache set failed", map[string]interface{}{"error": err.Error()})
	}
}
