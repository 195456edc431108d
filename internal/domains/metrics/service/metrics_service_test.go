package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestrepo "distribution-oos-backend/internal/domains/request/repository"
)

func TestMetricsService_SeedSnapshot(t *testing.T) {
	svc := NewService(requestrepo.NewSeededMemoryRepository(), nil)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, snapshot.TotalRequests)
	assert.Equal(t, 1, snapshot.ApprovedRequests)
	assert.InDelta(t, 94.7, snapshot.RouteEfficiency, 0.001)
}

func TestMetricsService_RecomputeFromRequests(t *testing.T) {
	svc := NewService(requestrepo.NewSeededMemoryRepository(), nil)

	require.NoError(t, svc.RecomputeFromRequests(context.Background()))

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	// seed request set: cr1 approved, cr2/cr3 pending, cr4 analyzing
	assert.Equal(t, 4, snapshot.TotalRequests)
	assert.Equal(t, 1, snapshot.ApprovedRequests)
	assert.Equal(t, 0, snapshot.RejectedRequests)
	assert.InDelta(t, 25.0, snapshot.FulfillmentRate, 0.001)
	// counter không liên quan request giữ nguyên
	assert.InDelta(t, 18.5, snapshot.CostOptimization, 0.001)
}

func TestMetricsService_RecomputeEmptySet(t *testing.T) {
	svc := NewService(requestrepo.NewMemoryRepository(nil), nil)

	require.NoError(t, svc.RecomputeFromRequests(context.Background()))

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.TotalRequests)
	assert.Zero(t, snapshot.FulfillmentRate)
}

func TestMetricsService_RecordRouteOptimization(t *testing.T) {
	svc := NewService(requestrepo.NewSeededMemoryRepository(), nil)

	require.NoError(t, svc.RecordRouteOptimization(context.Background()))

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 22.0, snapshot.CostOptimization, 0.001)
	// 94.7 + 4.2 vượt cap 98
	assert.InDelta(t, 98.0, snapshot.RouteEfficiency, 0.001)

	// lần thứ hai vẫn giữ cap
	require.NoError(t, svc.RecordRouteOptimization(context.Background()))
	snapshot, err = svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 25.5, snapshot.CostOptimization, 0.001)
	assert.InDelta(t, 98.0, snapshot.RouteEfficiency, 0.001)
}
