package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distribution-oos-backend/internal/domains/catalog/model"
	"distribution-oos-backend/internal/domains/catalog/repository"
)

type recorderSpy struct {
	calls int
}

func (r *recorderSpy) RecordRouteOptimization(ctx context.Context) error {
	r.calls++
	return nil
}

func TestCatalogService_OptimizeRoutes(t *testing.T) {
	repo := repository.NewSeededMemoryRepository()
	spy := &recorderSpy{}
	svc := NewService(repo, nil, spy)

	routes, err := svc.OptimizeRoutes(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, routes)

	var r1 *model.Route
	for i := range routes {
		if routes[i].ID == "r1" {
			r1 = &routes[i]
		}
	}
	require.NotNil(t, r1)

	// cost: max(850×0.85, 850−200) = 722.5
	assert.True(t, r1.Cost.Equal(decimal.RequireFromString("722.5")), "got %s", r1.Cost)
	// time: max(1.5×0.9, 1.5−0.3) = 1.35
	assert.InDelta(t, 1.35, r1.EstimatedTimeHours, 0.0001)
	// reliability: min(98+2, 99)
	assert.Equal(t, 99, r1.Reliability)

	assert.Equal(t, 1, spy.calls)

	// kết quả phải được persist lại repo
	stored, err := repo.RouteBetween(context.Background(), "w1", "d1")
	require.NoError(t, err)
	assert.True(t, stored.Cost.Equal(decimal.RequireFromString("722.5")))
}

func TestCatalogService_OptimizeRoutesLargeCostUsesFloor(t *testing.T) {
	repo := repository.NewMemoryRepository(
		repository.SeedProducts(),
		repository.SeedDistributors(),
		repository.SeedWarehouses(),
		[]model.Route{
			{ID: "rx", FromWarehouseID: "w1", ToDistributorID: "d1", EstimatedTimeHours: 10, Cost: decimal.NewFromInt(5000), Reliability: 90},
		},
	)
	svc := NewService(repo, nil, nil)

	routes, err := svc.OptimizeRoutes(context.Background())
	require.NoError(t, err)
	require.Len(t, routes, 1)

	// với cost lớn, giảm 15% tệ hơn trừ thẳng 200: max(4250, 4800) = 4800
	assert.True(t, routes[0].Cost.Equal(decimal.NewFromInt(4800)), "got %s", routes[0].Cost)
	// time: max(9, 9.7) = 9.7
	assert.InDelta(t, 9.7, routes[0].EstimatedTimeHours, 0.0001)
}

func TestCatalogService_WarehousesHolding(t *testing.T) {
	svc := NewService(repository.NewSeededMemoryRepository(), nil, nil)

	holding, err := svc.WarehousesHolding(context.Background(), "p1")
	require.NoError(t, err)

	ids := make([]string, 0, len(holding))
	for _, w := range holding {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"w1", "w3", "w4"}, ids)
}
