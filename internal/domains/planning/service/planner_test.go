package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmodel "distribution-oos-backend/internal/domains/catalog/model"
	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
)

var testNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestPlanner_SingleSourceFullFulfillment(t *testing.T) {
	planner := NewPlannerWithClock(catalogrepo.NewSeededMemoryRepository(), fixedClock)

	// d1 nhận p1: chỉ w1 có route (r1, cost 850); w3/w4 giữ p1 nhưng
	// không có route tới d1 nên bị loại
	result, err := planner.PlanSources(context.Background(), "d1", "p1", 1000, 1500)
	require.NoError(t, err)

	require.Len(t, result.Sources, 1)
	alloc := result.Sources[0]
	assert.Equal(t, "w1", alloc.WarehouseID)
	assert.Equal(t, "r1", alloc.RouteID)
	assert.Equal(t, 500, alloc.Quantity)
	assert.True(t, alloc.Cost.Equal(decimal.NewFromInt(850)), "cost = %s", alloc.Cost)

	assert.Equal(t, 500, result.FulfilledQty)
	assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(850)))
	// ETA 1.5h < floor 24h nên delivery date giữ floor
	assert.Equal(t, testNow.Add(24*time.Hour), result.DeliveryDate)
}

func TestPlanner_NoRouteMeansNoAllocation(t *testing.T) {
	planner := NewPlannerWithClock(catalogrepo.NewSeededMemoryRepository(), fixedClock)

	// p5 chỉ nằm ở w2, và w2 không có route tới d1
	result, err := planner.PlanSources(context.Background(), "d1", "p5", 100, 400)
	require.NoError(t, err)

	assert.Empty(t, result.Sources)
	assert.Equal(t, 0, result.FulfilledQty)
	assert.True(t, result.TotalCost.IsZero())
}

func TestPlanner_ZeroQtyNeeded(t *testing.T) {
	planner := NewPlannerWithClock(catalogrepo.NewSeededMemoryRepository(), fixedClock)

	// allowed == from (bị conflict clamp): không allocate gì
	result, err := planner.PlanSources(context.Background(), "d1", "p1", 1000, 1000)
	require.NoError(t, err)

	assert.Empty(t, result.Sources)
	assert.Equal(t, 0, result.FulfilledQty)
	assert.True(t, result.TotalCost.IsZero())
}

func splitCatalog() *catalogrepo.MemoryRepository {
	now := time.Now()
	warehouses := []catalogmodel.Warehouse{
		{
			ID: "wa", Name: "Cheap but small", Type: catalogmodel.WarehouseRegional,
			CurrentInventory: []catalogmodel.WarehouseInventory{
				{ProductID: "p1", AvailableStock: 300, LastRestocked: now},
			},
		},
		{
			ID: "wb", Name: "Costly but deep", Type: catalogmodel.WarehouseDistributionCenter,
			CurrentInventory: []catalogmodel.WarehouseInventory{
				{ProductID: "p1", AvailableStock: 5000, LastRestocked: now},
			},
		},
	}
	routes := []catalogmodel.Route{
		{ID: "ra", FromWarehouseID: "wa", ToDistributorID: "d1", EstimatedTimeHours: 2, Cost: decimal.NewFromInt(100), Reliability: 95},
		{ID: "rb", FromWarehouseID: "wb", ToDistributorID: "d1", EstimatedTimeHours: 30, Cost: decimal.NewFromInt(200), Reliability: 95},
	}
	products := []catalogmodel.Product{
		{ID: "p1", Name: "Premium Lager 500ml", UnitCost: decimal.RequireFromString("2.50")},
	}
	distributors := []catalogmodel.Distributor{{ID: "d1", Name: "Test Distributor"}}
	return catalogrepo.NewMemoryRepository(products, distributors, warehouses, routes)
}

func TestPlanner_SplitAcrossSourcesCheapestFirst(t *testing.T) {
	planner := NewPlannerWithClock(splitCatalog(), fixedClock)

	result, err := planner.PlanSources(context.Background(), "d1", "p1", 0, 500)
	require.NoError(t, err)

	require.Len(t, result.Sources, 2)
	assert.Equal(t, "wa", result.Sources[0].WarehouseID)
	assert.Equal(t, 300, result.Sources[0].Quantity)
	assert.Equal(t, "wb", result.Sources[1].WarehouseID)
	assert.Equal(t, 200, result.Sources[1].Quantity)

	// cost_i = route cost × takeQty/qtyNeeded gốc: 100×300/500 + 200×200/500
	assert.True(t, result.Sources[0].Cost.Equal(decimal.NewFromInt(60)), "got %s", result.Sources[0].Cost)
	assert.True(t, result.Sources[1].Cost.Equal(decimal.NewFromInt(80)), "got %s", result.Sources[1].Cost)
	assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, 500, result.FulfilledQty)

	// route chậm nhất (30h) vượt floor 24h nên quyết định delivery date
	assert.Equal(t, testNow.Add(30*time.Hour), result.DeliveryDate)
}

func TestPlanner_PartialFulfillmentCostIsProportionalToOriginalAsk(t *testing.T) {
	now := time.Now()
	repo := catalogrepo.NewMemoryRepository(
		[]catalogmodel.Product{{ID: "p1", UnitCost: decimal.RequireFromString("2.50")}},
		[]catalogmodel.Distributor{{ID: "d1"}},
		[]catalogmodel.Warehouse{
			{
				ID: "wa",
				CurrentInventory: []catalogmodel.WarehouseInventory{
					{ProductID: "p1", AvailableStock: 400, LastRestocked: now},
				},
			},
		},
		[]catalogmodel.Route{
			{ID: "ra", FromWarehouseID: "wa", ToDistributorID: "d1", EstimatedTimeHours: 2, Cost: decimal.NewFromInt(500)},
		},
	)
	planner := NewPlannerWithClock(repo, fixedClock)

	result, err := planner.PlanSources(context.Background(), "d1", "p1", 0, 1000)
	require.NoError(t, err)

	// chỉ 400/1000 được fulfill; cost phản ánh fraction của ask gốc
	assert.Equal(t, 400, result.FulfilledQty)
	assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(200)), "got %s", result.TotalCost)
}
