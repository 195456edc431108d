package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distribution-oos-backend/internal/domains/catalog/model"
)

func TestMemoryRepository_Lookups(t *testing.T) {
	repo := NewSeededMemoryRepository()
	ctx := context.Background()

	product, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Premium Lager 500ml", product.Name)

	_, err = repo.GetProduct(ctx, "p999")
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	distributor, err := repo.GetDistributor(ctx, "d2")
	require.NoError(t, err)
	assert.Equal(t, "d2", distributor.ID)

	_, err = repo.GetDistributor(ctx, "d999")
	assert.ErrorIs(t, err, model.ErrDistributorNotFound)
}

func TestMemoryRepository_RouteBetween(t *testing.T) {
	repo := NewSeededMemoryRepository()
	ctx := context.Background()

	route, err := repo.RouteBetween(ctx, "w1", "d1")
	require.NoError(t, err)
	assert.Equal(t, "r1", route.ID)

	_, err = repo.RouteBetween(ctx, "w2", "d1")
	assert.ErrorIs(t, err, model.ErrRouteNotFound)
}

func TestMemoryRepository_WarehousesHoldingStableOrder(t *testing.T) {
	repo := NewSeededMemoryRepository()

	holding, err := repo.WarehousesHolding(context.Background(), "p3")
	require.NoError(t, err)

	ids := make([]string, 0, len(holding))
	for _, w := range holding {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"w2", "w3", "w4"}, ids)
}

func TestMemoryRepository_ReadsReturnCopies(t *testing.T) {
	repo := NewSeededMemoryRepository()
	ctx := context.Background()

	w, err := repo.GetWarehouse(ctx, "w1")
	require.NoError(t, err)
	w.CurrentInventory[0].AvailableStock = 0

	again, err := repo.GetWarehouse(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, 15000, again.AvailableStockOf("p1"))
}
