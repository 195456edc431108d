package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distribution-oos-backend/internal/domains/alert/model"
	"distribution-oos-backend/internal/domains/alert/repository"
	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
)

func TestAlertService_ScanInventoryFreshStore(t *testing.T) {
	alertRepo := repository.NewMemoryRepository(nil)
	svc := NewService(alertRepo, catalogrepo.NewSeededMemoryRepository())

	raised, err := svc.ScanInventory(context.Background())
	require.NoError(t, err)

	// d1, d3, d4 đều có stock dưới reorder point; mỗi distributor chỉ
	// một alert inventory_low chưa resolve
	assert.Equal(t, 3, raised)

	alerts, err := alertRepo.List(context.Background())
	require.NoError(t, err)
	entities := map[string]bool{}
	for _, a := range alerts {
		assert.Equal(t, model.AlertInventoryLow, a.Type)
		assert.False(t, a.Resolved)
		entities[a.EntityID] = true
	}
	assert.Equal(t, map[string]bool{"d1": true, "d3": true, "d4": true}, entities)
}

func TestAlertService_ScanInventorySkipsExistingUnresolved(t *testing.T) {
	// seed đã chứa inventory_low chưa resolve cho d1
	alertRepo := repository.NewSeededMemoryRepository()
	svc := NewService(alertRepo, catalogrepo.NewSeededMemoryRepository())

	raised, err := svc.ScanInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, raised)

	// scan lần hai không tạo thêm gì
	raised, err = svc.ScanInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, raised)
}

func TestAlertService_Resolve(t *testing.T) {
	svc := NewService(repository.NewSeededMemoryRepository(), catalogrepo.NewSeededMemoryRepository())

	alert, err := svc.Resolve(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, alert.Resolved)

	_, err = svc.Resolve(context.Background(), "a-missing")
	assert.ErrorIs(t, err, model.ErrAlertNotFound)
}
