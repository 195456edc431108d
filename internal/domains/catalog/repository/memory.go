package repository

import (
	"context"
	"fmt"
	"sync"

	"distribution-oos-backend/internal/domains/catalog/model"
)

// MemoryRepository giữ catalog trong process, seed từ fixtures.
// Reads trả copies để planning runs không thấy writes giữa chừng.
type MemoryRepository struct {
	mu           sync.RWMutex
	products     []model.Product
	distributors []model.Distributor
	warehouses   []model.Warehouse
	routes       []model.Route
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(products []model.Product, distributors []model.Distributor, warehouses []model.Warehouse, routes []model.Route) *MemoryRepository {
	return &MemoryRepository{
		products:     products,
		distributors: distributors,
		warehouses:   warehouses,
		routes:       routes,
	}
}

// NewSeededMemoryRepository tạo repo với demo fixtures
func NewSeededMemoryRepository() *MemoryRepository {
	return NewMemoryRepository(SeedProducts(), SeedDistributors(), SeedWarehouses(), SeedRoutes())
}

func (r *MemoryRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrProductNotFound, id)
}

func cloneDistributor(d model.Distributor) model.Distributor {
	out := d
	out.CurrentInventory = make([]model.DistributorInventory, len(d.CurrentInventory))
	copy(out.CurrentInventory, d.CurrentInventory)
	return out
}

func (r *MemoryRepository) ListDistributors(ctx context.Context) ([]model.Distributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Distributor, 0, len(r.distributors))
	for _, d := range r.distributors {
		out = append(out, cloneDistributor(d))
	}
	return out, nil
}

func (r *MemoryRepository) GetDistributor(ctx context.Context, id string) (*model.Distributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.distributors {
		if d.ID == id {
			out := cloneDistributor(d)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrDistributorNotFound, id)
}

// cloneWarehouse copy cả inventory slice; caller có thể sửa thoải mái
func cloneWarehouse(w model.Warehouse) model.Warehouse {
	out := w
	out.CurrentInventory = make([]model.WarehouseInventory, len(w.CurrentInventory))
	copy(out.CurrentInventory, w.CurrentInventory)
	return out
}

func (r *MemoryRepository) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Warehouse, 0, len(r.warehouses))
	for _, w := range r.warehouses {
		out = append(out, cloneWarehouse(w))
	}
	return out, nil
}

func (r *MemoryRepository) GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.warehouses {
		if w.ID == id {
			out := cloneWarehouse(w)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrWarehouseNotFound, id)
}

func (r *MemoryRepository) WarehousesHolding(ctx context.Context, productID string) ([]model.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Warehouse
	for _, w := range r.warehouses {
		if w.HoldsProduct(productID) {
			out = append(out, cloneWarehouse(w))
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListRoutes(ctx context.Context) ([]model.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Route, len(r.routes))
	copy(out, r.routes)
	return out, nil
}

func (r *MemoryRepository) RouteBetween(ctx context.Context, warehouseID, distributorID string) (*model.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.routes {
		if rt.FromWarehouseID == warehouseID && rt.ToDistributorID == distributorID {
			out := rt
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s -> %s", model.ErrRouteNotFound, warehouseID, distributorID)
}

func (r *MemoryRepository) UpdateRoutes(ctx context.Context, routes []model.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = make([]model.Route, len(routes))
	copy(r.routes, routes)
	return nil
}
