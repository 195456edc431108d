package repository

import (
	"context"

	"distribution-oos-backend/internal/domains/catalog/model"
)

type Repository interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	ListDistributors(ctx context.Context) ([]model.Distributor, error)
	GetDistributor(ctx context.Context, id string) (*model.Distributor, error)

	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error)
	// WarehousesHolding trả về warehouses có inventory record cho product,
	// theo thứ tự catalog ổn định
	WarehousesHolding(ctx context.Context, productID string) ([]model.Warehouse, error)

	ListRoutes(ctx context.Context) ([]model.Route, error)
	// RouteBetween lookup route theo cặp (warehouse, distributor)
	// Trả ErrRouteNotFound nếu không có route nối cặp này
	RouteBetween(ctx context.Context, warehouseID, distributorID string) (*model.Route, error)

	// UpdateRoutes ghi lại toàn bộ route set (route optimization)
	UpdateRoutes(ctx context.Context, routes []model.Route) error
}
