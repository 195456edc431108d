package service

import (
	"context"

	"distribution-oos-backend/internal/domains/catalog/model"
)

type Service interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	ListDistributors(ctx context.Context) ([]model.Distributor, error)
	GetDistributor(ctx context.Context, id string) (*model.Distributor, error)

	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error)
	WarehousesHolding(ctx context.Context, productID string) ([]model.Warehouse, error)

	ListRoutes(ctx context.Context) ([]model.Route, error)
	RouteBetween(ctx context.Context, warehouseID, distributorID string) (*model.Route, error)

	// OptimizeRoutes áp dụng network optimization pass lên route set
	// và trả về routes đã cập nhật
	OptimizeRoutes(ctx context.Context) ([]model.Route, error)
}
