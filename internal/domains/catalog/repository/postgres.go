package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"distribution-oos-backend/internal/domains/catalog/model"
)

// PostgresRepository đọc catalog từ Postgres tables.
// Shapes khớp với memory fixtures; chọn qua CATALOG_BACKEND=postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const productColumns = `id, name, category, sku, volume_liters, alcohol_content, unit_cost, shelf_life_days`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.SKU, &p.VolumeLiters, &p.AlcoholContent, &p.UnitCost, &p.ShelfLifeDays)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", model.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) ListDistributors(ctx context.Context) ([]model.Distributor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, address, city, state, lat, lng, capacity,
		       credit_limit, payment_terms, preferred_days, time_slot
		FROM distributors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query distributors: %w", err)
	}
	defer rows.Close()

	var distributors []model.Distributor
	for rows.Next() {
		var d model.Distributor
		err := rows.Scan(&d.ID, &d.Name, &d.Location.Address, &d.Location.City, &d.Location.State,
			&d.Location.Coordinates.Lat, &d.Location.Coordinates.Lng, &d.Capacity,
			&d.CreditLimit, &d.PaymentTerms, &d.DeliveryWindow.PreferredDays, &d.DeliveryWindow.TimeSlot)
		if err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		distributors = append(distributors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range distributors {
		inv, err := r.distributorInventory(ctx, distributors[i].ID)
		if err != nil {
			return nil, err
		}
		distributors[i].CurrentInventory = inv
	}
	return distributors, nil
}

func (r *PostgresRepository) GetDistributor(ctx context.Context, id string) (*model.Distributor, error) {
	var d model.Distributor
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, address, city, state, lat, lng, capacity,
		       credit_limit, payment_terms, preferred_days, time_slot
		FROM distributors WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.Location.Address, &d.Location.City, &d.Location.State,
			&d.Location.Coordinates.Lat, &d.Location.Coordinates.Lng, &d.Capacity,
			&d.CreditLimit, &d.PaymentTerms, &d.DeliveryWindow.PreferredDays, &d.DeliveryWindow.TimeSlot)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", model.ErrDistributorNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get distributor: %w", err)
	}

	inv, err := r.distributorInventory(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.CurrentInventory = inv
	return &d, nil
}

func (r *PostgresRepository) distributorInventory(ctx context.Context, distributorID string) ([]model.DistributorInventory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, current_stock, reserved_stock, last_updated, reorder_point, max_stock
		FROM distributor_inventory WHERE distributor_id = $1 ORDER BY product_id`, distributorID)
	if err != nil {
		return nil, fmt.Errorf("query distributor inventory: %w", err)
	}
	defer rows.Close()

	var inv []model.DistributorInventory
	for rows.Next() {
		var item model.DistributorInventory
		if err := rows.Scan(&item.ProductID, &item.CurrentStock, &item.ReservedStock, &item.LastUpdated, &item.ReorderPoint, &item.MaxStock); err != nil {
			return nil, fmt.Errorf("scan distributor inventory: %w", err)
		}
		inv = append(inv, item)
	}
	return inv, rows.Err()
}

func (r *PostgresRepository) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return r.queryWarehouses(ctx, `SELECT id, name, address, city, state, lat, lng, type, capacity,
		       operating_start, operating_end, working_days, shipping_capabilities
		FROM warehouses ORDER BY id`)
}

func (r *PostgresRepository) GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error) {
	warehouses, err := r.queryWarehouses(ctx, `SELECT id, name, address, city, state, lat, lng, type, capacity,
		       operating_start, operating_end, working_days, shipping_capabilities
		FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrWarehouseNotFound, id)
	}
	return &warehouses[0], nil
}

func (r *PostgresRepository) WarehousesHolding(ctx context.Context, productID string) ([]model.Warehouse, error) {
	return r.queryWarehouses(ctx, `SELECT w.id, w.name, w.address, w.city, w.state, w.lat, w.lng, w.type, w.capacity,
		       w.operating_start, w.operating_end, w.working_days, w.shipping_capabilities
		FROM warehouses w
		WHERE EXISTS (
			SELECT 1 FROM warehouse_inventory wi
			WHERE wi.warehouse_id = w.id AND wi.product_id = $1
		)
		ORDER BY w.id`, productID)
}

func (r *PostgresRepository) queryWarehouses(ctx context.Context, sql string, args ...interface{}) ([]model.Warehouse, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []model.Warehouse
	for rows.Next() {
		var w model.Warehouse
		err := rows.Scan(&w.ID, &w.Name, &w.Location.Address, &w.Location.City, &w.Location.State,
			&w.Location.Coordinates.Lat, &w.Location.Coordinates.Lng, &w.Type, &w.Capacity,
			&w.OperatingHours.Start, &w.OperatingHours.End, &w.OperatingHours.WorkingDays, &w.ShippingCapabilities)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range warehouses {
		inv, err := r.warehouseInventory(ctx, warehouses[i].ID)
		if err != nil {
			return nil, err
		}
		warehouses[i].CurrentInventory = inv
	}
	return warehouses, nil
}

func (r *PostgresRepository) warehouseInventory(ctx context.Context, warehouseID string) ([]model.WarehouseInventory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, available_stock, in_transit_stock, reserved_stock, last_restocked
		FROM warehouse_inventory WHERE warehouse_id = $1 ORDER BY product_id`, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("query warehouse inventory: %w", err)
	}
	defer rows.Close()

	var inv []model.WarehouseInventory
	for rows.Next() {
		var item model.WarehouseInventory
		if err := rows.Scan(&item.ProductID, &item.AvailableStock, &item.InTransitStock, &item.ReservedStock, &item.LastRestocked); err != nil {
			return nil, fmt.Errorf("scan warehouse inventory: %w", err)
		}
		inv = append(inv, item)
	}
	return inv, rows.Err()
}

const routeColumns = `id, from_warehouse_id, to_distributor_id, distance_km, estimated_time_hours, cost, capacity, frequency, reliability, restrictions`

func (r *PostgresRepository) ListRoutes(ctx context.Context) ([]model.Route, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+routeColumns+` FROM routes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	var routes []model.Route
	for rows.Next() {
		var rt model.Route
		err := rows.Scan(&rt.ID, &rt.FromWarehouseID, &rt.ToDistributorID, &rt.DistanceKm, &rt.EstimatedTimeHours,
			&rt.Cost, &rt.Capacity, &rt.Frequency, &rt.Reliability, &rt.Restrictions)
		if err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		routes = append(routes, rt)
	}
	return routes, rows.Err()
}

func (r *PostgresRepository) RouteBetween(ctx context.Context, warehouseID, distributorID string) (*model.Route, error) {
	var rt model.Route
	err := r.pool.QueryRow(ctx, `SELECT `+routeColumns+` FROM routes
		WHERE from_warehouse_id = $1 AND to_distributor_id = $2`, warehouseID, distributorID).
		Scan(&rt.ID, &rt.FromWarehouseID, &rt.ToDistributorID, &rt.DistanceKm, &rt.EstimatedTimeHours,
			&rt.Cost, &rt.Capacity, &rt.Frequency, &rt.Reliability, &rt.Restrictions)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s -> %s", model.ErrRouteNotFound, warehouseID, distributorID)
	}
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	return &rt, nil
}

func (r *PostgresRepository) UpdateRoutes(ctx context.Context, routes []model.Route) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update routes: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, rt := range routes {
		_, err := tx.Exec(ctx, `
			UPDATE routes
			SET distance_km = $2, estimated_time_hours = $3, cost = $4,
			    capacity = $5, frequency = $6, reliability = $7, restrictions = $8
			WHERE id = $1`,
			rt.ID, rt.DistanceKm, rt.EstimatedTimeHours, rt.Cost,
			rt.Capacity, rt.Frequency, rt.Reliability, rt.Restrictions)
		if err != nil {
			return fmt.Errorf("update route %s: %w", rt.ID, err)
		}
	}

	return tx.Commit(ctx)
}
