package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reference data cho distribution network: products, distributors,
// warehouses, routes. Immutable trong một planning run; chỉ route
// optimization (admin) được phép ghi lại routes.

type ProductCategory string

const (
	CategoryBeer    ProductCategory = "beer"
	CategoryWine    ProductCategory = "wine"
	CategorySpirits ProductCategory = "spirits"
	CategoryRTD     ProductCategory = "rtd" // ready-to-drink
)

type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       ProductCategory `json:"category"`
	SKU            string          `json:"sku"`
	VolumeLiters   float64         `json:"volume"`
	AlcoholContent float64         `json:"alcohol_content"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	ShelfLifeDays  int             `json:"shelf_life"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Coordinates Coordinates `json:"coordinates"`
}

type DistributorInventory struct {
	ProductID     string    `json:"product_id"`
	CurrentStock  int       `json:"current_stock"`
	ReservedStock int       `json:"reserved_stock"`
	LastUpdated   time.Time `json:"last_updated"`
	ReorderPoint  int       `json:"reorder_point"`
	MaxStock      int       `json:"max_stock"`
}

type DeliveryWindow struct {
	PreferredDays []string `json:"preferred_days"`
	TimeSlot      string   `json:"time_slot"`
}

type Distributor struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Location         Location               `json:"location"`
	Capacity         int                    `json:"capacity"`
	CurrentInventory []DistributorInventory `json:"current_inventory"`
	CreditLimit      decimal.Decimal        `json:"credit_limit"`
	PaymentTerms     string                 `json:"payment_terms"`
	DeliveryWindow   DeliveryWindow         `json:"delivery_window"`
}

type WarehouseType string

const (
	WarehouseFactory            WarehouseType = "factory"
	WarehouseDistributionCenter WarehouseType = "distribution_center"
	WarehouseRegional           WarehouseType = "regional_warehouse"
)

type WarehouseInventory struct {
	ProductID      string    `json:"product_id"`
	AvailableStock int       `json:"available_stock"`
	InTransitStock int       `json:"in_transit_stock"`
	ReservedStock  int       `json:"reserved_stock"`
	LastRestocked  time.Time `json:"last_restocked"`
}

type OperatingHours struct {
	Start       string   `json:"start"`
	End         string   `json:"end"`
	WorkingDays []string `json:"working_days"`
}

type Warehouse struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Location             Location             `json:"location"`
	Type                 WarehouseType        `json:"type"`
	Capacity             int                  `json:"capacity"`
	CurrentInventory     []WarehouseInventory `json:"current_inventory"`
	OperatingHours       OperatingHours       `json:"operating_hours"`
	ShippingCapabilities []string             `json:"shipping_capabilities"`
}

// AvailableStockOf trả về available stock cho product (0 nếu không có record)
func (w *Warehouse) AvailableStockOf(productID string) int {
	for _, inv := range w.CurrentInventory {
		if inv.ProductID == productID {
			return inv.AvailableStock
		}
	}
	return 0
}

// HoldsProduct báo warehouse có inventory record cho product không
// (record với available 0 vẫn tính là holding)
func (w *Warehouse) HoldsProduct(productID string) bool {
	for _, inv := range w.CurrentInventory {
		if inv.ProductID == productID {
			return true
		}
	}
	return false
}

type RouteFrequency string

const (
	FrequencyDaily    RouteFrequency = "daily"
	FrequencyWeekly   RouteFrequency = "weekly"
	FrequencyBiweekly RouteFrequency = "biweekly"
	FrequencyMonthly  RouteFrequency = "monthly"
)

type Route struct {
	ID                 string          `json:"id"`
	FromWarehouseID    string          `json:"from_warehouse_id"`
	ToDistributorID    string          `json:"to_distributor_id"`
	DistanceKm         float64         `json:"distance"`
	EstimatedTimeHours float64         `json:"estimated_time"`
	Cost               decimal.Decimal `json:"cost"`
	Capacity           int             `json:"capacity"`
	Frequency          RouteFrequency  `json:"frequency"`
	Reliability        int             `json:"reliability"` // 0-100
	Restrictions       []string        `json:"restrictions"`
}
