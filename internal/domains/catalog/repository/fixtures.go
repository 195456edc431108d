package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"distribution-oos-backend/internal/domains/catalog/model"
)

// Demo catalog cho dashboard: Bay Area beverage network.
// Postgres backend thay fixtures này ở production.

func SeedProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Premium Lager 500ml", Category: model.CategoryBeer, SKU: "BL-500-001", VolumeLiters: 0.5, AlcoholContent: 5.0, UnitCost: decimal.RequireFromString("2.50"), ShelfLifeDays: 180},
		{ID: "p2", Name: "Craft IPA 330ml", Category: model.CategoryBeer, SKU: "BI-330-002", VolumeLiters: 0.33, AlcoholContent: 6.2, UnitCost: decimal.RequireFromString("3.20"), ShelfLifeDays: 120},
		{ID: "p3", Name: "Red Wine 750ml", Category: model.CategoryWine, SKU: "WR-750-003", VolumeLiters: 0.75, AlcoholContent: 13.5, UnitCost: decimal.RequireFromString("15.00"), ShelfLifeDays: 1095},
		{ID: "p4", Name: "Premium Vodka 700ml", Category: model.CategorySpirits, SKU: "SV-700-004", VolumeLiters: 0.7, AlcoholContent: 40.0, UnitCost: decimal.RequireFromString("25.00"), ShelfLifeDays: 3650},
		{ID: "p5", Name: "RTD Cocktail 275ml", Category: model.CategoryRTD, SKU: "RC-275-005", VolumeLiters: 0.275, AlcoholContent: 5.5, UnitCost: decimal.RequireFromString("4.50"), ShelfLifeDays: 365},
		{ID: "p6", Name: "Light Beer 355ml", Category: model.CategoryBeer, SKU: "BL-355-006", VolumeLiters: 0.355, AlcoholContent: 3.8, UnitCost: decimal.RequireFromString("2.10"), ShelfLifeDays: 150},
	}
}

func SeedDistributors() []model.Distributor {
	now := time.Now()
	return []model.Distributor{
		{
			ID:   "d1",
			Name: "Bay Area Premium Beverages",
			Location: model.Location{
				Address: "1555 Third Street", City: "San Francisco", State: "CA",
				Coordinates: model.Coordinates{Lat: 37.7749, Lng: -122.4194},
			},
			Capacity: 50000,
			CurrentInventory: []model.DistributorInventory{
				{ProductID: "p1", CurrentStock: 850, ReservedStock: 200, LastUpdated: now, ReorderPoint: 1000, MaxStock: 5000},
				{ProductID: "p2", CurrentStock: 320, ReservedStock: 80, LastUpdated: now, ReorderPoint: 500, MaxStock: 3000},
				{ProductID: "p3", CurrentStock: 150, ReservedStock: 50, LastUpdated: now, ReorderPoint: 200, MaxStock: 1000},
			},
			CreditLimit:  decimal.NewFromInt(500000),
			PaymentTerms: "Net 30",
			DeliveryWindow: model.DeliveryWindow{
				PreferredDays: []string{"Tuesday", "Thursday"},
				TimeSlot:      "8:00-12:00",
			},
		},
		{
			ID:   "d2",
			Name: "Golden Gate Distribution",
			Location: model.Location{
				Address: "2800 Alameda Street", City: "San Francisco", State: "CA",
				Coordinates: model.Coordinates{Lat: 37.7849, Lng: -122.4094},
			},
			Capacity: 35000,
			CurrentInventory: []model.DistributorInventory{
				{ProductID: "p1", CurrentStock: 1200, ReservedStock: 300, LastUpdated: now, ReorderPoint: 800, MaxStock: 4000},
				{ProductID: "p4", CurrentStock: 180, ReservedStock: 20, LastUpdated: now, ReorderPoint: 150, MaxStock: 800},
				{ProductID: "p5", CurrentStock: 650, ReservedStock: 150, LastUpdated: now, ReorderPoint: 500, MaxStock: 2500},
			},
			CreditLimit:  decimal.NewFromInt(350000),
			PaymentTerms: "Net 45",
			DeliveryWindow: model.DeliveryWindow{
				PreferredDays: []string{"Monday", "Wednesday", "Friday"},
				TimeSlot:      "6:00-10:00",
			},
		},
		{
			ID:   "d3",
			Name: "Silicon Valley Spirits Co",
			Location: model.Location{
				Address: "1234 Mission Street", City: "San Francisco", State: "CA",
				Coordinates: model.Coordinates{Lat: 37.7649, Lng: -122.4194},
			},
			Capacity: 28000,
			CurrentInventory: []model.DistributorInventory{
				{ProductID: "p2", CurrentStock: 450, ReservedStock: 100, LastUpdated: now, ReorderPoint: 600, MaxStock: 2500},
				{ProductID: "p3", CurrentStock: 220, ReservedStock: 30, LastUpdated: now, ReorderPoint: 300, MaxStock: 1200},
				{ProductID: "p6", CurrentStock: 180, ReservedStock: 50, LastUpdated: now, ReorderPoint: 400, MaxStock: 2000},
			},
			CreditLimit:  decimal.NewFromInt(280000),
			PaymentTerms: "Net 30",
			DeliveryWindow: model.DeliveryWindow{
				PreferredDays: []string{"Tuesday", "Thursday", "Saturday"},
				TimeSlot:      "9:00-15:00",
			},
		},
		{
			ID:   "d4",
			Name: "North Bay Wine & Spirits",
			Location: model.Location{
				Address: "750 Harrison Street", City: "San Francisco", State: "CA",
				Coordinates: model.Coordinates{Lat: 37.7849, Lng: -122.3994},
			},
			Capacity: 32000,
			CurrentInventory: []model.DistributorInventory{
				{ProductID: "p3", CurrentStock: 380, ReservedStock: 70, LastUpdated: now, ReorderPoint: 400, MaxStock: 1500},
				{ProductID: "p4", CurrentStock: 290, ReservedStock: 40, LastUpdated: now, ReorderPoint: 250, MaxStock: 1200},
				{ProductID: "p1", CurrentStock: 1100, ReservedStock: 200, LastUpdated: now, ReorderPoint: 900, MaxStock: 4500},
			},
			CreditLimit:  decimal.NewFromInt(420000),
			PaymentTerms: "Net 30",
			DeliveryWindow: model.DeliveryWindow{
				PreferredDays: []string{"Monday", "Wednesday", "Friday"},
				TimeSlot:      "10:00-14:00",
			},
		},
	}
}

func SeedWarehouses() []model.Warehouse {
	now := time.Now()
	return []model.Warehouse{
		{
			ID:   "w1",
			Name: "Petaluma Production Facility",
			Location: model.Location{
				Address: "2500 Industrial Ave", City: "Petaluma", State: "CA",
				Coordinates: model.Coordinates{Lat: 38.2325, Lng: -122.6367},
			},
			Type:     model.WarehouseFactory,
			Capacity: 200000,
			CurrentInventory: []model.WarehouseInventory{
				{ProductID: "p1", AvailableStock: 15000, InTransitStock: 2000, ReservedStock: 1000, LastRestocked: now},
				{ProductID: "p2", AvailableStock: 8500, InTransitStock: 500, ReservedStock: 800, LastRestocked: now},
				{ProductID: "p6", AvailableStock: 12000, InTransitStock: 800, ReservedStock: 600, LastRestocked: now},
			},
			OperatingHours:       model.OperatingHours{Start: "06:00", End: "22:00", WorkingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
			ShippingCapabilities: []string{"standard", "expedited", "temperature-controlled"},
		},
		{
			ID:   "w2",
			Name: "Oakland Distribution Center",
			Location: model.Location{
				Address: "1200 Maritime Street", City: "Oakland", State: "CA",
				Coordinates: model.Coordinates{Lat: 37.8044, Lng: -122.2712},
			},
			Type:     model.WarehouseDistributionCenter,
			Capacity: 80000,
			CurrentInventory: []model.WarehouseInventory{
				{ProductID: "p3", AvailableStock: 3200, InTransitStock: 400, ReservedStock: 200, LastRestocked: now},
				{ProductID: "p4", AvailableStock: 1800, InTransitStock: 150, ReservedStock: 100, LastRestocked: now},
				{ProductID: "p5", AvailableStock: 4500, InTransitStock: 300, ReservedStock: 250, LastRestocked: now},
			},
			OperatingHours:       model.OperatingHours{Start: "05:00", End: "20:00", WorkingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}},
			ShippingCapabilities: []string{"standard", "expedited"},
		},
		{
			ID:   "w3",
			Name: "Sacramento Regional Hub",
			Location: model.Location{
				Address: "4200 Power Inn Road", City: "Sacramento", State: "CA",
				Coordinates: model.Coordinates{Lat: 38.5816, Lng: -121.4944},
			},
			Type:     model.WarehouseRegional,
			Capacity: 60000,
			CurrentInventory: []model.WarehouseInventory{
				{ProductID: "p1", AvailableStock: 4200, InTransitStock: 600, ReservedStock: 300, LastRestocked: now},
				{ProductID: "p2", AvailableStock: 2800, InTransitStock: 200, ReservedStock: 150, LastRestocked: now},
				{ProductID: "p3", AvailableStock: 1500, InTransitStock: 100, ReservedStock: 80, LastRestocked: now},
			},
			OperatingHours:       model.OperatingHours{Start: "06:00", End: "18:00", WorkingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
			ShippingCapabilities: []string{"standard"},
		},
		{
			ID:   "w4",
			Name: "San Jose Wine Storage",
			Location: model.Location{
				Address: "890 Coleman Avenue", City: "San Jose", State: "CA",
				Coordinates: model.Coordinates{Lat: 37.3382, Lng: -121.8863},
			},
			Type:     model.WarehouseRegional,
			Capacity: 45000,
			CurrentInventory: []model.WarehouseInventory{
				{ProductID: "p3", AvailableStock: 2200, InTransitStock: 200, ReservedStock: 150, LastRestocked: now},
				{ProductID: "p4", AvailableStock: 1200, InTransitStock: 100, ReservedStock: 80, LastRestocked: now},
				{ProductID: "p1", AvailableStock: 3800, InTransitStock: 400, ReservedStock: 200, LastRestocked: now},
			},
			OperatingHours:       model.OperatingHours{Start: "07:00", End: "19:00", WorkingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}},
			ShippingCapabilities: []string{"standard", "temperature-controlled"},
		},
	}
}

func SeedRoutes() []model.Route {
	return []model.Route{
		{ID: "r1", FromWarehouseID: "w1", ToDistributorID: "d1", DistanceKm: 75, EstimatedTimeHours: 1.5, Cost: decimal.NewFromInt(850), Capacity: 5000, Frequency: model.FrequencyWeekly, Reliability: 98, Restrictions: []string{}},
		{ID: "r2", FromWarehouseID: "w2", ToDistributorID: "d2", DistanceKm: 25, EstimatedTimeHours: 0.8, Cost: decimal.NewFromInt(450), Capacity: 3500, Frequency: model.FrequencyBiweekly, Reliability: 96, Restrictions: []string{"temperature controlled"}},
		{ID: "r3", FromWarehouseID: "w3", ToDistributorID: "d3", DistanceKm: 120, EstimatedTimeHours: 2.2, Cost: decimal.NewFromInt(980), Capacity: 4000, Frequency: model.FrequencyWeekly, Reliability: 94, Restrictions: []string{}},
		{ID: "r4", FromWarehouseID: "w4", ToDistributorID: "d4", DistanceKm: 45, EstimatedTimeHours: 1.1, Cost: decimal.NewFromInt(620), Capacity: 3200, Frequency: model.FrequencyWeekly, Reliability: 97, Restrictions: []string{"temperature controlled"}},
		{ID: "r5", FromWarehouseID: "w1", ToDistributorID: "d2", DistanceKm: 85, EstimatedTimeHours: 1.8, Cost: decimal.NewFromInt(920), Capacity: 4500, Frequency: model.FrequencyWeekly, Reliability: 95, Restrictions: []string{}},
		{ID: "r6", FromWarehouseID: "w2", ToDistributorID: "d3", DistanceKm: 35, EstimatedTimeHours: 0.9, Cost: decimal.NewFromInt(520), Capacity: 3800, Frequency: model.FrequencyBiweekly, Reliability: 97, Restrictions: []string{}},
	}
}
