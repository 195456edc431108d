package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	catalogmodel "distribution-oos-backend/internal/domains/catalog/model"
	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
	"distribution-oos-backend/internal/domains/planning/model"
)

// cost sentinel cho warehouse không có route tới distributor
var unreachableCost = decimal.NewFromInt(99999)

// SourcingResult là output thô của planner, chưa gắn risk assessment.
// FulfilledQty có thể < qtyNeeded khi inventory không đủ - shortfall là
// data cho risk evaluator, không phải error.
type SourcingResult struct {
	Sources      []model.SourceAllocation
	TotalCost    decimal.Decimal
	DeliveryDate time.Time
	FulfilledQty int
}

type Planner struct {
	catalog catalogrepo.Repository
	now     func() time.Time
}

func NewPlanner(catalog catalogrepo.Repository) *Planner {
	return &Planner{catalog: catalog, now: time.Now}
}

func NewPlannerWithClock(catalog catalogrepo.Repository, now func() time.Time) *Planner {
	return &Planner{catalog: catalog, now: now}
}

type candidate struct {
	warehouse catalogmodel.Warehouse
	route     *catalogmodel.Route
	cost      decimal.Decimal
}

// PlanSources phân bổ qtyNeeded = allowedQty - fromQty units từ tổ hợp
// warehouse+route rẻ nhất, greedy theo route cost tăng dần, cho phép
// split nhiều nguồn. Warehouse stock không bị trừ sau khi allocate.
func (p *Planner) PlanSources(ctx context.Context, distributorID, productID string, fromQty, allowedQty int) (*SourcingResult, error) {
	now := p.now()
	result := &SourcingResult{
		TotalCost: decimal.Zero,
		// floor 24h, sẽ bị max lên theo ETA của từng allocation
		DeliveryDate: now.Add(24 * time.Hour),
	}

	qtyNeeded := allowedQty - fromQty

	holding, err := p.catalog.WarehousesHolding(ctx, productID)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(holding))
	for _, w := range holding {
		route, err := p.catalog.RouteBetween(ctx, w.ID, distributorID)
		if err != nil {
			if errors.Is(err, catalogmodel.ErrRouteNotFound) {
				candidates = append(candidates, candidate{warehouse: w, route: nil, cost: unreachableCost})
				continue
			}
			return nil, err
		}
		candidates = append(candidates, candidate{warehouse: w, route: route, cost: route.Cost})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].cost.LessThan(candidates[j].cost)
	})

	remaining := qtyNeeded
	for _, c := range candidates {
		if c.route == nil {
			continue
		}
		available := c.warehouse.AvailableStockOf(productID)
		if available <= 0 {
			continue
		}
		takeQty := remaining
		if available < takeQty {
			takeQty = available
		}
		if takeQty > 0 {
			// cost tỷ lệ theo fraction của qtyNeeded GỐC, không phải remainder
			allocCost := c.route.Cost.
				Mul(decimal.NewFromInt(int64(takeQty))).
				Div(decimal.NewFromInt(int64(qtyNeeded)))
			eta := now.Add(time.Duration(c.route.EstimatedTimeHours * float64(time.Hour)))
			result.Sources = append(result.Sources, model.SourceAllocation{
				WarehouseID:       c.warehouse.ID,
				ProductID:         productID,
				Quantity:          takeQty,
				RouteID:           c.route.ID,
				Cost:              allocCost,
				EstimatedDelivery: eta,
			})
			result.TotalCost = result.TotalCost.Add(allocCost)
			if eta.After(result.DeliveryDate) {
				result.DeliveryDate = eta
			}
			result.FulfilledQty += takeQty
			remaining -= takeQty
		}
		if remaining <= 0 {
			break
		}
	}

	return result, nil
}
