package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	forecastmodel "distribution-oos-backend/internal/domains/forecast/model"
	forecastrepo "distribution-oos-backend/internal/domains/forecast/repository"
	"distribution-oos-backend/internal/domains/planning/model"
)

// markup 40% trên unit cost khi quy ra revenue impact
var revenueMarkup = decimal.NewFromFloat(1.4)

type RiskResult struct {
	Level               model.RiskLevel
	Factors             []string
	RevenueImpact       decimal.Decimal
	NetImpact           decimal.Decimal
	ForecastVariancePct float64
}

type Evaluator struct {
	forecasts forecastrepo.Repository
}

func NewEvaluator(forecasts forecastrepo.Repository) *Evaluator {
	return &Evaluator{forecasts: forecasts}
}

// Evaluate tính forecast variance, revenue/net impact và risk level cho
// một sourcing result. Risk bắt đầu low, escalate medium rồi high; các
// factor đủ điều kiện đều được ghi lại dù chỉ giữ level cao nhất.
func (e *Evaluator) Evaluate(ctx context.Context, distributorID, productID string, fromQty, allowedQty int, sourcing *SourcingResult, unitCost decimal.Decimal) (*RiskResult, error) {
	variance := 0.0
	forecast, err := e.forecasts.Lookup(ctx, distributorID, productID)
	if err != nil {
		if !errors.Is(err, forecastmodel.ErrForecastNotFound) {
			return nil, err
		}
		// không có forecast data ⇒ variance 0, không tính là risk factor
	} else if forecast.PredictedDemand != 0 {
		variance = float64(allowedQty-forecast.PredictedDemand) / float64(forecast.PredictedDemand) * 100
	}

	revenueImpact := decimal.NewFromInt(int64(sourcing.FulfilledQty)).Mul(unitCost).Mul(revenueMarkup)
	netImpact := revenueImpact.Sub(sourcing.TotalCost)

	level := model.RiskLow
	var factors []string

	if math.Abs(variance) > 25 {
		level = model.RiskMedium
		direction := "Below"
		if variance > 0 {
			direction = "Above"
		}
		factors = append(factors, fmt.Sprintf("%s forecast by %.1f%%", direction, math.Abs(variance)))
	}
	if sourcing.FulfilledQty < allowedQty-fromQty {
		level = model.RiskMedium
		factors = append(factors, "Partial fulfillment only")
	}
	if sourcing.FulfilledQty == 0 {
		level = model.RiskHigh
		factors = append(factors, "No inventory available")
	}
	if netImpact.IsNegative() {
		level = model.RiskHigh
		factors = append(factors, "Negative net revenue impact")
	}

	return &RiskResult{
		Level:               level,
		Factors:             factors,
		RevenueImpact:       revenueImpact,
		NetImpact:           netImpact,
		ForecastVariancePct: variance,
	}, nil
}
