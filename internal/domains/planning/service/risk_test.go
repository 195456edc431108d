package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forecastrepo "distribution-oos-backend/internal/domains/forecast/repository"
	"distribution-oos-backend/internal/domains/planning/model"
)

var lagerUnitCost = decimal.RequireFromString("2.50")

func fullSourcing(fulfilled int, totalCost int64) *SourcingResult {
	return &SourcingResult{
		FulfilledQty: fulfilled,
		TotalCost:    decimal.NewFromInt(totalCost),
	}
}

func TestEvaluator_LowRiskFullFulfillment(t *testing.T) {
	eval := NewEvaluator(forecastrepo.NewSeededMemoryRepository())

	// d1/p1 forecast 1200; allowed 1500 ⇒ variance đúng 25%, không vượt
	// ngưỡng. Full fulfillment, net dương ⇒ low, không factor nào.
	result, err := eval.Evaluate(context.Background(), "d1", "p1", 1000, 1500, fullSourcing(500, 850), lagerUnitCost)
	require.NoError(t, err)

	assert.Equal(t, model.RiskLow, result.Level)
	assert.Empty(t, result.Factors)
	// 500 × 2.50 × 1.4 = 1750
	assert.True(t, result.RevenueImpact.Equal(decimal.NewFromInt(1750)), "got %s", result.RevenueImpact)
	assert.True(t, result.NetImpact.Equal(decimal.NewFromInt(900)), "got %s", result.NetImpact)
	assert.InDelta(t, 25.0, result.ForecastVariancePct, 0.001)
}

func TestEvaluator_VarianceAboveThreshold(t *testing.T) {
	eval := NewEvaluator(forecastrepo.NewSeededMemoryRepository())

	// allowed 1600 với forecast 1200 ⇒ +33.3%
	result, err := eval.Evaluate(context.Background(), "d1", "p1", 1000, 1600, fullSourcing(600, 850), lagerUnitCost)
	require.NoError(t, err)

	assert.Equal(t, model.RiskMedium, result.Level)
	require.Len(t, result.Factors, 1)
	assert.Equal(t, "Above forecast by 33.3%", result.Factors[0])
}

func TestEvaluator_VarianceBelowThreshold(t *testing.T) {
	eval := NewEvaluator(forecastrepo.NewSeededMemoryRepository())

	// allowed 600 với forecast 1200 ⇒ -50%
	result, err := eval.Evaluate(context.Background(), "d1", "p1", 700, 600, fullSourcing(0, 0), lagerUnitCost)
	require.NoError(t, err)

	assert.Contains(t, result.Factors, "Below forecast by 50.0%")
}

func TestEvaluator_NoForecastIsNeutral(t *testing.T) {
	eval := NewEvaluator(forecastrepo.NewSeededMemoryRepository())

	// không có forecast cho d3/p2: variance 0, không phải risk factor
	result, err := eval.Evaluate(context.Background(), "d3", "p2", 600, 900, fullSourcing(300, 980), decimal.RequireFromString("3.20"))
	require.NoError(t, err)

	assert.Equal(t, model.RiskLow, result.Level)
	assert.Empty(t, result.Factors)
	assert.Zero(t, result.ForecastVariancePct)
}

func TestEvaluator_PartialFulfillmentIsMedium(t *testing.T) {
	eval := NewEvaluator(forecastrepo.NewSeededMemoryRepository())

	result, err := eval.Evaluate(context.Background(), "d3", "p2", 600, 900, fullSourcing(200, 400), decimal.RequireFromString("3.20"))
	require.NoError(t, err)

	assert.Equal(t, model.RiskMedium, result.Level)
	assert.Contains(t, result.Factors, "Partial fulfillment only")
}

func TestEvaluator_NoInventoryIsHigh(t *testing.T) {
	eval := NewEvaluator(forecastrepo.NewSeededMemoryRepository())

	result, err := eval.Evaluate(context.Background(), "d3", "p2", 600, 900, fullSourcing(0, 0), decimal.RequireFromString("3.20"))
	require.NoError(t, err)

	assert.Equal(t, model.RiskHigh, result.Level)
	// partial factor vẫn được ghi dù level đã high
	assert.Contains(t, result.Factors, "Partial fulfillment only")
	assert.Contains(t, result.Factors, "No inventory available")
}

func TestEvaluator_NegativeNetImpactIsHigh(t *testing.T) {
	eval := NewEvaluator(forecastrepo.NewSeededMemoryRepository())

	// revenue 100×2.50×1.4 = 350 < cost 5000
	result, err := eval.Evaluate(context.Background(), "d3", "p2", 600, 700, fullSourcing(100, 5000), lagerUnitCost)
	require.NoError(t, err)

	assert.Equal(t, model.RiskHigh, result.Level)
	assert.Contains(t, result.Factors, "Negative net revenue impact")
	assert.True(t, result.NetImpact.IsNegative())
}
