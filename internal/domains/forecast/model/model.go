package model

import (
	"errors"
	"time"
)

type FactorType string

const (
	FactorSeasonal    FactorType = "seasonal"
	FactorPromotional FactorType = "promotional"
	FactorEconomic    FactorType = "economic"
	FactorCompetitive FactorType = "competitive"
	FactorWeather     FactorType = "weather"
	FactorEvent       FactorType = "event"
)

type ForecastFactor struct {
	Type        FactorType `json:"type"`
	Impact      float64    `json:"impact"` // -1 to 1
	Description string     `json:"description"`
	Confidence  float64    `json:"confidence"`
}

type SeasonalTrend string

const (
	TrendIncreasing SeasonalTrend = "increasing"
	TrendDecreasing SeasonalTrend = "decreasing"
	TrendStable     SeasonalTrend = "stable"
)

// DemandForecast là baseline để so requested quantity - không có
// forecasting model nào được tính trong core.
type DemandForecast struct {
	DistributorID      string           `json:"distributor_id"`
	ProductID          string           `json:"product_id"`
	ForecastDate       time.Time        `json:"forecast_date"`
	PredictedDemand    int              `json:"predicted_demand"`
	Confidence         float64          `json:"confidence"`
	Factors            []ForecastFactor `json:"factors"`
	HistoricalAccuracy float64          `json:"historical_accuracy"`
	SeasonalTrend      SeasonalTrend    `json:"seasonal_trend"`
}

var ErrForecastNotFound = errors.New("demand forecast not found")
