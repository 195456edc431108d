package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type RiskAssessment struct {
	Level   RiskLevel `json:"level"`
	Factors []string  `json:"factors"`
}

// SourceAllocation là một dòng phân bổ warehouse+route cụ thể
type SourceAllocation struct {
	WarehouseID       string          `json:"warehouse_id"`
	ProductID         string          `json:"product_id"`
	Quantity          int             `json:"quantity"`
	RouteID           string          `json:"route_id"`
	Cost              decimal.Decimal `json:"cost"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
}

type AlternativePlan struct {
	Description  string             `json:"description"`
	Sources      []SourceAllocation `json:"sources"`
	Cost         decimal.Decimal    `json:"cost"`
	DeliveryDate time.Time          `json:"delivery_date"`
	Pros         []string           `json:"pros"`
	Cons         []string           `json:"cons"`
}

// SourcePlan: tối đa một plan "live" per request id; re-run analysis
// sẽ replace plan cũ của request đó.
type SourcePlan struct {
	RequestID      string             `json:"request_id"`
	Approved       bool               `json:"approved"`
	Sources        []SourceAllocation `json:"sources"`
	TotalCost      decimal.Decimal    `json:"total_cost"`
	DeliveryDate   time.Time          `json:"delivery_date"`
	RiskAssessment RiskAssessment     `json:"risk_assessment"`
	Alternatives   []AlternativePlan  `json:"alternatives,omitempty"`
}

var ErrPlanNotFound = errors.New("source plan not found")
