package model

import (
	"errors"
	"time"
)

type AlertType string

const (
	AlertInventoryLow    AlertType = "inventory_low"
	AlertDemandSpike     AlertType = "demand_spike"
	AlertRouteDisruption AlertType = "route_disruption"
	AlertCreditLimit     AlertType = "credit_limit"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
	Resolved  bool      `json:"resolved"`
	Actions   []string  `json:"actions"`
}

var ErrAlertNotFound = errors.New("alert not found")
