package shared

import "time"

// Asynq task types
const (
	TypeDecisionNotice  = "request:decision_notice"
	TypeAlertScan       = "alert:scan"
	TypeMetricsSnapshot = "metrics:snapshot"
)

// DecisionNoticePayload carries the outcome of a request decision
// to the worker (log + dashboard feed cache).
type DecisionNoticePayload struct {
	RequestID       string    `json:"requestId"`
	DistributorID   string    `json:"distributorId"`
	ProductID       string    `json:"productId"`
	Approved        bool      `json:"approved"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	FulfilledQty    int       `json:"fulfilledQty"`
	TotalCost       string    `json:"totalCost"`
	RiskLevel       string    `json:"riskLevel"`
	DecidedAt       time.Time `json:"decidedAt"`
}

// AlertScanPayload - empty marker payload cho scheduled scan
type AlertScanPayload struct{}

// MetricsSnapshotPayload - empty marker payload cho scheduled recompute
type MetricsSnapshotPayload struct{}
