package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAnalyzing RequestStatus = "analyzing"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
)

// IsTerminal: approved/rejected là trạng thái cuối, không re-open
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// IsLive: request còn cạnh tranh inventory với request khác
func (s RequestStatus) IsLive() bool {
	return s == StatusPending || s == StatusApproved || s == StatusAnalyzing
}

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank quy priority về số để so sánh; unset/unknown coi như medium
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

type ChangeType string

const (
	ChangeIncrease   ChangeType = "increase"
	ChangeDecrease   ChangeType = "decrease"
	ChangeSubstitute ChangeType = "substitute"
)

type RequestSource string

const (
	SourceEmail      RequestSource = "email"
	SourceServiceNow RequestSource = "servicenow"
	SourcePhone      RequestSource = "phone"
	SourcePortal     RequestSource = "portal"
)

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

type OrderItem struct {
	ProductID         string          `json:"product_id"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	ScheduledDelivery time.Time       `json:"scheduled_delivery"`
}

type RequestedChange struct {
	Type                 ChangeType `json:"type"`
	ProductID            string     `json:"product_id"`
	FromQuantity         int        `json:"from_quantity"`
	ToQuantity           int        `json:"to_quantity"`
	Reason               string     `json:"reason"`
	AlternativeProductID string     `json:"alternative_product_id,omitempty"`
}

type EstimatedImpact struct {
	Revenue              decimal.Decimal `json:"revenue"`
	Volume               int             `json:"volume"`
	CustomerSatisfaction float64         `json:"customer_satisfaction"`
}

type InterpretedRequest struct {
	Confidence       float64           `json:"confidence"`
	ExtractedChanges []RequestedChange `json:"extracted_changes"`
	UrgencyLevel     UrgencyLevel      `json:"urgency_level"`
	BusinessReason   string            `json:"business_reason"`
	EstimatedImpact  EstimatedImpact   `json:"estimated_impact"`
	KeyTerms         []string          `json:"key_terms"`
}

// ChangeRequest là entity trung tâm: pending → analyzing → approved/rejected.
// Toàn bộ pipeline hiện tại chỉ xử lý RequestedChanges[0].
type ChangeRequest struct {
	ID              string              `json:"id"`
	DistributorID   string              `json:"distributor_id"`
	RequestDate     time.Time           `json:"request_date"`
	OriginalOrder   []OrderItem         `json:"original_order"`
	RequestedChanges []RequestedChange  `json:"requested_changes"`
	RequestText     string              `json:"request_text"`
	Interpreted     *InterpretedRequest `json:"interpreted_request,omitempty"`
	Priority        Priority            `json:"priority"`
	Status          RequestStatus       `json:"status"`
	Deadline        time.Time           `json:"deadline"`
	Reason          string              `json:"reason"`
	RequestSource   RequestSource       `json:"request_source"`
	RejectionReason string              `json:"rejection_reason,omitempty"`
}

// FirstChange trả về requested change đầu tiên (pipeline chỉ xử lý dòng này)
func (r *ChangeRequest) FirstChange() *RequestedChange {
	if len(r.RequestedChanges) == 0 {
		return nil
	}
	return &r.RequestedChanges[0]
}
