package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SubmitChangeRequestReq - payload POST /requests
type SubmitChangeRequestReq struct {
	DistributorID    string              `json:"distributor_id"`
	OriginalOrder    []OrderItem         `json:"original_order"`
	RequestedChanges []RequestedChange   `json:"requested_changes"`
	RequestText      string              `json:"request_text"`
	Interpreted      *InterpretedRequest `json:"interpreted_request,omitempty"`
	Priority         Priority            `json:"priority"`
	Deadline         time.Time           `json:"deadline"`
	Reason           string              `json:"reason"`
	RequestSource    RequestSource       `json:"request_source"`
}

func (req SubmitChangeRequestReq) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.DistributorID, validation.Required),
		validation.Field(&req.RequestText, validation.Required, validation.Length(10, 2000)),
		validation.Field(&req.RequestedChanges, validation.Required, validation.Length(1, 10)),
		validation.Field(&req.Priority, validation.In(
			PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow,
		)),
		validation.Field(&req.RequestSource, validation.In(
			SourceEmail, SourceServiceNow, SourcePhone, SourcePortal,
		)),
	)
}

// ValidateRequestReq - payload POST /requests/validate (pre-check free text)
type ValidateRequestReq struct {
	DistributorID string `json:"distributor_id"`
	RequestText   string `json:"request_text"`
}

func (req ValidateRequestReq) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.DistributorID, validation.Required),
		validation.Field(&req.RequestText, validation.Required),
	)
}

// ValidationResult - kết quả pre-check: VALID hoặc một failure code
type ValidationResult struct {
	Result string `json:"result"`
}

// RejectRequestReq - payload POST /admin/requests/:id/reject
type RejectRequestReq struct {
	Reason string `json:"reason"`
}

func (req RejectRequestReq) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Reason, validation.Required, validation.Length(3, 500)),
	)
}
