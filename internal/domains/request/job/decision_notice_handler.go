package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"distribution-oos-backend/internal/shared"
	"distribution-oos-backend/pkg/cache"
	"distribution-oos-backend/pkg/logger"
)

// ================================================
// DECISION NOTICE JOB HANDLER
// ================================================

const decisionFeedTTL = 24 * time.Hour

// DecisionNoticeHandler tiêu thụ decision notice từ pipeline, log ra
// audit trail và cache outcome cho dashboard feed; chỗ nối cho
// email/webhook notification sau này.
type DecisionNoticeHandler struct {
	cache cache.Cache
}

func NewDecisionNoticeHandler(c cache.Cache) *DecisionNoticeHandler {
	return &DecisionNoticeHandler{cache: c}
}

func (h *DecisionNoticeHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.DecisionNoticePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal decision notice payload: %w", err)
	}

	outcome := "rejected"
	if payload.Approved {
		outcome = "approved"
	}
	logger.Info("Change request decision recorded", map[string]interface{}{
		"request_id":       payload.RequestID,
		"distributor_id":   payload.DistributorID,
		"product_id":       payload.ProductID,
		"outcome":          outcome,
		"rejection_reason": payload.RejectionReason,
		"fulfilled_qty":    payload.FulfilledQty,
		"total_cost":       payload.TotalCost,
		"risk_level":       payload.RiskLevel,
		"decided_at":       payload.DecidedAt,
	})

	if h.cache != nil {
		key := "decision:" + payload.RequestID
		if err := h.cache.Set(ctx, key, payload, decisionFeedTTL); err != nil {
			logger.Warn("cache decision outcome failed", map[string]interface{}{
				"request_id": payload.RequestID,
				"error":      err.Error(),
			})
		}
	}
	return nil
}
