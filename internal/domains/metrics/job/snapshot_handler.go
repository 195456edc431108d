package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"distribution-oos-backend/internal/domains/metrics/service"
	"distribution-oos-backend/pkg/logger"
)

// ================================================
// METRICS SNAPSHOT JOB HANDLER
// ================================================

// SnapshotHandler recompute metrics định kỳ để counter không lệch khỏi
// request set sau restart hay manual seed.
type SnapshotHandler struct {
	metricsService service.Service
}

func NewSnapshotHandler(metricsService service.Service) *SnapshotHandler {
	return &SnapshotHandler{metricsService: metricsService}
}

func (h *SnapshotHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	if err := h.metricsService.RecomputeFromRequests(ctx); err != nil {
		return fmt.Errorf("metrics snapshot recompute: %w", err)
	}
	logger.Debug("Metrics snapshot recomputed")
	return nil
}
