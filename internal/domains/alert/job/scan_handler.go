package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"distribution-oos-backend/internal/domains/alert/service"
	"distribution-oos-backend/pkg/logger"
)

// ================================================
// INVENTORY ALERT SCAN JOB HANDLER
// ================================================

type InventoryScanHandler struct {
	alertService service.Service
}

func NewInventoryScanHandler(alertService service.Service) *InventoryScanHandler {
	return &InventoryScanHandler{alertService: alertService}
}

func (h *InventoryScanHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	logger.Info("Starting InventoryScan job", nil)
	raised, err := h.alertService.ScanInventory(ctx)
	if err != nil {
		return fmt.Errorf("inventory alert scan: %w", err)
	}
	logger.Info("Completed InventoryScan job", map[string]interface{}{
		"alerts_raised": raised,
	})
	return nil
}
