package main

import (
	"github.com/hibiken/asynq"

	alertJob "distribution-oos-backend/internal/domains/alert/job"
	metricsJob "distribution-oos-backend/internal/domains/metrics/job"
	requestJob "distribution-oos-backend/internal/domains/request/job"
	"distribution-oos-backend/internal/shared"
	"distribution-oos-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	decisionNotice  *requestJob.DecisionNoticeHandler
	inventoryScan   *alertJob.InventoryScanHandler
	metricsSnapshot *metricsJob.SnapshotHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		decisionNotice:  requestJob.NewDecisionNoticeHandler(c.Cache),
		inventoryScan:   alertJob.NewInventoryScanHandler(c.AlertService),
		metricsSnapshot: metricsJob.NewSnapshotHandler(c.MetricsService),
	}
}

// RegisterHandlers maps task types to handlers
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeDecisionNotice, r.decisionNotice)
	mux.Handle(shared.TypeAlertScan, r.inventoryScan)
	mux.Handle(shared.TypeMetricsSnapshot, r.metricsSnapshot)
}
