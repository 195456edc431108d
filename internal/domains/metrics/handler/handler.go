package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"distribution-oos-backend/internal/domains/metrics/service"
	"distribution-oos-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// GetMetrics
// GET /metrics/summary
func (h *Handler) GetMetrics(c *gin.Context) {
	snapshot, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to read metrics")
		return
	}
	response.Success(c, http.StatusOK, snapshot)
}
