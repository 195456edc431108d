package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"distribution-oos-backend/internal/domains/alert/model"
	"distribution-oos-backend/internal/domains/alert/service"
	"distribution-oos-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListAlerts
// GET /alerts
func (h *Handler) ListAlerts(c *gin.Context) {
	alerts, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list alerts")
		return
	}
	response.Success(c, http.StatusOK, alerts)
}

// ResolveAlert
// POST /admin/alerts/:id/resolve
func (h *Handler) ResolveAlert(c *gin.Context) {
	alert, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrAlertNotFound) {
			response.NotFound(c, "Alert not found")
			return
		}
		response.InternalServerError(c, "Failed to resolve alert")
		return
	}
	response.Success(c, http.StatusOK, alert)
}
