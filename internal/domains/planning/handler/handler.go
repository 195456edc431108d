package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"distribution-oos-backend/internal/domains/planning/model"
	"distribution-oos-backend/internal/domains/planning/service"
	"distribution-oos-backend/internal/shared/response"
)

type Handler struct {
	svc service.PlanService
}

func NewHandler(svc service.PlanService) *Handler {
	return &Handler{svc: svc}
}

// ListPlans
// GET /plans
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.svc.ListPlans(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list source plans")
		return
	}
	response.Success(c, http.StatusOK, plans)
}

// GetPlanByRequest
// GET /requests/:id/plan
func (h *Handler) GetPlanByRequest(c *gin.Context) {
	plan, err := h.svc.GetPlanByRequestID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrPlanNotFound) {
			response.NotFound(c, "No source plan for this request")
			return
		}
		response.InternalServerError(c, "Failed to get source plan")
		return
	}
	response.Success(c, http.StatusOK, plan)
}
