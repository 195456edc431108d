package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"distribution-oos-backend/internal/domains/forecast/service"
	"distribution-oos-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListForecasts
// GET /forecasts?distributor_id=&product_id=
func (h *Handler) ListForecasts(c *gin.Context) {
	distributorID := c.Query("distributor_id")
	productID := c.Query("product_id")

	if distributorID != "" && productID != "" {
		forecast, err := h.svc.Lookup(c.Request.Context(), distributorID, productID)
		if err != nil {
			response.NotFound(c, "Forecast not found")
			return
		}
		response.Success(c, http.StatusOK, forecast)
		return
	}

	forecasts, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list forecasts")
		return
	}
	response.Success(c, http.StatusOK, forecasts)
}
