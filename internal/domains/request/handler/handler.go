package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogmodel "distribution-oos-backend/internal/domains/catalog/model"
	"distribution-oos-backend/internal/domains/request/model"
	"distribution-oos-backend/internal/domains/request/service"
	"distribution-oos-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListRequests
// GET /requests
func (h *Handler) ListRequests(c *gin.Context) {
	requests, err := h.svc.ListRequests(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list change requests")
		return
	}
	response.Success(c, http.StatusOK, requests)
}

// GetRequest
// GET /requests/:id
func (h *Handler) GetRequest(c *gin.Context) {
	request, err := h.svc.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrRequestNotFound) {
			response.NotFound(c, "Change request not found")
			return
		}
		response.InternalServerError(c, "Failed to get change request")
		return
	}
	response.Success(c, http.StatusOK, request)
}

// SubmitRequest
// POST /requests
func (h *Handler) SubmitRequest(c *gin.Context) {
	var req model.SubmitChangeRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
		return
	}

	request, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidDistributor) {
			response.UnprocessableEntity(c, "INVALID_DISTRIBUTOR", "Distributor unknown")
			return
		}
		response.InternalServerError(c, "Failed to submit change request")
		return
	}
	response.Success(c, http.StatusCreated, request)
}

// ValidateRequest pre-check free text trước khi submit
// POST /requests/validate
func (h *Handler) ValidateRequest(c *gin.Context) {
	var req model.ValidateRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.svc.ValidateText(c.Request.Context(), req.DistributorID, req.RequestText)
	if err != nil {
		response.InternalServerError(c, "Failed to validate request text")
		return
	}
	response.Success(c, http.StatusOK, model.ValidationResult{Result: result})
}

// AnalyzeRequest kick off full analysis pipeline; 202 vì kết quả đến sau
// POST /requests/:id/analyze
func (h *Handler) AnalyzeRequest(c *gin.Context) {
	request, err := h.svc.StartAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrRequestNotFound):
			response.NotFound(c, "Change request not found")
		case errors.Is(err, model.ErrRequestTerminal):
			response.Conflict(c, "Change request already decided")
		default:
			response.InternalServerError(c, "Failed to start analysis")
		}
		return
	}
	response.Success(c, http.StatusAccepted, request)
}

// ApproveRequest - manual override (admin)
// POST /admin/requests/:id/approve
func (h *Handler) ApproveRequest(c *gin.Context) {
	request, err := h.svc.ManualApprove(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrRequestNotFound):
			response.NotFound(c, "Change request not found")
		case errors.Is(err, catalogmodel.ErrWarehouseNotFound):
			response.Conflict(c, "No warehouse holds the requested product")
		case errors.Is(err, catalogmodel.ErrRouteNotFound):
			response.Conflict(c, "No route available for delivery")
		default:
			response.InternalServerError(c, "Failed to approve change request")
		}
		return
	}
	response.Success(c, http.StatusOK, request)
}

// RejectRequest - manual override (admin)
// POST /admin/requests/:id/reject
func (h *Handler) RejectRequest(c *gin.Context) {
	var req model.RejectRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
		return
	}

	request, err := h.svc.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		if errors.Is(err, model.ErrRequestNotFound) {
			response.NotFound(c, "Change request not found")
			return
		}
		response.InternalServerError(c, "Failed to reject change request")
		return
	}
	response.Success(c, http.StatusOK, request)
}
