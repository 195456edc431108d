package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"distribution-oos-backend/internal/domains/catalog/model"
	"distribution-oos-backend/internal/domains/catalog/service"
	"distribution-oos-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListProducts
// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list products")
		return
	}
	response.Success(c, http.StatusOK, products)
}

// GetProduct
// GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		response.InternalServerError(c, "Failed to get product")
		return
	}
	response.Success(c, http.StatusOK, product)
}

// ListDistributors
// GET /distributors
func (h *Handler) ListDistributors(c *gin.Context) {
	distributors, err := h.svc.ListDistributors(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list distributors")
		return
	}
	response.Success(c, http.StatusOK, distributors)
}

// GetDistributor
// GET /distributors/:id
func (h *Handler) GetDistributor(c *gin.Context) {
	distributor, err := h.svc.GetDistributor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrDistributorNotFound) {
			response.NotFound(c, "Distributor not found")
			return
		}
		response.InternalServerError(c, "Failed to get distributor")
		return
	}
	response.Success(c, http.StatusOK, distributor)
}

// ListWarehouses
// GET /warehouses
func (h *Handler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.svc.ListWarehouses(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list warehouses")
		return
	}
	response.Success(c, http.StatusOK, warehouses)
}

// GetWarehouse
// GET /warehouses/:id
func (h *Handler) GetWarehouse(c *gin.Context) {
	warehouse, err := h.svc.GetWarehouse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrWarehouseNotFound) {
			response.NotFound(c, "Warehouse not found")
			return
		}
		response.InternalServerError(c, "Failed to get warehouse")
		return
	}
	response.Success(c, http.StatusOK, warehouse)
}

// ListRoutes
// GET /routes
func (h *Handler) ListRoutes(c *gin.Context) {
	routes, err := h.svc.ListRoutes(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list routes")
		return
	}
	response.Success(c, http.StatusOK, routes)
}

// OptimizeRoutes chạy network optimization pass (admin only)
// POST /admin/routes/optimize
func (h *Handler) OptimizeRoutes(c *gin.Context) {
	routes, err := h.svc.OptimizeRoutes(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to optimize routes")
		return
	}
	response.Success(c, http.StatusOK, routes)
}
