package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"distribution-oos-backend/internal/shared/middleware"
	"distribution-oos-backend/internal/shared/response"
	"distribution-oos-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupCatalogRoutes(v1, c)
		setupForecastRoutes(v1, c)
		setupRequestRoutes(v1, c)
		setupPlanRoutes(v1, c)
		setupAlertRoutes(v1, c)
		setupMetricsRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/token", c.AuthHandler.IssueToken)
	}
}

// ========================================
// CATALOG ROUTES (reference data)
// ========================================
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/products", c.CatalogHandler.ListProducts)
	v1.GET("/products/:id", c.CatalogHandler.GetProduct)
	v1.GET("/distributors", c.CatalogHandler.ListDistributors)
	v1.GET("/distributors/:id", c.CatalogHandler.GetDistributor)
	v1.GET("/warehouses", c.CatalogHandler.ListWarehouses)
	v1.GET("/warehouses/:id", c.CatalogHandler.GetWarehouse)
	v1.GET("/routes", c.CatalogHandler.ListRoutes)
}

// ========================================
// FORECAST ROUTES
// ========================================
func setupForecastRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/forecasts", c.ForecastHandler.ListForecasts)
}

// ========================================
// CHANGE REQUEST ROUTES
// ========================================
func setupRequestRoutes(v1 *gin.RouterGroup, c *container.Container) {
	requests := v1.Group("/requests")
	{
		requests.GET("", c.RequestHandler.ListRequests)
		requests.POST("", c.RequestHandler.SubmitRequest)
		requests.POST("/validate", c.RequestHandler.ValidateRequest)
		requests.GET("/:id", c.RequestHandler.GetRequest)
		requests.POST("/:id/analyze", c.RequestHandler.AnalyzeRequest)
		requests.GET("/:id/plan", c.PlanHandler.GetPlanByRequest)
	}
}

// ========================================
// SOURCE PLAN ROUTES
// ========================================
func setupPlanRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/plans", c.PlanHandler.ListPlans)
}

// ========================================
// ALERT ROUTES
// ========================================
func setupAlertRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/alerts", c.AlertHandler.ListAlerts)
}

// ========================================
// METRICS ROUTES
// ========================================
func setupMetricsRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/metrics/summary", c.MetricsHandler.GetMetrics)
}

// ========================================
// ADMIN ROUTES (operator token required)
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.Config.Auth.JWTSecret))
	{
		admin.POST("/requests/:id/approve", c.RequestHandler.ApproveRequest)
		admin.POST("/requests/:id/reject", c.RequestHandler.RejectRequest)
		admin.POST("/routes/optimize", c.CatalogHandler.OptimizeRoutes)
		admin.POST("/alerts/:id/resolve", c.AlertHandler.ResolveAlert)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":      "ok",
			"environment": c.Config.App.Environment,
		}

		if c.Redis != nil {
			if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
				health["redis"] = "down"
				health["status"] = "degraded"
			} else {
				health["redis"] = "ok"
			}
		}
		if c.DB != nil {
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				health["database"] = "down"
				health["status"] = "degraded"
			} else {
				health["database"] = "ok"
			}
		}

		response.Success(ctx, http.StatusOK, health)
	}
}
