package container

import (
	"context"
	"fmt"
	"time"

	"distribution-oos-backend/internal/config"
	infraCache "distribution-oos-backend/internal/infrastructure/cache"
	"distribution-oos-backend/internal/infrastructure/database"
	"distribution-oos-backend/internal/infrastructure/queue"
	"distribution-oos-backend/pkg/cache"
	"distribution-oos-backend/pkg/jwt"
	"distribution-oos-backend/pkg/logger"

	alertHandler "distribution-oos-backend/internal/domains/alert/handler"
	alertRepo "distribution-oos-backend/internal/domains/alert/repository"
	alertService "distribution-oos-backend/internal/domains/alert/service"
	authHandler "distribution-oos-backend/internal/domains/auth/handler"
	catalogHandler "distribution-oos-backend/internal/domains/catalog/handler"
	catalogRepo "distribution-oos-backend/internal/domains/catalog/repository"
	catalogService "distribution-oos-backend/internal/domains/catalog/service"
	forecastHandler "distribution-oos-backend/internal/domains/forecast/handler"
	forecastRepo "distribution-oos-backend/internal/domains/forecast/repository"
	forecastService "distribution-oos-backend/internal/domains/forecast/service"
	metricsHandler "distribution-oos-backend/internal/domains/metrics/handler"
	metricsService "distribution-oos-backend/internal/domains/metrics/service"
	planHandler "distribution-oos-backend/internal/domains/planning/handler"
	planRepo "distribution-oos-backend/internal/domains/planning/repository"
	planService "distribution-oos-backend/internal/domains/planning/service"
	requestHandler "distribution-oos-backend/internal/domains/request/handler"
	requestRepo "distribution-oos-backend/internal/domains/request/repository"
	requestService "distribution-oos-backend/internal/domains/request/service"
)

// Container là root của dependency graph. Thứ tự init:
// config → infrastructure → repositories → services → handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB // nil khi CATALOG_BACKEND=memory
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Queue      *queue.Client

	CatalogRepo  catalogRepo.Repository
	ForecastRepo forecastRepo.Repository
	RequestRepo  requestRepo.Repository
	PlanRepo     planRepo.Repository
	AlertRepo    alertRepo.Repository

	CatalogService  catalogService.Service
	ForecastService forecastService.Service
	PlanService     planService.PlanService
	MetricsService  metricsService.Service
	AlertService    alertService.Service
	RequestService  requestService.Service
	Analyzer        *requestService.Analyzer

	CatalogHandler  *catalogHandler.Handler
	ForecastHandler *forecastHandler.Handler
	PlanHandler     *planHandler.Handler
	MetricsHandler  *metricsHandler.Handler
	AlertHandler    *alertHandler.Handler
	RequestHandler  *requestHandler.Handler
	AuthHandler     *authHandler.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	if err := c.initRepositories(); err != nil {
		return nil, err
	}
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"environment":     cfg.App.Environment,
		"catalog_backend": cfg.Catalog.Backend,
	})
	return c, nil
}

func (c *Container) initInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Postgres chỉ cần cho catalog backend "postgres"
	if c.Config.Catalog.Backend == "postgres" {
		db := database.NewPostgresDB(c.Config.Database)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db
	}

	// Redis cho cache; development fallback về in-process cache khi
	// Redis không chạy
	redisClient := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		if c.Config.App.Environment != "development" {
			return fmt.Errorf("connect redis: %w", err)
		}
		logger.Warn("redis unavailable, using in-process cache", map[string]interface{}{"error": err.Error()})
		c.Cache = cache.NewMemoryCache()
	} else {
		c.Redis = redisClient
		c.Cache = infraCache.NewRedisCache(redisClient)
	}

	c.JWTManager = jwt.NewManager(c.Config.Auth.JWTSecret, c.Config.Auth.TokenExpiryHours)
	c.Queue = queue.NewClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	return nil
}

func (c *Container) initRepositories() error {
	switch c.Config.Catalog.Backend {
	case "postgres":
		c.CatalogRepo = catalogRepo.NewPostgresRepository(c.DB.Pool)
	case "memory":
		c.CatalogRepo = catalogRepo.NewSeededMemoryRepository()
	default:
		return fmt.Errorf("unknown catalog backend %q", c.Config.Catalog.Backend)
	}

	c.ForecastRepo = forecastRepo.NewSeededMemoryRepository()
	c.RequestRepo = requestRepo.NewSeededMemoryRepository()
	c.PlanRepo = planRepo.NewSeededMemoryRepository()
	c.AlertRepo = alertRepo.NewSeededMemoryRepository()
	return nil
}

func (c *Container) initServices() {
	c.MetricsService = metricsService.NewService(c.RequestRepo, c.Cache)
	c.CatalogService = catalogService.NewService(c.CatalogRepo, c.Cache, c.MetricsService)
	c.ForecastService = forecastService.NewService(c.ForecastRepo)
	c.PlanService = planService.NewPlanService(c.PlanRepo)
	c.AlertService = alertService.NewService(c.AlertRepo, c.CatalogRepo)

	planner := planService.NewPlanner(c.CatalogRepo)
	evaluator := planService.NewEvaluator(c.ForecastRepo)
	c.Analyzer = requestService.NewAnalyzer(
		c.RequestRepo,
		c.CatalogRepo,
		c.PlanRepo,
		planner,
		evaluator,
		c.MetricsService,
		c.Queue,
	)

	interpreter := requestService.NewInterpreter(c.CatalogRepo)
	c.RequestService = requestService.NewService(
		c.RequestRepo,
		c.CatalogRepo,
		c.PlanRepo,
		c.Analyzer,
		interpreter,
		c.MetricsService,
	)
}

func (c *Container) initHandlers() {
	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService)
	c.ForecastHandler = forecastHandler.NewHandler(c.ForecastService)
	c.PlanHandler = planHandler.NewHandler(c.PlanService)
	c.MetricsHandler = metricsHandler.NewHandler(c.MetricsService)
	c.AlertHandler = alertHandler.NewHandler(c.AlertService)
	c.RequestHandler = requestHandler.NewHandler(c.RequestService)
	c.AuthHandler = authHandler.NewHandler(c.Config, c.JWTManager)
}

// Cleanup đóng connections theo thứ tự ngược với init
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("close queue client", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
