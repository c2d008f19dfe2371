package routes

import (
	"net/http"

	"asset-inventory-dashboard/internal/config"
	"asset-inventory-dashboard/internal/delivery/http/handler"
	"asset-inventory-dashboard/internal/diagnostics"
	"asset-inventory-dashboard/internal/infrastructure/database/postgres"
	"asset-inventory-dashboard/internal/logger"
	"asset-inventory-dashboard/internal/middleware"
	"asset-inventory-dashboard/internal/usecase/asset"
	"asset-inventory-dashboard/internal/usecase/dashboard"
	"asset-inventory-dashboard/internal/usecase/maintenance"

	"github.com/gin-gonic/gin"
)

const maxRequestSize = 1 << 20

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Health() error
}

// Services holds the use cases served over HTTP.
type Services struct {
	Assets      *asset.Service
	Maintenance *maintenance.Service
	Dashboard   *dashboard.Service
}

// NewServices wires the postgres repositories into the use cases.
func NewServices(cfg *config.Config, db *postgres.DB, sink diagnostics.Sink) *Services {
	assetRepository := postgres.NewAssetRepository(db)
	companyRepository := postgres.NewCompanyRepository(db)
	maintenanceRepository := postgres.NewMaintenanceRepository(db, cfg.Dashboard.UpcomingWindow)

	return &Services{
		Assets:      asset.NewService(assetRepository, cfg.Dashboard.AssetListPageSize),
		Maintenance: maintenance.NewService(maintenanceRepository, companyRepository),
		Dashboard:   dashboard.NewService(assetRepository, maintenanceRepository, sink, cfg.Dashboard),
	}
}

func SetupRoutes(cfg *config.Config, health HealthChecker, services *Services) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Order: recovery, request ID, logging, security headers, CORS, request size limit, rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(maxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := health.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":        "healthy",
			"message":       "Service is running",
			"open_sessions": services.Dashboard.OpenSessions(),
		})
	})

	dashboardHandler := handler.NewDashboardHandler(services.Dashboard)
	assetHandler := handler.NewAssetHandler(services.Assets)
	maintenanceHandler := handler.NewMaintenanceHandler(services.Maintenance)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(&cfg.JWT))
	v1.Use(middleware.DashboardReaders())
	{
		dashboardHandler.RegisterRoutes(v1)
		assetHandler.RegisterRoutes(v1)
		maintenanceHandler.RegisterRoutes(v1)
	}

	logger.Info("All routes initialized")
	return router
}
