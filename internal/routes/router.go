package routes

import (
	"context"
	"net/http"
	"time"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/delivery/http/handler"
	"logistics-backoffice/internal/domain/event"
	"logistics-backoffice/internal/infrastructure/database/postgres"
	"logistics-backoffice/internal/infrastructure/redisstore"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const healthTimeout = 2 * time.Second

// HealthCheck is one dependency checked by GET /health.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// NewRouter builds the gin engine around already constructed services.
// Background middleware work stops when ctx is done.
func NewRouter(ctx context.Context, cfg *config.Config, svc *Services, checks ...HealthCheck) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Order: recovery, request ID, metrics, logging, security headers, CORS, size limit, rate limit
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.LoggingMiddleware("/health", "/metrics"))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestSize))
	if cfg.RateLimit.GeneralRPS > 0 {
		router.Use(middleware.RateLimitMiddleware(ctx, cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))
	}

	router.GET("/health", healthHandler(checks))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handler.NewAuthHandler(svc.Auth, cfg.Session)
	clientHandler := handler.NewClientHandler(svc.Clients, svc.Orders)
	carrierHandler := handler.NewCarrierHandler(svc.Carriers, svc.Vehicles, svc.Requests)
	vehicleHandler := handler.NewVehicleHandler(svc.Vehicles)
	orderHandler := handler.NewOrderHandler(handler.OrderServices{
		Orders:    svc.Orders,
		Routes:    svc.Routes,
		Documents: svc.Documents,
		Tasks:     svc.Tasks,
		Requests:  svc.Requests,
	})
	routeHandler := handler.NewRouteHandler(svc.Routes)
	requestHandler := handler.NewTransportationRequestHandler(svc.Requests)
	taskHandler := handler.NewTaskHandler(svc.Tasks)
	notificationHandler := handler.NewNotificationHandler(svc.Notifications)
	documentHandler := handler.NewDocumentHandler(svc.Documents)
	userHandler := handler.NewUserHandler(svc.Users, svc.Tasks, svc.Notifications)
	dashboardHandler := handler.NewDashboardHandler(svc.Dashboard)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(svc.Auth, cfg.Session.CookieName))
		{
			authHandler.RegisterProtectedRoutes(protected)
			clientHandler.RegisterRoutes(protected)
			carrierHandler.RegisterRoutes(protected)
			vehicleHandler.RegisterRoutes(protected)
			orderHandler.RegisterRoutes(protected)
			routeHandler.RegisterRoutes(protected)
			requestHandler.RegisterRoutes(protected)
			taskHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			documentHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}

func healthHandler(checks []HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		components := make(map[string]string, len(checks))
		healthy := true
		for _, hc := range checks {
			if err := hc.Check(ctx); err != nil {
				components[hc.Name] = "down"
				healthy = false
				continue
			}
			components[hc.Name] = "up"
		}

		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "components": components})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "components": components})
	}
}

// SetupRoutes wires postgres, redis and the event publisher into a ready engine.
// extra health checks run after the database and redis.
func SetupRoutes(
	ctx context.Context,
	cfg *config.Config,
	db *postgres.DB,
	redisClient *redis.Client,
	publisher event.Publisher,
	extra ...HealthCheck,
) *gin.Engine {
	sessions := redisstore.NewRedisStore(redisClient)
	services := NewServices(cfg, NewPostgresRepositories(db), postgres.NewTxManager(db), sessions, publisher)

	checks := append([]HealthCheck{
		{Name: "database", Check: db.Health},
		{Name: "redis", Check: sessions.Health},
	}, extra...)
	return NewRouter(ctx, cfg, services, checks...)
}
