package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/ahara/backend/config"
	"github.com/pageza/ahara/backend/internal/api"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/middleware"
	"github.com/pageza/ahara/backend/internal/service"
)

// Dependencies are the wired services the routes are served by. Redis is
// optional; without it generation is not rate limited.
type Dependencies struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              *gorm.DB
	Redis           *redis.Client
	Auth            service.IAuthService
	Profiles        service.IProfileService
	Catalog         service.ICatalogService
	Recommendations service.IRecommendationService
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORS(deps.Config.Server.CORSOrigins))
	router.NoRoute(middleware.NotFound())

	health := api.NewHealthHandler(deps.DB, deps.Redis)
	router.GET("/api/health", api.HealthCheck)
	router.GET("/api/ready", health.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var limiter gin.HandlerFunc
	if deps.Redis != nil {
		rc := deps.Config.Recommendation
		limiter = middleware.NewGenerationRateLimiter(deps.Redis, rc.GenerateLimit, rc.GenerateWindow, deps.Logger).RateLimitMiddleware()
	}

	// Protected routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.Auth))
	{
		api.NewProfileHandler(deps.Profiles).RegisterRoutes(v1)
		api.NewFoodHandler(deps.Catalog).RegisterRoutes(v1)
		api.NewRecommendationHandler(deps.Recommendations, deps.Catalog, limiter).RegisterRoutes(v1)
	}

	return router
}
