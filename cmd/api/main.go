package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/ahara/backend/config"
	"github.com/pageza/ahara/backend/internal/database"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/repository"
	"github.com/pageza/ahara/backend/internal/router"
	"github.com/pageza/ahara/backend/internal/scoring"
	"github.com/pageza/ahara/backend/internal/server"
	"github.com/pageza/ahara/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLog); err != nil {
		appLog.Fatal("server exited", "error", err)
	}
	appLog.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, appLog *logger.Logger) error {
	db, err := database.Open(cfg.Database, appLog)
	if err != nil {
		return err
	}
	defer database.Close(db)

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := database.RunMigrations(ctx, db, migrationsDir, appLog); err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(cfg.Redis, appLog)
		if err != nil {
			appLog.Warn("redis unavailable, continuing without catalog cache and rate limiting", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var foods repository.FoodRepository = repository.NewFoodRepo(db, appLog)
	if redisClient != nil {
		foods = repository.NewCachedFoodRepo(foods, redisClient, cfg.Redis.CatalogTTL, appLog)
	}

	var images service.ImageResolver
	s3Cfg, err := config.NewS3Config(ctx, cfg.Storage)
	if err != nil {
		appLog.Warn("s3 unavailable, serving image references as stored", "error", err)
	} else if s3Cfg != nil {
		images = s3Cfg
	}

	sessions := service.NewSessionRegistry(
		service.WithIdleTTL(cfg.Recommendation.SessionIdleTTL),
		service.WithMaxSessions(cfg.Recommendation.MaxSessions),
	)
	profiles := repository.NewProfileRepo(db, appLog)
	engine := scoring.NewEngine(scoring.WithSeason(cfg.Recommendation.Season))
	recService := service.NewRecommendationService(
		profiles,
		foods,
		repository.NewRecommendationRepo(db, appLog),
		engine,
		sessions,
		appLog,
		service.RecommendationOptions{
			BatchSize:          cfg.Recommendation.BatchSize,
			PersistConcurrency: cfg.Recommendation.PersistConcurrency,
		},
	)

	handler := router.SetupRouter(router.Dependencies{
		Config:          cfg,
		Logger:          appLog,
		DB:              db,
		Redis:           redisClient,
		Auth:            service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		Profiles:        service.NewProfileService(profiles, sessions, appLog),
		Catalog:         service.NewCatalogService(foods, images, appLog),
		Recommendations: recService,
	})

	appLog.Info("starting server", "environment", config.GetEnvironment(), "season", engine.Season())
	return server.New(cfg.Server, handler, appLog).Run(ctx)
}
