package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	json "github.com/goccy/go-json"
	"gorm.io/gorm"

	"github.com/pageza/ahara/backend/config"
	"github.com/pageza/ahara/backend/internal/database"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/repository"
)

func main() {
	file := flag.String("file", "data/foods.json", "JSON food catalog to load")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appLog, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	f, err := os.Open(*file)
	if err != nil {
		appLog.Fatal("failed to open catalog", "file", *file, "error", err)
	}
	defer f.Close()

	foods, err := loadCatalog(f)
	if err != nil {
		appLog.Fatal("failed to parse catalog", "file", *file, "error", err)
	}

	db, err := database.Open(cfg.Database, appLog)
	if err != nil {
		appLog.Fatal("failed to open database", "error", err)
	}
	defer database.Close(db)

	ctx := context.Background()
	created, updated, err := seed(ctx, db, foods)
	if err != nil {
		appLog.Fatal("failed to seed foods", "error", err)
	}
	appLog.Info("seeded food catalog", "created", created, "updated", updated)

	if cfg.Redis.Enabled {
		client, err := database.NewRedisClient(cfg.Redis, appLog)
		if err != nil {
			appLog.Warn("could not reach redis to drop cached catalog", "error", err)
			return
		}
		defer client.Close()
		cache := repository.NewCachedFoodRepo(repository.NewFoodRepo(db, appLog), client, cfg.Redis.CatalogTTL, appLog)
		if err := cache.Invalidate(ctx); err != nil {
			appLog.Warn("failed to drop cached catalog", "error", err)
		}
	}
}

// loadCatalog decodes a JSON array of foods. Every entry needs an English name.
func loadCatalog(r io.Reader) ([]models.Food, error) {
	var foods []models.Food
	if err := json.NewDecoder(r).Decode(&foods); err != nil {
		return nil, err
	}
	for i, food := range foods {
		if food.NameEnglish == "" {
			return nil, fmt.Errorf("food %d has no name_english", i)
		}
	}
	return foods, nil
}

// seed upserts foods keyed by English name in one transaction.
func seed(ctx context.Context, db *gorm.DB, foods []models.Food) (created, updated int, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range foods {
			food := foods[i]
			var existing models.Food
			err := tx.Where("name_english = ?", food.NameEnglish).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&food).Error; err != nil {
					return fmt.Errorf("create %q: %w", food.NameEnglish, err)
				}
				created++
			case err != nil:
				return err
			default:
				food.ID = existing.ID
				food.CreatedAt = existing.CreatedAt
				if err := tx.Save(&food).Error; err != nil {
					return fmt.Errorf("update %q: %w", food.NameEnglish, err)
				}
				updated++
			}
		}
		return nil
	})
	return created, updated, err
}
