package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/models"
	"gorm.io/gorm"
)

type foodRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ FoodRepository = (*foodRepo)(nil)

func NewFoodRepo(db *gorm.DB, baseLog *logger.Logger) FoodRepository {
	return &foodRepo{db: db, log: baseLog.With("repo", "FoodRepo")}
}

func (r *foodRepo) List(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := r.db.WithContext(ctx).
		Order("name_english ASC").
		Order("id ASC").
		Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return foods, nil
}

func (r *foodRepo) Get(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var food models.Food
	if err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	return &food, nil
}
