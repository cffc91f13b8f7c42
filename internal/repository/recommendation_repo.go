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

type recommendationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ RecommendationRepository = (*recommendationRepo)(nil)

func NewRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationRepository {
	return &recommendationRepo{db: db, log: baseLog.With("repo", "RecommendationRepo")}
}

func (r *recommendationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Recommendation, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Order("batch_rank ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []models.Recommendation
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recs, nil
}

// Create inserts rec. The stored row, not the argument, is returned.
func (r *recommendationRepo) Create(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error) {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create recommendation: %w", err)
	}
	return r.get(ctx, rec.ID)
}

func (r *recommendationRepo) Update(ctx context.Context, id uuid.UUID, upd models.RecommendationUpdate) (*models.Recommendation, error) {
	cols := upd.Columns()
	if len(cols) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.Recommendation{}).
			Where("id = ?", id).
			Updates(cols)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update recommendation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.get(ctx, id)
}

func (r *recommendationRepo) get(ctx context.Context, id uuid.UUID) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}
	return &rec, nil
}
