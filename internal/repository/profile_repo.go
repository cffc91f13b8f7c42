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

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ ProfileRepository = (*profileRepo)(nil)

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepository {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (r *profileRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	var profiles []models.HealthProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrNotFound
	}
	return &profiles[0], nil
}

func (r *profileRepo) Create(ctx context.Context, profile *models.HealthProfile) (*models.HealthProfile, error) {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return r.get(ctx, profile.ID)
}

func (r *profileRepo) Update(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.HealthProfile, error) {
	cols := upd.Columns()
	if len(cols) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.HealthProfile{}).
			Where("id = ?", id).
			Updates(cols)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.get(ctx, id)
}

func (r *profileRepo) get(ctx context.Context, id uuid.UUID) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}
