// Package repository holds the gorm adapters for the three collections the
// recommendation core reads and writes: health profiles, foods and
// recommendations.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("record already exists")
)

// ProfileRepository reads and writes a user's health profile.
type ProfileRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error)
	Create(ctx context.Context, profile *models.HealthProfile) (*models.HealthProfile, error)
	Update(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.HealthProfile, error)
}

// FoodRepository is a read-only view of the food catalog.
type FoodRepository interface {
	// List returns the whole catalog in a stable order.
	List(ctx context.Context) ([]models.Food, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Food, error)
}

// RecommendationRepository persists generated recommendations.
type RecommendationRepository interface {
	// ListByUser returns the user's recommendations, newest batch first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Recommendation, error)
	Create(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error)
	Update(ctx context.Context, id uuid.UUID, upd models.RecommendationUpdate) (*models.Recommendation, error)
}
