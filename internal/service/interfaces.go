package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/types"
)

// IAuthService defines the interface for bearer token operations
type IAuthService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(userID uuid.UUID, ttl time.Duration) (string, error)
}

// IProfileService defines the interface for health profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, req *types.CreateProfileRequest) (*models.HealthProfile, bool, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.HealthProfile, error)
}

// ICatalogService defines the interface for catalog browsing
type ICatalogService interface {
	ListFoods(ctx context.Context, filter types.FoodFilter) ([]models.Food, error)
	GetFood(ctx context.Context, id uuid.UUID) (*models.Food, error)
	ResolveImages(ctx context.Context, recs []models.Recommendation)
}

// IRecommendationService defines the interface for the recommendation lifecycle
type IRecommendationService interface {
	Load(ctx context.Context, userID uuid.UUID) (Session, error)
	Generate(ctx context.Context, userID uuid.UUID) (Session, error)
	Rate(ctx context.Context, userID, recommendationID uuid.UUID, rating int) (models.Recommendation, error)
	Snapshot(userID uuid.UUID) Session
	Invalidate(userID uuid.UUID)
}
