package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/metrics"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/repository"
	"github.com/pageza/ahara/backend/internal/types"
)

// ErrFoodNotFound is returned when a catalog entry does not exist.
var ErrFoodNotFound = errors.New("food not found")

// ImageResolver turns a stored image reference into a fetchable URL.
type ImageResolver interface {
	ResolveImageURL(ctx context.Context, ref string) (string, error)
}

// CatalogService serves read-only catalog browsing.
type CatalogService struct {
	foods  repository.FoodRepository
	images ImageResolver
	log    *logger.Logger
}

var _ ICatalogService = (*CatalogService)(nil)

// NewCatalogService builds a CatalogService. images may be nil, in which case
// image references are returned as stored.
func NewCatalogService(foods repository.FoodRepository, images ImageResolver, baseLog *logger.Logger) *CatalogService {
	return &CatalogService{foods: foods, images: images, log: baseLog.With("service", "CatalogService")}
}

// ListFoods returns the catalog in catalog order, narrowed by filter.
func (s *CatalogService) ListFoods(ctx context.Context, filter types.FoodFilter) ([]models.Food, error) {
	foods, err := s.foods.List(ctx)
	if err != nil {
		s.log.Error("failed to list foods", "op", "list_foods", "error", err)
		metrics.RecordStoreError("list_foods")
		return nil, storeError("list foods")
	}

	cuisine := strings.ToLower(strings.TrimSpace(filter.Cuisine))
	benefit := strings.ToLower(strings.TrimSpace(filter.Benefit))

	out := make([]models.Food, 0, len(foods))
	for _, food := range foods {
		if cuisine != "" && strings.ToLower(food.CuisineType) != cuisine {
			continue
		}
		if benefit != "" && !hasBenefit(food.HealthBenefits, benefit) {
			continue
		}
		s.resolveImage(ctx, &food)
		out = append(out, food)
	}
	return out, nil
}

// GetFood returns one catalog entry.
func (s *CatalogService) GetFood(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	food, err := s.foods.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		s.log.Error("failed to get food", "op", "get_food", "food_id", id, "error", err)
		metrics.RecordStoreError("get_food")
		return nil, storeError("get food")
	}
	s.resolveImage(ctx, food)
	return food, nil
}

// ResolveImages rewrites the image of every joined food in recs.
func (s *CatalogService) ResolveImages(ctx context.Context, recs []models.Recommendation) {
	for i := range recs {
		if recs[i].Food != nil {
			food := *recs[i].Food
			s.resolveImage(ctx, &food)
			recs[i].Food = &food
		}
	}
}

func (s *CatalogService) resolveImage(ctx context.Context, food *models.Food) {
	if s.images == nil || food.ImageURL == "" {
		return
	}
	url, err := s.images.ResolveImageURL(ctx, food.ImageURL)
	if err != nil {
		s.log.Warn("failed to resolve food image", "food_id", food.ID, "error", err)
		return
	}
	food.ImageURL = url
}

func hasBenefit(benefits []string, want string) bool {
	for _, b := range benefits {
		if strings.Contains(strings.ToLower(b), want) {
			return true
		}
	}
	return false
}
