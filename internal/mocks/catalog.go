package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockFoodRepository is a mock implementation of repository.FoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) List(ctx context.Context) ([]models.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) Get(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

// MockCatalogService is a mock implementation of the CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListFoods(ctx context.Context, filter types.FoodFilter) ([]models.Food, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockCatalogService) GetFood(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockCatalogService) ResolveImages(ctx context.Context, recs []models.Recommendation) {
	m.Called(ctx, recs)
}

// MockImageResolver is a mock implementation of service.ImageResolver
type MockImageResolver struct {
	mock.Mock
}

func (m *MockImageResolver) ResolveImageURL(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}
