package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockRecommendationRepository is a mock implementation of repository.RecommendationRepository
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Recommendation, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recommendation), args.Error(1)
}

// Create accepts either a fixed return value or a
// func(context.Context, *models.Recommendation) (*models.Recommendation, error).
func (m *MockRecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error) {
	args := m.Called(ctx, rec)
	if fn, ok := args.Get(0).(func(context.Context, *models.Recommendation) (*models.Recommendation, error)); ok {
		return fn(ctx, rec)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Update(ctx context.Context, id uuid.UUID, upd models.RecommendationUpdate) (*models.Recommendation, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

// MockRecommendationService is a mock implementation of the RecommendationService interface
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Load(ctx context.Context, userID uuid.UUID) (service.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.Session), args.Error(1)
}

func (m *MockRecommendationService) Generate(ctx context.Context, userID uuid.UUID) (service.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.Session), args.Error(1)
}

func (m *MockRecommendationService) Rate(ctx context.Context, userID, recommendationID uuid.UUID, rating int) (models.Recommendation, error) {
	args := m.Called(ctx, userID, recommendationID, rating)
	return args.Get(0).(models.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) Snapshot(userID uuid.UUID) service.Session {
	args := m.Called(userID)
	return args.Get(0).(service.Session)
}

func (m *MockRecommendationService) Invalidate(userID uuid.UUID) {
	m.Called(userID)
}
