package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newRec(userID uuid.UUID, rank int, at time.Time) *models.Recommendation {
	return &models.Recommendation{
		UserID:      userID,
		FoodID:      uuid.New(),
		Score:       70 - rank,
		HealthMatch: datatypes.JSONSlice[string]{},
		Reason:      "Recommended because: suitable for your dietary preference",
		Rank:        rank,
		GeneratedAt: at,
	}
}

func TestRecommendationRepo_ListByUserOrdering(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	repo := NewRecommendationRepo(db, logger.NewNop())
	ctx := context.Background()

	userID := uuid.New()
	older := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	// insert out of order to prove the query sorts
	for _, rec := range []*models.Recommendation{
		newRec(userID, 1, older),
		newRec(userID, 1, newer),
		newRec(userID, 0, older),
		newRec(userID, 0, newer),
		newRec(uuid.New(), 0, newer),
	} {
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}

	recs, err := repo.ListByUser(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.True(t, recs[0].GeneratedAt.Equal(newer))
	assert.Equal(t, 0, recs[0].Rank)
	assert.True(t, recs[1].GeneratedAt.Equal(newer))
	assert.Equal(t, 1, recs[1].Rank)
	assert.True(t, recs[2].GeneratedAt.Equal(older))
	assert.Equal(t, 0, recs[2].Rank)
	assert.Equal(t, 1, recs[3].Rank)

	limited, err := repo.ListByUser(ctx, userID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRecommendationRepo_CreateReturnsStoredRow(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	repo := NewRecommendationRepo(db, logger.NewNop())

	in := newRec(uuid.New(), 0, time.Now().UTC())
	in.HealthMatch = datatypes.JSONSlice[string]{"diabetes"}
	stored, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, []string{"diabetes"}, []string(stored.HealthMatch))
	assert.Nil(t, stored.UserRating)
	assert.Nil(t, stored.Food)
}

func TestRecommendationRepo_UpdateRating(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	repo := NewRecommendationRepo(db, logger.NewNop())
	ctx := context.Background()

	stored, err := repo.Create(ctx, newRec(uuid.New(), 0, time.Now().UTC()))
	require.NoError(t, err)

	rating := 4
	updated, err := repo.Update(ctx, stored.ID, models.RecommendationUpdate{UserRating: &rating})
	require.NoError(t, err)
	require.NotNil(t, updated.UserRating)
	assert.Equal(t, 4, *updated.UserRating)
	assert.Equal(t, stored.Score, updated.Score)

	// same value again is accepted
	_, err = repo.Update(ctx, stored.ID, models.RecommendationUpdate{UserRating: &rating})
	require.NoError(t, err)

	_, err = repo.Update(ctx, uuid.New(), models.RecommendationUpdate{UserRating: &rating})
	assert.ErrorIs(t, err, ErrNotFound)
}
