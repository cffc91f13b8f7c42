package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_FindByUser(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	repo := NewProfileRepo(db, logger.NewNop())
	ctx := context.Background()

	userID := uuid.New()
	_, err := repo.FindByUser(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := repo.Create(ctx, testhelpers.NewTestProfile(userID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, models.DietVegetarian, found.DietaryHabit)
	assert.Equal(t, []models.Disease{{Name: "diabetes", Severity: "mild"}}, []models.Disease(found.Diseases))
}

func TestProfileRepo_CreateConflict(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	repo := NewProfileRepo(db, logger.NewNop())
	ctx := context.Background()

	userID := uuid.New()
	_, err := repo.Create(ctx, testhelpers.NewTestProfile(userID))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testhelpers.NewTestProfile(userID))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestProfileRepo_Update(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	repo := NewProfileRepo(db, logger.NewNop())
	ctx := context.Background()

	created, err := repo.Create(ctx, testhelpers.NewTestProfile(uuid.New()))
	require.NoError(t, err)

	weight := 60.0
	allergies := []string{"dairy", "soy"}
	updated, err := repo.Update(ctx, created.ID, models.ProfileUpdate{
		Weight:    &weight,
		Allergies: &allergies,
	})
	require.NoError(t, err)
	assert.Equal(t, 60.0, updated.Weight)
	assert.Equal(t, allergies, []string(updated.Allergies))
	// untouched fields survive
	assert.Equal(t, created.Age, updated.Age)
	assert.Equal(t, created.AyurvedicConstitution, updated.AyurvedicConstitution)
}

func TestProfileRepo_UpdateMissing(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	repo := NewProfileRepo(db, logger.NewNop())

	age := 40
	_, err := repo.Update(context.Background(), uuid.New(), models.ProfileUpdate{Age: &age})
	assert.ErrorIs(t, err, ErrNotFound)
}
