package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/testhelpers"
)

const catalogJSON = `[
  {
    "name_english": "Moong Dal Khichdi",
    "name_hindi": "मूंग दाल खिचड़ी",
    "cuisine_type": "north_indian",
    "health_benefits": ["diabetes", "digestion"],
    "nutritional_values": {"calories": 210, "protein": 9, "carbs": 35, "fat": 4, "fiber": 5},
    "ayurvedic_properties": {"dosha_balance": ["tridosha"]},
    "dietary_compatibility": ["vegetarian", "vegan"],
    "ingredients": [{"name": "moong dal", "quantity": "1 cup"}, {"name": "rice"}],
    "season": ["all"]
  },
  {
    "name_english": "Ragi Dosa",
    "cuisine_type": "south_indian",
    "health_benefits": ["bone health"],
    "season": ["winter"]
  }
]`

func TestLoadCatalog(t *testing.T) {
	foods, err := loadCatalog(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	require.Len(t, foods, 2)

	assert.Equal(t, "Moong Dal Khichdi", foods[0].NameEnglish)
	assert.Equal(t, 9.0, foods[0].NutritionalValues.Data().Protein)
	assert.Equal(t, []string{"tridosha"}, foods[0].AyurvedicProperties.Data().DoshaBalance)
	assert.Equal(t, "rice", foods[0].Ingredients[1].Name)
}

func TestLoadCatalogRejectsUnnamedFood(t *testing.T) {
	_, err := loadCatalog(strings.NewReader(`[{"cuisine_type":"north_indian"}]`))
	assert.Error(t, err)

	_, err = loadCatalog(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestSeedUpsertsByName(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	ctx := context.Background()
	foods, err := loadCatalog(strings.NewReader(catalogJSON))
	require.NoError(t, err)

	created, updated, err := seed(ctx, db, foods)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, updated)

	foods[1].Description = "finger millet crepe"
	created, updated, err = seed(ctx, db, foods)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 2, updated)

	var stored []models.Food
	require.NoError(t, db.Order("name_english").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, "finger millet crepe", stored[1].Description)
}
