package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewTestProfile returns a complete, valid profile for userID.
func NewTestProfile(userID uuid.UUID) *models.HealthProfile {
	return &models.HealthProfile{
		UserID:                userID,
		Age:                   34,
		Height:                168,
		Weight:                64.5,
		Gender:                "female",
		BloodGroup:            "B+",
		DietaryHabit:          models.DietVegetarian,
		ActivityLevel:         models.ActivityModerate,
		WorkType:              "desk_job",
		AyurvedicConstitution: "pitta",
		Diseases:              datatypes.JSONSlice[models.Disease]{{Name: "diabetes", Severity: "mild"}},
		Allergies:             datatypes.JSONSlice[string]{"peanut"},
		PreferredCuisine:      datatypes.JSONSlice[string]{"south_indian"},
		ReligiousRestrictions: datatypes.JSONSlice[string]{},
		HealthGoals:           datatypes.JSONSlice[string]{"weight_loss"},
		CurrentMedications:    datatypes.JSONSlice[string]{},
	}
}

// NewTestFood returns a vegetarian, all-season catalog entry.
func NewTestFood(name string, benefits ...string) models.Food {
	return models.Food{
		NameEnglish:          name,
		CuisineType:          "north_indian",
		HealthBenefits:       datatypes.JSONSlice[string](benefits),
		NutritionalValues:    datatypes.NewJSONType(models.NutritionalValues{Calories: 200, Protein: 4, Fiber: 2}),
		AyurvedicProperties:  datatypes.NewJSONType(models.AyurvedicProperties{DoshaBalance: []string{"vata"}}),
		DietaryCompatibility: datatypes.JSONSlice[string]{models.DietVegetarian},
		Ingredients:          datatypes.JSONSlice[models.Ingredient]{{Name: "rice", Quantity: "1 cup"}},
		Season:               datatypes.JSONSlice[string]{models.SeasonAll},
	}
}

// SeedFoods inserts foods and returns them with their assigned ids.
func SeedFoods(t *testing.T, db *gorm.DB, foods ...models.Food) []models.Food {
	t.Helper()
	for i := range foods {
		if err := db.Create(&foods[i]).Error; err != nil {
			t.Fatalf("failed to seed food %s: %v", foods[i].NameEnglish, err)
		}
	}
	return foods
}

// SeedProfile inserts p and returns it.
func SeedProfile(t *testing.T, db *gorm.DB, p *models.HealthProfile) *models.HealthProfile {
	t.Helper()
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return p
}
