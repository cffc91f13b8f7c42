package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestProfileUpdateColumnsOnlySetFields(t *testing.T) {
	age := 41
	habit := DietVegan
	allergies := []string{"peanut"}
	upd := ProfileUpdate{Age: &age, DietaryHabit: &habit, Allergies: &allergies}

	cols := upd.Columns()
	assert.Len(t, cols, 3)
	assert.Equal(t, 41, cols["age"])
	assert.Equal(t, DietVegan, cols["dietary_habit"])
	assert.Equal(t, datatypes.JSONSlice[string]{"peanut"}, cols["allergies"])
	assert.False(t, upd.IsEmpty())
}

func TestProfileUpdateEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())
}

func TestFullProfileUpdateCoversEditableFields(t *testing.T) {
	p := &HealthProfile{Age: 30, Gender: "female", Diseases: datatypes.JSONSlice[Disease]{{Name: "diabetes"}}}
	cols := FullProfileUpdate(p).Columns()
	assert.Len(t, cols, 15)
	assert.Equal(t, "female", cols["gender"])
	assert.Equal(t, datatypes.JSONSlice[Disease]{{Name: "diabetes"}}, cols["diseases"])
}

func TestRecommendationUpdateColumns(t *testing.T) {
	assert.Empty(t, RecommendationUpdate{}.Columns())
	r := 4
	assert.Equal(t, map[string]interface{}{"user_rating": 4}, RecommendationUpdate{UserRating: &r}.Columns())
}

func TestDiseaseNames(t *testing.T) {
	p := &HealthProfile{Diseases: datatypes.JSONSlice[Disease]{{Name: "diabetes"}, {Name: "hypertension", Severity: "mild"}}}
	assert.Equal(t, []string{"diabetes", "hypertension"}, p.DiseaseNames())
	var nilProfile *HealthProfile
	assert.Nil(t, nilProfile.DiseaseNames())
}
