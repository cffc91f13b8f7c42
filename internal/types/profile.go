package types

import (
	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/models"
	"gorm.io/datatypes"
)

// CreateProfileRequest is the full health profile form. Every required field
// must be present before anything is written.
type CreateProfileRequest struct {
	Age                   int              `json:"age" validate:"required,min=1,max=120"`
	Height                float64          `json:"height" validate:"required,gt=0"`
	Weight                float64          `json:"weight" validate:"required,gt=0"`
	Gender                string           `json:"gender" validate:"required,oneof=male female other"`
	BloodGroup            string           `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DietaryHabit          string           `json:"dietary_habit" validate:"required,oneof=vegetarian non_vegetarian vegan eggetarian"`
	ActivityLevel         string           `json:"activity_level" validate:"required,oneof=sedentary moderate active"`
	WorkType              string           `json:"work_type" validate:"required,oneof=desk_job field_work student homemaker retired other"`
	AyurvedicConstitution string           `json:"ayurvedic_constitution" validate:"omitempty,oneof=vata pitta kapha vata_pitta pitta_kapha vata_kapha"`
	Diseases              []models.Disease `json:"diseases" validate:"dive"`
	Allergies             []string         `json:"allergies"`
	PreferredCuisine      []string         `json:"preferred_cuisine"`
	ReligiousRestrictions []string         `json:"religious_restrictions"`
	HealthGoals           []string         `json:"health_goals"`
	CurrentMedications    []string         `json:"current_medications"`
}

// ToModel builds the profile row for userID. Missing lists become empty lists.
func (r *CreateProfileRequest) ToModel(userID uuid.UUID) *models.HealthProfile {
	return &models.HealthProfile{
		UserID:                userID,
		Age:                   r.Age,
		Height:                r.Height,
		Weight:                r.Weight,
		Gender:                r.Gender,
		BloodGroup:            r.BloodGroup,
		DietaryHabit:          r.DietaryHabit,
		ActivityLevel:         r.ActivityLevel,
		WorkType:              r.WorkType,
		AyurvedicConstitution: r.AyurvedicConstitution,
		Diseases:              datatypes.JSONSlice[models.Disease](nonNil(r.Diseases)),
		Allergies:             datatypes.JSONSlice[string](nonNil(r.Allergies)),
		PreferredCuisine:      datatypes.JSONSlice[string](nonNil(r.PreferredCuisine)),
		ReligiousRestrictions: datatypes.JSONSlice[string](nonNil(r.ReligiousRestrictions)),
		HealthGoals:           datatypes.JSONSlice[string](nonNil(r.HealthGoals)),
		CurrentMedications:    datatypes.JSONSlice[string](nonNil(r.CurrentMedications)),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
