package models

import (
	"gorm.io/datatypes"
)

// ProfileUpdate lists every profile attribute an owner may change. A nil field
// is left untouched.
type ProfileUpdate struct {
	Age                   *int       `json:"age,omitempty" validate:"omitempty,min=1,max=120"`
	Height                *float64   `json:"height,omitempty" validate:"omitempty,gt=0"`
	Weight                *float64   `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Gender                *string    `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	BloodGroup            *string    `json:"blood_group,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DietaryHabit          *string    `json:"dietary_habit,omitempty" validate:"omitempty,oneof=vegetarian non_vegetarian vegan eggetarian"`
	ActivityLevel         *string    `json:"activity_level,omitempty" validate:"omitempty,oneof=sedentary moderate active"`
	WorkType              *string    `json:"work_type,omitempty" validate:"omitempty,oneof=desk_job field_work student homemaker retired other"`
	AyurvedicConstitution *string    `json:"ayurvedic_constitution,omitempty" validate:"omitempty,oneof=vata pitta kapha vata_pitta pitta_kapha vata_kapha"`
	Diseases              *[]Disease `json:"diseases,omitempty" validate:"omitempty,dive"`
	Allergies             *[]string  `json:"allergies,omitempty"`
	PreferredCuisine      *[]string  `json:"preferred_cuisine,omitempty"`
	ReligiousRestrictions *[]string  `json:"religious_restrictions,omitempty"`
	HealthGoals           *[]string  `json:"health_goals,omitempty"`
	CurrentMedications    *[]string  `json:"current_medications,omitempty"`
}

// IsEmpty reports whether the update touches no field.
func (u ProfileUpdate) IsEmpty() bool {
	return len(u.Columns()) == 0
}

// Columns returns the column/value pairs to write, keyed by column name.
func (u ProfileUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Age != nil {
		cols["age"] = *u.Age
	}
	if u.Height != nil {
		cols["height"] = *u.Height
	}
	if u.Weight != nil {
		cols["weight"] = *u.Weight
	}
	if u.Gender != nil {
		cols["gender"] = *u.Gender
	}
	if u.BloodGroup != nil {
		cols["blood_group"] = *u.BloodGroup
	}
	if u.DietaryHabit != nil {
		cols["dietary_habit"] = *u.DietaryHabit
	}
	if u.ActivityLevel != nil {
		cols["activity_level"] = *u.ActivityLevel
	}
	if u.WorkType != nil {
		cols["work_type"] = *u.WorkType
	}
	if u.AyurvedicConstitution != nil {
		cols["ayurvedic_constitution"] = *u.AyurvedicConstitution
	}
	if u.Diseases != nil {
		cols["diseases"] = datatypes.JSONSlice[Disease](*u.Diseases)
	}
	if u.Allergies != nil {
		cols["allergies"] = datatypes.JSONSlice[string](*u.Allergies)
	}
	if u.PreferredCuisine != nil {
		cols["preferred_cuisine"] = datatypes.JSONSlice[string](*u.PreferredCuisine)
	}
	if u.ReligiousRestrictions != nil {
		cols["religious_restrictions"] = datatypes.JSONSlice[string](*u.ReligiousRestrictions)
	}
	if u.HealthGoals != nil {
		cols["health_goals"] = datatypes.JSONSlice[string](*u.HealthGoals)
	}
	if u.CurrentMedications != nil {
		cols["current_medications"] = datatypes.JSONSlice[string](*u.CurrentMedications)
	}
	return cols
}

// FullProfileUpdate turns a complete profile into an update that overwrites
// every owner-editable field.
func FullProfileUpdate(p *HealthProfile) ProfileUpdate {
	diseases := []Disease(p.Diseases)
	allergies := []string(p.Allergies)
	cuisine := []string(p.PreferredCuisine)
	restrictions := []string(p.ReligiousRestrictions)
	goals := []string(p.HealthGoals)
	medications := []string(p.CurrentMedications)
	return ProfileUpdate{
		Age:                   &p.Age,
		Height:                &p.Height,
		Weight:                &p.Weight,
		Gender:                &p.Gender,
		BloodGroup:            &p.BloodGroup,
		DietaryHabit:          &p.DietaryHabit,
		ActivityLevel:         &p.ActivityLevel,
		WorkType:              &p.WorkType,
		AyurvedicConstitution: &p.AyurvedicConstitution,
		Diseases:              &diseases,
		Allergies:             &allergies,
		PreferredCuisine:      &cuisine,
		ReligiousRestrictions: &restrictions,
		HealthGoals:           &goals,
		CurrentMedications:    &medications,
	}
}

// RecommendationUpdate is the only mutation a persisted recommendation accepts.
type RecommendationUpdate struct {
	UserRating *int `json:"user_rating,omitempty" validate:"omitempty,min=1,max=5"`
}

func (u RecommendationUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.UserRating != nil {
		cols["user_rating"] = *u.UserRating
	}
	return cols
}
