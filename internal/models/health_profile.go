package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Dietary habits accepted on a profile.
const (
	DietVegetarian    = "vegetarian"
	DietNonVegetarian = "non_vegetarian"
	DietVegan         = "vegan"
	DietEggetarian    = "eggetarian"
)

// Activity levels accepted on a profile.
const (
	ActivitySedentary = "sedentary"
	ActivityModerate  = "moderate"
	ActivityActive    = "active"
)

// Disease is a condition declared on a health profile.
type Disease struct {
	Name     string `json:"name" validate:"required"`
	Severity string `json:"severity,omitempty" validate:"omitempty,oneof=mild moderate severe"`
}

// HealthProfile is the single health record a user keeps. At most one exists per user.
type HealthProfile struct {
	ID                    uuid.UUID                    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID                uuid.UUID                    `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Age                   int                          `gorm:"not null" json:"age"`
	Height                float64                      `gorm:"not null" json:"height"`
	Weight                float64                      `gorm:"not null" json:"weight"`
	Gender                string                       `gorm:"size:16;not null" json:"gender"`
	BloodGroup            string                       `gorm:"size:4;not null" json:"blood_group"`
	DietaryHabit          string                       `gorm:"size:32;not null" json:"dietary_habit"`
	ActivityLevel         string                       `gorm:"size:32;not null" json:"activity_level"`
	WorkType              string                       `gorm:"size:32;not null" json:"work_type"`
	AyurvedicConstitution string                       `gorm:"size:32" json:"ayurvedic_constitution"`
	Diseases              datatypes.JSONSlice[Disease] `json:"diseases"`
	Allergies             datatypes.JSONSlice[string]  `json:"allergies"`
	PreferredCuisine      datatypes.JSONSlice[string]  `json:"preferred_cuisine"`
	ReligiousRestrictions datatypes.JSONSlice[string]  `json:"religious_restrictions"`
	HealthGoals           datatypes.JSONSlice[string]  `json:"health_goals"`
	CurrentMedications    datatypes.JSONSlice[string]  `json:"current_medications"`
	CreatedAt             time.Time                    `json:"created_at"`
	UpdatedAt             time.Time                    `json:"updated_at"`
}

func (HealthProfile) TableName() string {
	return "health_profiles"
}

// BeforeCreate assigns an id when the caller did not.
func (p *HealthProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DiseaseNames returns the declared disease names in profile order.
func (p *HealthProfile) DiseaseNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Diseases))
	for _, d := range p.Diseases {
		names = append(names, d.Name)
	}
	return names
}
