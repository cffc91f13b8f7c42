package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// DoshaTridosha marks a food that balances every constitution.
	DoshaTridosha = "tridosha"
	// SeasonAll marks a food suitable in every season.
	SeasonAll = "all"
)

// NutritionalValues are per-serving nutrition facts.
type NutritionalValues struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// AyurvedicProperties describe how a food acts on the doshas.
type AyurvedicProperties struct {
	DoshaBalance []string `json:"dosha_balance"`
	Rasa         []string `json:"rasa,omitempty"`
	Virya        string   `json:"virya,omitempty"`
}

// Ingredient is one line of a food's ingredient list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// Food is a catalog entry. The catalog is owned outside the recommendation core
// and is only ever read here.
type Food struct {
	ID                   uuid.UUID                               `gorm:"type:varchar(36);primarykey" json:"id"`
	NameEnglish          string                                  `gorm:"size:255;not null;index" json:"name_english"`
	NameHindi            string                                  `gorm:"size:255" json:"name_hindi"`
	Description          string                                  `gorm:"type:text" json:"description"`
	CuisineType          string                                  `gorm:"size:64;index" json:"cuisine_type"`
	ImageURL             string                                  `gorm:"size:512" json:"image_url"`
	HealthBenefits       datatypes.JSONSlice[string]             `json:"health_benefits"`
	Rating               float64                                 `json:"rating"`
	PreparationTime      int                                     `json:"preparation_time"`
	NutritionalValues    datatypes.JSONType[NutritionalValues]   `json:"nutritional_values"`
	AyurvedicProperties  datatypes.JSONType[AyurvedicProperties] `json:"ayurvedic_properties"`
	DietaryCompatibility datatypes.JSONSlice[string]             `json:"dietary_compatibility"`
	Ingredients          datatypes.JSONSlice[Ingredient]         `json:"ingredients"`
	Season               datatypes.JSONSlice[string]             `json:"season"`
	CreatedAt            time.Time                               `json:"created_at"`
	UpdatedAt            time.Time                               `json:"updated_at"`
}

func (Food) TableName() string {
	return "foods"
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Nutrition returns the food's nutrition facts, zero valued when absent.
func (f *Food) Nutrition() NutritionalValues {
	if f == nil {
		return NutritionalValues{}
	}
	return f.NutritionalValues.Data()
}

// DoshaBalance returns the doshas the food balances.
func (f *Food) DoshaBalance() []string {
	if f == nil {
		return nil
	}
	return f.AyurvedicProperties.Data().DoshaBalance
}
