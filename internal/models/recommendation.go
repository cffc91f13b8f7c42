package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recommendation is one row of a generation batch: a food suggested to a user
// with its score and justification at the time of generation.
type Recommendation struct {
	ID          uuid.UUID                   `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID                   `gorm:"type:varchar(36);not null;index:idx_recommendations_user_generated,priority:1" json:"user_id"`
	FoodID      uuid.UUID                   `gorm:"type:varchar(36);not null" json:"food_id"`
	Score       int                         `gorm:"not null;check:score >= 0 AND score <= 100" json:"score"`
	HealthMatch datatypes.JSONSlice[string] `json:"health_match"`
	Reason      string                      `gorm:"type:text;not null" json:"reason"`
	Rank        int                         `gorm:"column:batch_rank;not null;default:0" json:"rank"`
	GeneratedAt time.Time                   `gorm:"not null;index:idx_recommendations_user_generated,priority:2" json:"generated_at"`
	UserRating  *int                        `gorm:"check:user_rating IS NULL OR (user_rating >= 1 AND user_rating <= 5)" json:"user_rating,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	// Food is the catalog entry joined at read time. Nil when the food has
	// since left the catalog.
	Food *Food `gorm:"-" json:"food,omitempty"`
}

func (Recommendation) TableName() string {
	return "food_recommendations"
}

func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
