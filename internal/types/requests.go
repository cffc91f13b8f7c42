package types

import (
	"github.com/pageza/ahara/backend/internal/models"
)

// RateRequest is the body of a rating submission.
type RateRequest struct {
	Rating *int `json:"rating"`
}

// RecommendationsResponse is the view of a user's recommendation session.
type RecommendationsResponse struct {
	State           string                  `json:"state"`
	Outcome         string                  `json:"outcome,omitempty"`
	Notice          string                  `json:"notice,omitempty"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// FoodFilter narrows a catalog listing. Empty fields match everything.
type FoodFilter struct {
	Cuisine string `form:"cuisine"`
	Benefit string `form:"benefit"`
}
