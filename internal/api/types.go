package api

import (
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/validation"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// RatingResponse is returned after a rating is saved.
type RatingResponse struct {
	Notice         string                `json:"notice"`
	Recommendation models.Recommendation `json:"recommendation"`
}

// FoodsResponse wraps a catalog listing.
type FoodsResponse struct {
	Foods []models.Food `json:"foods"`
	Count int           `json:"count"`
}
