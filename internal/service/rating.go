package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/metrics"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/repository"
	"github.com/pageza/ahara/backend/internal/validation"
)

// Rate stores the user's 1..5 rating for one recommendation of the current
// batch. Rating again overwrites the previous value. The in-memory session
// only changes once the store has accepted the write. Rate never creates
// rows: an idle session is filled from the store only.
func (s *RecommendationService) Rate(ctx context.Context, userID, recommendationID uuid.UUID, rating int) (models.Recommendation, error) {
	upd := models.RecommendationUpdate{UserRating: &rating}
	if err := validation.ValidateStruct(upd); err != nil {
		metrics.RecordRating("invalid")
		return models.Recommendation{}, err
	}

	sess := s.sessions.Snapshot(userID)
	if sess.State == StateIdle {
		loaded, err := s.loadStored(ctx, userID)
		if err != nil {
			return models.Recommendation{}, err
		}
		sess = loaded
	}

	if !sess.Has(recommendationID) {
		metrics.RecordRating("unknown")
		return models.Recommendation{}, ErrUnknownRecommendation
	}

	stored, err := s.recs.Update(ctx, recommendationID, upd)
	if err != nil {
		metrics.RecordRating("failed")
		metrics.RecordStoreError("update_recommendation")
		s.log.Error("failed to save rating", "op", "update_recommendation", "recommendation_id", recommendationID, "error", err)
		if errors.Is(err, repository.ErrNotFound) {
			return models.Recommendation{}, ErrUnknownRecommendation
		}
		return models.Recommendation{}, storeError("save rating")
	}

	metrics.RecordRating("ok")
	if rec, ok := s.sessions.setRating(userID, recommendationID, rating); ok {
		return rec, nil
	}
	// the session moved on while the write was in flight
	rec := *stored
	if rec.Food == nil {
		rec.Food = sess.food(recommendationID)
	}
	return rec, nil
}
