package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/metrics"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/repository"
	"github.com/pageza/ahara/backend/internal/types"
	"github.com/pageza/ahara/backend/internal/validation"
)

// SessionInvalidator is told when a user's profile changes so their
// recommendations are recomputed on the next load.
type SessionInvalidator interface {
	Invalidate(userID uuid.UUID)
}

// ProfileService handles health profile operations
type ProfileService struct {
	profiles repository.ProfileRepository
	sessions SessionInvalidator
	log      *logger.Logger
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(profiles repository.ProfileRepository, sessions SessionInvalidator, baseLog *logger.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		sessions: sessions,
		log:      baseLog.With("service", "ProfileService"),
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		s.log.Error("failed to read profile", "op", "find_profile", "user_id", userID, "error", err)
		metrics.RecordStoreError("find_profile")
		return nil, storeError("read profile")
	}
	return profile, nil
}

// SaveProfile stores the complete profile form, creating the profile on first
// save. Nothing is written unless every required field is present and valid.
func (s *ProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, req *types.CreateProfileRequest) (*models.HealthProfile, bool, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, false, err
	}

	existing, err := s.profiles.FindByUser(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		created, err := s.profiles.Create(ctx, req.ToModel(userID))
		if err == nil {
			s.sessions.Invalidate(userID)
			return created, true, nil
		}
		if !errors.Is(err, repository.ErrConflict) {
			s.log.Error("failed to create profile", "op", "create_profile", "user_id", userID, "error", err)
			metrics.RecordStoreError("create_profile")
			return nil, false, storeError("create profile")
		}
		// created concurrently; apply the form as an update instead
		existing, err = s.profiles.FindByUser(ctx, userID)
		if err != nil {
			s.log.Error("failed to read profile", "op", "find_profile", "user_id", userID, "error", err)
			metrics.RecordStoreError("find_profile")
			return nil, false, storeError("read profile")
		}
	case err != nil:
		s.log.Error("failed to read profile", "op", "find_profile", "user_id", userID, "error", err)
		metrics.RecordStoreError("find_profile")
		return nil, false, storeError("read profile")
	}

	updated, err := s.profiles.Update(ctx, existing.ID, models.FullProfileUpdate(req.ToModel(userID)))
	if err != nil {
		s.log.Error("failed to update profile", "op", "update_profile", "profile_id", existing.ID, "error", err)
		metrics.RecordStoreError("update_profile")
		return nil, false, storeError("update profile")
	}
	s.sessions.Invalidate(userID)
	return updated, false, nil
}

// UpdateProfile applies a partial update to an existing profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.HealthProfile, error) {
	if upd.IsEmpty() {
		return nil, validation.NewError("body", "required", "at least one field must be provided")
	}
	if err := validation.ValidateStruct(upd); err != nil {
		return nil, err
	}

	existing, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.profiles.Update(ctx, existing.ID, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		s.log.Error("failed to update profile", "op", "update_profile", "profile_id", existing.ID, "error", err)
		metrics.RecordStoreError("update_profile")
		return nil, storeError("update profile")
	}
	s.sessions.Invalidate(userID)
	return updated, nil
}
