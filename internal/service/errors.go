package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProfile is returned when the user has not saved a health profile.
	ErrNoProfile = errors.New("no health profile")
	// ErrStoreUnavailable wraps every failed store read or write.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrUnknownRecommendation is returned when a rating targets a
	// recommendation outside the user's current batch.
	ErrUnknownRecommendation = errors.New("recommendation is not in the current batch")
	// ErrSuperseded is returned to a caller whose result was discarded because
	// a newer request for the same user started after it.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// storeError hides the store's own error behind ErrStoreUnavailable. The
// cause is expected to be logged by the caller.
func storeError(op string) error {
	return fmt.Errorf("failed to %s: %w", op, ErrStoreUnavailable)
}
