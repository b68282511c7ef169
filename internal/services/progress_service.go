package services

import (
	"context"
	"fmt"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"github.com/PrabhavKarve/vocapp-server/internal/repositories"
)

// ProgressRepository is the interface that wraps methods for user word progress data access
type ProgressRepository interface {
	// Method ApplyTransition applies a frequency/status transition to one progress row.
	//
	// "next" is called with the current frequency while the row is locked and
	// must return the new frequency/status pair.
	//
	// If no progress row matches, an error wrapping apperrors.ErrNotFound is returned.
	ApplyTransition(ctx context.Context, userEmail string, levelID, wordID int, next repositories.TransitionFunc) (*models.Progress, error)
	// Method CountMastered returns the number of mastered words for a user and level.
	//
	// If some error occurs during data retrieval, the error will be returned together with zero.
	CountMastered(ctx context.Context, userEmail string, levelID int) (int, error)
}

// progressService implements the word-mastery progression logic
type progressService struct {
	progressRepo ProgressRepository
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo ProgressRepository) *progressService {
	return &progressService{
		progressRepo: progressRepo,
	}
}

// masteryThreshold is the frequency at which a "known" answer starts counting
// as mastered, before the counter reaches its ceiling.
const masteryThreshold = 5

// NextProgress computes the next (frequency, status) pair for one word given
// the user's judgment. Only the frequency drives the decision; the status is
// always recomputed.
//
// A "known" answer at frequency 5..9 increments the counter and marks the
// word Mastered even though the counter has not hit 10. That asymmetry is the
// product's progression policy and is kept deliberately.
func NextProgress(frequency int, judgment models.Judgment) (int, models.Status) {
	// Rows written by this service stay in [0,10]; clamp so a row edited by
	// other tooling cannot push the counter out of range.
	if frequency < 0 {
		frequency = 0
	}
	if frequency > models.MaxFrequency {
		frequency = models.MaxFrequency
	}

	switch judgment {
	case models.JudgmentKnown:
		if frequency == models.MaxFrequency {
			return models.MaxFrequency, models.StatusMastered
		}
		if frequency < masteryThreshold {
			return frequency + 1, models.StatusLearning
		}
		return frequency + 1, models.StatusMastered
	case models.JudgmentUnknown:
		if frequency == 0 {
			return 0, models.StatusLearning
		}
		if frequency <= masteryThreshold {
			return frequency - 1, models.StatusLearning
		}
		return frequency - 1, models.StatusMastered
	}

	// Callers validate the judgment before computing; unreachable otherwise.
	return frequency, models.StatusLearning
}

// SubmitJudgment applies the user's judgment to one word and returns the
// resulting mastered-word count for that level.
func (s *progressService) SubmitJudgment(ctx context.Context, userEmail string, levelID, wordID int, judgment models.Judgment) (int, error) {
	if userEmail == "" {
		return 0, fmt.Errorf("user email is required: %w", apperrors.ErrValidation)
	}
	if levelID < models.MinLevel || levelID > models.MaxLevel {
		return 0, fmt.Errorf("level must be between %d and %d: %w", models.MinLevel, models.MaxLevel, apperrors.ErrValidation)
	}
	if wordID <= 0 {
		return 0, fmt.Errorf("word id is required: %w", apperrors.ErrValidation)
	}
	if !judgment.Valid() {
		return 0, fmt.Errorf("isKnown must be %q or %q: %w", models.JudgmentKnown, models.JudgmentUnknown, apperrors.ErrValidation)
	}

	_, err := s.progressRepo.ApplyTransition(ctx, userEmail, levelID, wordID, func(frequency int) (int, models.Status) {
		return NextProgress(frequency, judgment)
	})
	if err != nil {
		return 0, err
	}

	return s.progressRepo.CountMastered(ctx, userEmail, levelID)
}

// MasteredCount returns the number of mastered words for a user and level
func (s *progressService) MasteredCount(ctx context.Context, userEmail string, levelID int) (int, error) {
	if userEmail == "" {
		return 0, fmt.Errorf("user email is required: %w", apperrors.ErrValidation)
	}
	if levelID < models.MinLevel || levelID > models.MaxLevel {
		return 0, fmt.Errorf("level must be between %d and %d: %w", models.MinLevel, models.MaxLevel, apperrors.ErrValidation)
	}

	return s.progressRepo.CountMastered(ctx, userEmail, levelID)
}
