package services

import (
	"context"
	"fmt"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
)

// ScoreRepository is the interface that wraps methods for TestScore table data access
type ScoreRepository interface {
	// Method Create inserts a new test score and returns the stored row.
	//
	// If some error occurs during score creation, the error will be returned together with "nil" value.
	Create(ctx context.Context, userID string, levelID, score int) (*models.TestScore, error)
}

// scoreService implements quiz score recording
type scoreService struct {
	scoreRepo ScoreRepository
}

// NewScoreService creates a new score service
func NewScoreService(scoreRepo ScoreRepository) *scoreService {
	return &scoreService{
		scoreRepo: scoreRepo,
	}
}

// Record validates and stores one quiz score, returning the stored row
func (s *scoreService) Record(ctx context.Context, req *models.ScoreRequest) (*models.TestScore, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("userid is required: %w", apperrors.ErrValidation)
	}
	if req.LevelID < models.MinLevel || req.LevelID > models.MaxLevel {
		return nil, fmt.Errorf("level must be between %d and %d: %w", models.MinLevel, models.MaxLevel, apperrors.ErrValidation)
	}
	if req.Score < 0 {
		return nil, fmt.Errorf("score cannot be negative: %w", apperrors.ErrValidation)
	}

	return s.scoreRepo.Create(ctx, req.UserID, req.LevelID, req.Score)
}
