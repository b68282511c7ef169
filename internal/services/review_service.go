package services

import (
	"context"
	"fmt"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
)

// ReviewRepository is the interface that wraps methods for Review table data access
type ReviewRepository interface {
	// Method Create inserts a new review and sets its generated ID.
	//
	// If some error occurs during review creation, the error will be returned.
	Create(ctx context.Context, review *models.Review) error
	// Method GetAll retrieves all reviews, oldest first.
	//
	// If no reviews exist, an empty slice will be returned.
	// If some error occurs during data retrieval, the error will be returned.
	GetAll(ctx context.Context) ([]models.Review, error)
}

// reviewService implements public review submission and listing
type reviewService struct {
	reviewRepo ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo ReviewRepository) *reviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
	}
}

// Add validates and stores a review, then returns the full review list
func (s *reviewService) Add(ctx context.Context, req *models.ReviewRequest) ([]models.Review, error) {
	if req.Stars == 0 || req.Description == "" || req.FullName == "" || req.Country == "" || req.City == "" {
		return nil, fmt.Errorf("stars, description, full_name, country, and city are required: %w", apperrors.ErrValidation)
	}
	if req.Stars < 1 || req.Stars > 5 {
		return nil, fmt.Errorf("stars must be between 1 and 5: %w", apperrors.ErrValidation)
	}

	review := &models.Review{
		Stars:       req.Stars,
		Description: req.Description,
		FullName:    req.FullName,
		Country:     req.Country,
		City:        req.City,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetAll(ctx)
}

// List returns all reviews
func (s *reviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepo.GetAll(ctx)
}
