package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/PrabhavKarve/vocapp-server/internal/models"
)

// createdAtLayout is the format reviews and scores expose created_at in
const createdAtLayout = "2006-01-02 15:04:05"

// reviewRepository implements Review table data access
type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *reviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create inserts a new review and sets its generated ID
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (stars, description, full_name, country, city)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		review.Stars,
		review.Description,
		review.FullName,
		review.Country,
		review.City,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	review.ID = int(id)
	return nil
}

// GetAll retrieves all reviews, oldest first
func (r *reviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	query := `
		SELECT id, stars, description, full_name, country, city, created_at
		FROM reviews
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		var createdAt time.Time
		err := rows.Scan(
			&review.ID,
			&review.Stars,
			&review.Description,
			&review.FullName,
			&review.Country,
			&review.City,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		review.CreatedAt = createdAt.Format(createdAtLayout)
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reviews, nil
}
