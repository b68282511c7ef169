package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/PrabhavKarve/vocapp-server/internal/models"
)

// scoreRepository implements TestScore table data access
type scoreRepository struct {
	db *sql.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *sql.DB) *scoreRepository {
	return &scoreRepository{
		db: db,
	}
}

// Create inserts a new test score and returns the stored row.
// MySQL has no RETURNING clause, so the row is read back by its insert ID.
func (r *scoreRepository) Create(ctx context.Context, userID string, levelID, score int) (*models.TestScore, error) {
	insertQuery := `
		INSERT INTO test_scores (user_id, level_id, score)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, insertQuery, userID, levelID, score)
	if err != nil {
		return nil, fmt.Errorf("failed to create test score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	selectQuery := `
		SELECT id, user_id, level_id, score, created_at
		FROM test_scores
		WHERE id = ?
	`

	stored := &models.TestScore{}
	var createdAt time.Time
	err = r.db.QueryRowContext(ctx, selectQuery, id).Scan(
		&stored.ID,
		&stored.UserID,
		&stored.LevelID,
		&stored.Score,
		&createdAt,
	)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to read back test score: %w", err)
	}
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inserted test score %d disappeared", id)
	}
	stored.CreatedAt = createdAt.Format(createdAtLayout)

	return stored, nil
}
