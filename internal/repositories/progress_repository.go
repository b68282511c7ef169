package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
)

// TransitionFunc computes the next (frequency, status) pair from the current
// frequency. It must be pure; it runs while the progress row is locked.
type TransitionFunc func(frequency int) (int, models.Status)

// progressRepository implements user word progress data access
type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// ApplyTransition reads the progress row under a row lock, applies next to the
// current frequency and writes the result back, all in one transaction.
// Concurrent judgments for the same row serialize on the lock, so the stored
// state is always some valid application of the transition table.
func (r *progressRepository) ApplyTransition(ctx context.Context, userEmail string, levelID, wordID int, next TransitionFunc) (*models.Progress, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	selectQuery := `
		SELECT frequency, status
		FROM user_word_progress
		WHERE user_email = ? AND level_id = ? AND word_id = ?
		FOR UPDATE
	`

	var frequency int
	var status string
	err = tx.QueryRowContext(ctx, selectQuery, userEmail, levelID, wordID).Scan(&frequency, &status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("progress record for %s level %d word %d: %w", userEmail, levelID, wordID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress record: %w", err)
	}

	newFrequency, newStatus := next(frequency)

	updateQuery := `
		UPDATE user_word_progress
		SET frequency = ?, status = ?
		WHERE user_email = ? AND level_id = ? AND word_id = ?
	`

	if _, err := tx.ExecContext(ctx, updateQuery, newFrequency, string(newStatus), userEmail, levelID, wordID); err != nil {
		return nil, fmt.Errorf("failed to update progress record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.Progress{
		UserEmail: userEmail,
		LevelID:   levelID,
		WordID:    wordID,
		Frequency: newFrequency,
		Status:    newStatus,
	}, nil
}

// CountMastered returns how many words of one level the user has mastered
func (r *progressRepository) CountMastered(ctx context.Context, userEmail string, levelID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM user_word_progress
		WHERE user_email = ? AND level_id = ? AND status = 'Mastered'
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userEmail, levelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count mastered words: %w", err)
	}

	return count, nil
}
