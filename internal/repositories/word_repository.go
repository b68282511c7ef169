package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PrabhavKarve/vocapp-server/internal/models"
)

// wordRepository implements word reference data access
type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *sql.DB) *wordRepository {
	return &wordRepository{
		db: db,
	}
}

// GetByLevel retrieves all words of one difficulty level
func (r *wordRepository) GetByLevel(ctx context.Context, levelID int) ([]models.Word, error) {
	query := `
		SELECT id, level_id, word, meaning
		FROM words
		WHERE level_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, levelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var word models.Word
		if err := rows.Scan(&word.ID, &word.LevelID, &word.Word, &word.Meaning); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return words, nil
}

// CountByLevel returns the number of words in one level
func (r *wordRepository) CountByLevel(ctx context.Context, levelID int) (int, error) {
	query := `SELECT COUNT(*) FROM words WHERE level_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, levelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}

	return count, nil
}
