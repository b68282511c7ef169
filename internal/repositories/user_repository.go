package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is the MySQL error number for unique key violations
const mysqlDuplicateEntry = 1062

// userRepository implements User table data access
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a new user and fans out one progress row per reference word,
// all inside a single transaction. A failure anywhere leaves no user behind.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertUser := `
		INSERT INTO users (email, first_name, last_name, password_hash)
		VALUES (?, ?, ?, ?)
	`

	if _, err := tx.ExecContext(ctx, insertUser, user.Email, user.FirstName, user.LastName, user.PasswordHash); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	// One row per (level, word) pair, frequency 0, status 'learning'
	fanOut := `
		INSERT INTO user_word_progress (user_email, level_id, word_id, frequency, status)
		SELECT ?, level_id, id, 0, 'learning'
		FROM words
	`

	if _, err := tx.ExecContext(ctx, fanOut, user.Email); err != nil {
		return fmt.Errorf("failed to create progress records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT email, first_name, last_name, password_hash
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
