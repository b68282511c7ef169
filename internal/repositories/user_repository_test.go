package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserTestRepository creates a user repository with a mock database
func setupUserTestRepository(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewUserRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func testUser() *models.User {
	return &models.User{
		Email:        "test@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "hashedpassword",
	}
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectAnyErr  bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("test@example.com", "Test", "User", "hashedpassword").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO user_word_progress`).
					WithArgs("test@example.com").
					WillReturnResult(sqlmock.NewResult(0, 500))
				mock.ExpectCommit()
			},
		},
		{
			name: "duplicate email",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("test@example.com", "Test", "User", "hashedpassword").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'test@example.com' for key 'users.PRIMARY'"})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrConflict,
		},
		{
			name: "begin error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("database error"))
			},
			expectAnyErr: true,
		},
		{
			name: "database error on insert",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("test@example.com", "Test", "User", "hashedpassword").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectAnyErr: true,
		},
		{
			name: "database error on progress fan-out",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("test@example.com", "Test", "User", "hashedpassword").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO user_word_progress`).
					WithArgs("test@example.com").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectAnyErr: true,
		},
		{
			name: "commit error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("test@example.com", "Test", "User", "hashedpassword").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO user_word_progress`).
					WithArgs("test@example.com").
					WillReturnResult(sqlmock.NewResult(0, 500))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), testUser())

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.expectAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectAnyErr  bool
		expectedUser  *models.User
	}{
		{
			name:  "success",
			email: "test@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"email", "first_name", "last_name", "password_hash"}).
					AddRow("test@example.com", "Test", "User", "hashedpassword")
				mock.ExpectQuery(`SELECT email, first_name, last_name, password_hash`).
					WithArgs("test@example.com").
					WillReturnRows(rows)
			},
			expectedUser: testUser(),
		},
		{
			name:  "not found",
			email: "missing@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT email, first_name, last_name, password_hash`).
					WithArgs("missing@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name:  "database error",
			email: "test@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT email, first_name, last_name, password_hash`).
					WithArgs("test@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByEmail(context.Background(), tt.email)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			case tt.expectAnyErr:
				assert.Error(t, err)
				assert.Nil(t, user)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
