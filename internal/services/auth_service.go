package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user and their initial progress rows atomically.
	//
	// If a user with the same email already exists, an error wrapping
	// apperrors.ErrConflict is returned and nothing is written.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email.
	//
	// If no user with such email exists, an error wrapping apperrors.ErrNotFound is returned.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// authService implements signup and login
type authService struct {
	userRepo UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Signup validates the request, hashes the password and creates the user
// together with one progress row per reference word.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Email == "" || req.FirstName == "" || req.LastName == "" || req.Password == "" || req.ConfirmPassword == "" {
		return fmt.Errorf("email, firstName, lastName, password and confirmPassword are required: %w", apperrors.ErrValidation)
	}
	if !emailRegex.MatchString(req.Email) {
		return fmt.Errorf("invalid email format: %w", apperrors.ErrValidation)
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("passwords do not match: %w", apperrors.ErrValidation)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(passwordHash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.String("email", user.Email))
	return nil
}

// Login verifies the credentials and returns the user.
// Unknown email and wrong password both come back as apperrors.ErrNotFound so
// the two cases are indistinguishable to the client.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrNotFound)
	}

	return user, nil
}
