package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for signup and login business logic.
type AuthService interface {
	// Method Signup validates the request, hashes the password and creates the
	// user together with their initial progress rows.
	//
	// Invalid fields return an error wrapping apperrors.ErrValidation; a
	// duplicate email returns apperrors.ErrConflict.
	Signup(ctx context.Context, req *models.SignupRequest) error
	// Method Login verifies the credentials and returns the user.
	//
	// Unknown email and wrong password both return apperrors.ErrNotFound.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
}

// AuthHandler handles signup and login HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
}

// Signup handles POST /signup
// @Summary Register a new user
// @Description Register a new user and create one progress record per vocabulary word across all levels.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} map[string]string "User registered successfully"
// @Failure 400 {object} map[string]string "Missing fields or password mismatch"
// @Failure 409 {object} map[string]string "Email already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.Signup(r.Context(), &req); err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// Login handles POST /login
// @Summary Authenticate a user
// @Description Verify email and password and return the user's first name.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]string "Login successful"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		// Bad credentials answer 401, not 404
		if errors.Is(err, apperrors.ErrNotFound) {
			h.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"user":    user.FirstName,
	})
}
