package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReviewService is the interface that wraps methods for review business logic.
type ReviewService interface {
	// Method Add validates and stores a review, then returns the full review list.
	//
	// Missing fields return an error wrapping apperrors.ErrValidation.
	Add(ctx context.Context, req *models.ReviewRequest) ([]models.Review, error)
	// Method List returns all reviews, oldest first.
	List(ctx context.Context) ([]models.Review, error)
}

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	BaseHandler
	reviewService ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		reviewService: reviewService,
	}
}

// RegisterRoutes registers all review handler routes
func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Post("/reviews", h.AddReview)
	r.Get("/getReviews", h.GetReviews)
}

// AddReview handles POST /reviews
// @Summary Submit a review
// @Description Store a public review and return the updated review list.
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body models.ReviewRequest true "Review"
// @Success 201 {object} map[string][]models.Review "Reviews"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reviews [post]
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reviews, err := h.reviewService.Add(r.Context(), &req)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string][]models.Review{"reviews": reviews})
}

// GetReviews handles GET /getReviews
// @Summary List reviews
// @Description Return every stored review.
// @Tags reviews
// @Produce json
// @Success 200 {object} map[string][]models.Review "Reviews"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /getReviews [get]
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	h.RespondJSON(w, http.StatusOK, map[string][]models.Review{"reviews": reviews})
}
