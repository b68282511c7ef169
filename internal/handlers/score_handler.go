package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ScoreService is the interface that wraps methods for quiz score business logic.
type ScoreService interface {
	// Method Record validates and stores one quiz score, returning the stored row.
	//
	// Invalid fields return an error wrapping apperrors.ErrValidation.
	Record(ctx context.Context, req *models.ScoreRequest) (*models.TestScore, error)
}

// ScoreHandler handles quiz score HTTP requests
type ScoreHandler struct {
	BaseHandler
	scoreService ScoreService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService ScoreService, logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		scoreService: scoreService,
	}
}

// RegisterRoutes registers all score handler routes
func (h *ScoreHandler) RegisterRoutes(r chi.Router) {
	r.Post("/putTestScores", h.PutTestScores)
}

// PutTestScores handles POST /putTestScores
// @Summary Record a quiz score
// @Description Append one quiz score for a user and level and return the stored row.
// @Tags scores
// @Accept json
// @Produce json
// @Param request body models.ScoreRequest true "Score"
// @Success 201 {object} map[string]any "Stored score"
// @Failure 400 {object} map[string]string "Invalid fields"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /putTestScores [post]
func (h *ScoreHandler) PutTestScores(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.scoreService.Record(r.Context(), &req)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"data":   stored,
	})
}
