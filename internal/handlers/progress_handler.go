package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for word-mastery progression logic.
type ProgressService interface {
	// Method SubmitJudgment applies a known/unknown judgment to one word and
	// returns the level's resulting mastered-word count.
	//
	// A missing progress row returns an error wrapping apperrors.ErrNotFound;
	// invalid fields return apperrors.ErrValidation.
	SubmitJudgment(ctx context.Context, userEmail string, levelID, wordID int, judgment models.Judgment) (int, error)
	// Method MasteredCount returns the number of mastered words for a user and level.
	MasteredCount(ctx context.Context, userEmail string, levelID int) (int, error)
}

// ProgressHandler handles word progress HTTP requests
type ProgressHandler struct {
	BaseHandler
	progressService ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		progressService: progressService,
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Post("/isKnown", h.IsKnown)
	r.Post("/getMasteredCount", h.GetMasteredCount)
}

// IsKnown handles POST /isKnown
// @Summary Submit a word judgment
// @Description Apply a known/unknown judgment to one word's progress record and return the level's mastered-word count.
// @Tags progress
// @Accept json
// @Produce json
// @Param request body models.JudgmentRequest true "Judgment"
// @Success 200 {object} map[string]int "Mastered count"
// @Failure 400 {object} map[string]string "Invalid judgment or fields"
// @Failure 404 {object} map[string]string "No matching progress record"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /isKnown [post]
func (h *ProgressHandler) IsKnown(w http.ResponseWriter, r *http.Request) {
	var req models.JudgmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := h.progressService.SubmitJudgment(r.Context(), req.WordUserID, req.WordLevelID, req.WordID, models.Judgment(req.IsKnown))
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]int{"mastered_count": count})
}

// masteredCountRequest represents a mastered count request
type masteredCountRequest struct {
	UserEmail string `json:"userEmail"`
	LevelID   int    `json:"levelId"`
}

// GetMasteredCount handles POST /getMasteredCount
// @Summary Get a level's mastered-word count
// @Description Count the words of one level the user has mastered.
// @Tags progress
// @Accept json
// @Produce json
// @Param request body masteredCountRequest true "User and level"
// @Success 200 {object} map[string]int "Mastered count"
// @Failure 400 {object} map[string]string "Invalid fields"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /getMasteredCount [post]
func (h *ProgressHandler) GetMasteredCount(w http.ResponseWriter, r *http.Request) {
	var req masteredCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := h.progressService.MasteredCount(r.Context(), req.UserEmail, req.LevelID)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]int{"mastered_count": count})
}
