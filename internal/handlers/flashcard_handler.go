package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/PrabhavKarve/vocapp-server/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QuizService is the interface that wraps methods for flashcard and quiz business logic.
type QuizService interface {
	// Method GetFlashcards returns all flashcards of one level.
	//
	// An out-of-range level returns an error wrapping apperrors.ErrValidation.
	GetFlashcards(ctx context.Context, levelID int) ([]models.Word, error)
	// Method GenerateQuestions builds n multiple-choice questions from one level's words.
	//
	// A level too small for n questions, or one without enough alternative
	// meanings for three distractors, returns apperrors.ErrInsufficientData.
	GenerateQuestions(ctx context.Context, levelID, n int) ([]models.Question, error)
}

// FlashcardHandler handles flashcard and quiz question HTTP requests
type FlashcardHandler struct {
	BaseHandler
	quizService QuizService
}

// NewFlashcardHandler creates a new flashcard handler
func NewFlashcardHandler(quizService QuizService, logger *zap.Logger) *FlashcardHandler {
	return &FlashcardHandler{
		BaseHandler: BaseHandler{Logger: logger},
		quizService: quizService,
	}
}

// RegisterRoutes registers all flashcard handler routes
func (h *FlashcardHandler) RegisterRoutes(r chi.Router) {
	r.Post("/getFlashcards_level_n", h.GetFlashcards)
	r.Post("/getquestions", h.GetQuestions)
}

// flashcardsRequest represents a flashcard listing request
type flashcardsRequest struct {
	LevelID int `json:"levelId"`
}

// GetFlashcards handles POST /getFlashcards_level_n
// @Summary List flashcards of a level
// @Description Return every word/meaning pair of the requested difficulty level.
// @Tags flashcards
// @Accept json
// @Produce json
// @Param request body flashcardsRequest true "Level"
// @Success 200 {object} map[string][]models.Word "Flashcards"
// @Failure 400 {object} map[string]string "Invalid level"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /getFlashcards_level_n [post]
func (h *FlashcardHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	var req flashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cards, err := h.quizService.GetFlashcards(r.Context(), req.LevelID)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	if cards == nil {
		cards = []models.Word{}
	}
	h.RespondJSON(w, http.StatusOK, map[string][]models.Word{"data": cards})
}

// GetQuestions handles POST /getquestions
// @Summary Generate quiz questions
// @Description Build multiple-choice questions for a level: each question holds one word, four shuffled choices and the correct meaning.
// @Tags flashcards
// @Accept json
// @Produce json
// @Param request body models.QuizRequest true "Question count and level"
// @Success 200 {object} map[string][]models.Question "Questions"
// @Failure 400 {object} map[string]string "Invalid request or not enough words in the level"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /getquestions [post]
func (h *FlashcardHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, err := h.quizService.GenerateQuestions(r.Context(), req.LevelID, req.NumQuestions)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.Question{"questions": questions})
}
