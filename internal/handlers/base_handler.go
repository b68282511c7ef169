package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondAppError maps taxonomy errors to status codes. Anything outside the
// taxonomy is a storage failure: logged in full, answered with a generic 500
// so connection details never reach the client.
func (h *BaseHandler) RespondAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInsufficientData):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		h.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error("storage error", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "something went wrong")
	}
}
