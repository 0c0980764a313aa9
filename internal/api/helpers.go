package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DanRulev/quizmeon/internal/llm"
	"github.com/DanRulev/quizmeon/internal/models"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, "Internal Server Error"

	switch {
	case errors.Is(err, models.ErrValidation):
		status, msg = http.StatusBadRequest, "Title, difficulty, and a valid number of questions are required"
	case errors.Is(err, models.ErrNotFound):
		status, msg = http.StatusNotFound, "Quiz not found"
	case errors.Is(err, models.ErrTimeout):
		status, msg = http.StatusGatewayTimeout, "Request timed out"
	case errors.Is(err, llm.ErrEmptyResponse):
		msg = "Invalid response from Gemini API"
	case errors.Is(err, llm.ErrMalformedJSON):
		msg = "Invalid JSON response from Gemini API"
	case errors.Is(err, llm.ErrSchemaMismatch):
		msg = "Invalid quiz returned by Gemini API"
	}

	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
