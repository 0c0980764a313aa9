package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DanRulev/quizmeon/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Quiz ID is required"})
		return
	}

	quiz, err := h.service.Quiz(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, quiz)
}

func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Title, difficulty, and a valid number of questions are required"})
		return
	}

	quiz, err := h.service.Generate(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, quiz)
}

func (h *Handler) saveQuiz(w http.ResponseWriter, r *http.Request) {
	var quiz models.Quiz
	if err := decodeJSON(w, r, &quiz); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid quiz payload"})
		return
	}

	id, err := h.service.Save(r.Context(), quiz)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid quiz payload"})
			return
		}
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SaveResponse{QuizID: id})
}
