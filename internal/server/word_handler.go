package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hmnguyen/vietlearn/internal/vocabulary"
)

type createWordRequest struct {
	VietnameseWord    string `json:"vietnamese_word" validate:"required,min=1,max=100"`
	EnglishDefinition string `json:"english_definition" validate:"required,min=1"`
}

func (s *Server) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	var request createWordRequest
	if !s.decodeAndValidate(w, r, &request) {
		return
	}

	word, err := s.words.Create(r.Context(), request.VietnameseWord, request.EnglishDefinition)
	if errors.Is(err, vocabulary.ErrDuplicate) {
		respondError(w, http.StatusConflict, "Word already exists")
		return
	}
	if err != nil {
		slog.Default().Error("failed to create word", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create word")
		return
	}

	respondJSON(w, http.StatusCreated, word)
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	words, err := s.words.FindAll(r.Context())
	if err != nil {
		slog.Default().Error("failed to list words", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list words")
		return
	}
	if words == nil {
		words = []vocabulary.Word{}
	}

	respondJSON(w, http.StatusOK, words)
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	word, err := s.words.FindByID(r.Context(), id)
	if err != nil {
		slog.Default().Error("failed to get word", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get word")
		return
	}
	if word == nil {
		respondError(w, http.StatusNotFound, "Word not found")
		return
	}

	respondJSON(w, http.StatusOK, word)
}
