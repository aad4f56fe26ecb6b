package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hmnguyen/vietlearn/internal/vocabulary"
)

type createGrammarRequest struct {
	GrammarPoint       string  `json:"grammar_point" validate:"required,min=1,max=200"`
	EnglishExplanation string  `json:"english_explanation" validate:"required,min=1"`
	ExampleSentence    *string `json:"example_sentence"`
}

func (s *Server) handleCreateGrammar(w http.ResponseWriter, r *http.Request) {
	var request createGrammarRequest
	if !s.decodeAndValidate(w, r, &request) {
		return
	}

	grammar, err := s.grammar.Create(r.Context(), request.GrammarPoint, request.EnglishExplanation, request.ExampleSentence)
	if errors.Is(err, vocabulary.ErrDuplicate) {
		respondError(w, http.StatusConflict, "Grammar point already exists")
		return
	}
	if err != nil {
		slog.Default().Error("failed to create grammar point", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create grammar point")
		return
	}

	respondJSON(w, http.StatusCreated, grammar)
}

func (s *Server) handleListGrammar(w http.ResponseWriter, r *http.Request) {
	grammar, err := s.grammar.FindAll(r.Context())
	if err != nil {
		slog.Default().Error("failed to list grammar points", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list grammar points")
		return
	}
	if grammar == nil {
		grammar = []vocabulary.Grammar{}
	}

	respondJSON(w, http.StatusOK, grammar)
}

func (s *Server) handleGetGrammar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	grammar, err := s.grammar.FindByID(r.Context(), id)
	if err != nil {
		slog.Default().Error("failed to get grammar point", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get grammar point")
		return
	}
	if grammar == nil {
		respondError(w, http.StatusNotFound, "Grammar not found")
		return
	}

	respondJSON(w, http.StatusOK, grammar)
}
