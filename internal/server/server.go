// Package server provides the HTTP handlers for the language learning API.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/hmnguyen/vietlearn/internal/quiz"
	"github.com/hmnguyen/vietlearn/internal/vocabulary"
)

// Server holds the handler dependencies: the repositories and the question
// generator. Each request gets its own context-scoped database round trips;
// no state is shared across requests.
type Server struct {
	words     vocabulary.WordRepository
	grammar   vocabulary.GrammarRepository
	generator *quiz.Generator

	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Server.
func New(words vocabulary.WordRepository, grammar vocabulary.GrammarRepository, generator *quiz.Generator) (*Server, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, err
	}

	return &Server{
		words:     words,
		grammar:   grammar,
		generator: generator,
		validate:  validate,
		trans:     trans,
	}, nil
}

// Handler returns the route table for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/words", s.handleCreateWord)
	mux.HandleFunc("GET /api/v1/words", s.handleListWords)
	mux.HandleFunc("GET /api/v1/words/{id}", s.handleGetWord)

	mux.HandleFunc("POST /api/v1/grammar", s.handleCreateGrammar)
	mux.HandleFunc("GET /api/v1/grammar", s.handleListGrammar)
	mux.HandleFunc("GET /api/v1/grammar/{id}", s.handleGetGrammar)

	mux.HandleFunc("POST /api/v1/generate-questions", s.handleGenerateQuestions)

	return mux
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Language Learning API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// decodeAndValidate decodes the request body into target and validates it.
// Returns false after writing the error response when the request is
// rejected.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return false
	}

	if err := s.validate.Struct(target); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, errorDetails{Detail: validationMessages(err, s.trans)})
		return false
	}

	return true
}

type errorDetail struct {
	Detail string `json:"detail"`
}

type errorDetails struct {
	Detail []string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorDetail{Detail: detail})
}
