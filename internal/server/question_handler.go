package server

import (
	"log/slog"
	"net/http"

	"github.com/hmnguyen/vietlearn/internal/quiz"
)

type generateQuestionsRequest struct {
	// NumQuestions defaults to quiz.DefaultNumQuestions when absent;
	// an explicit out-of-range value is rejected.
	NumQuestions *int   `json:"num_questions" validate:"omitempty,gte=1,lte=20"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type generateQuestionsResponse struct {
	Questions []quiz.Question `json:"questions"`
}

func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var request generateQuestionsRequest
	if !s.decodeAndValidate(w, r, &request) {
		return
	}

	numQuestions := quiz.DefaultNumQuestions
	if request.NumQuestions != nil {
		numQuestions = *request.NumQuestions
	}

	words, err := s.words.FindAll(r.Context())
	if err != nil {
		slog.Default().Error("failed to list words", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list words")
		return
	}

	grammar, err := s.grammar.FindAll(r.Context())
	if err != nil {
		slog.Default().Error("failed to list grammar points", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list grammar points")
		return
	}

	// Business-rule check before any call to the external provider.
	if len(words) == 0 && len(grammar) == 0 {
		respondError(w, http.StatusBadRequest, "No words or grammar found. Please add some first.")
		return
	}

	questions, err := s.generator.Generate(r.Context(), quiz.GenerateRequest{
		Words:        words,
		Grammar:      grammar,
		NumQuestions: numQuestions,
		Difficulty:   request.Difficulty,
	})
	if err != nil {
		slog.Default().Error("failed to generate questions", "error", err)
		respondError(w, http.StatusBadGateway, "failed to generate questions")
		return
	}
	if questions == nil {
		questions = []quiz.Question{}
	}

	respondJSON(w, http.StatusOK, generateQuestionsResponse{Questions: questions})
}
