package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hmnguyen/vietlearn/internal/inference"
	"github.com/hmnguyen/vietlearn/internal/vocabulary"
)

const (
	// DefaultNumQuestions is used when the caller doesn't request a count.
	DefaultNumQuestions = 5
	// MaxNumQuestions bounds a single generation request.
	MaxNumQuestions = 20
)

const systemPrompt = "You are a helpful Vietnamese language teacher. You always respond with valid JSON."

// GenerateRequest holds the material and options for one generation call.
type GenerateRequest struct {
	Words        []vocabulary.Word
	Grammar      []vocabulary.Grammar
	NumQuestions int
	// Difficulty is one of the Difficulty constants, or empty for no
	// difficulty note in the prompt.
	Difficulty string
}

// Generator builds a prompt from stored words and grammar, submits it to the
// text-generation provider and validates the returned questions.
type Generator struct {
	client   inference.Client
	validate *validator.Validate
}

// NewGenerator creates a Generator using the given inference client.
func NewGenerator(client inference.Client) *Generator {
	return &Generator{
		client:   client,
		validate: validator.New(),
	}
}

// Generate performs a single prompt/response round trip and returns the
// validated questions. Any malformed question in the provider's response
// fails the whole call; there is no partial result.
func (g *Generator) Generate(ctx context.Context, params GenerateRequest) ([]Question, error) {
	response, err := g.client.Complete(ctx, inference.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   buildPrompt(params),
	})
	if err != nil {
		return nil, fmt.Errorf("client.Complete() > %w", err)
	}

	questions, err := parseQuestions(response.Content)
	if err != nil {
		return nil, err
	}

	for i, question := range questions {
		if err := g.validate.Struct(question); err != nil {
			return nil, fmt.Errorf("invalid question at index %d: %w", i, err)
		}
	}

	return questions, nil
}

// buildPrompt renders the instruction block embedding every word and grammar
// entry verbatim, one line per item.
func buildPrompt(params GenerateRequest) string {
	wordLines := make([]string, 0, len(params.Words))
	for _, word := range params.Words {
		wordLines = append(wordLines, fmt.Sprintf("- %s: %s", word.VietnameseWord, word.EnglishDefinition))
	}

	grammarLines := make([]string, 0, len(params.Grammar))
	for _, grammar := range params.Grammar {
		line := fmt.Sprintf("- %s: %s", grammar.GrammarPoint, grammar.EnglishExplanation)
		if grammar.ExampleSentence != nil && *grammar.ExampleSentence != "" {
			line += fmt.Sprintf(" (Example: %s)", *grammar.ExampleSentence)
		}
		grammarLines = append(grammarLines, line)
	}

	difficultyNote := ""
	if params.Difficulty != "" {
		difficultyNote = fmt.Sprintf("\nDifficulty level: %s", params.Difficulty)
	}

	return fmt.Sprintf(`You are a Vietnamese language teacher creating quiz questions.

Known Words:
%s

Known Grammar:
%s
%s

Create %d multiple-choice questions that test the student's understanding of these words and grammar points.
Each question should have 2-6 answer choices with exactly one correct answer.

Return ONLY valid JSON in this exact format:
[
  {
    "question_type": 1,
    "question": "What does 'xin chào' mean?",
    "answers": ["Hello", "Goodbye", "Thank you", "Please"],
    "correct_idx": 0
  }
]
`,
		strings.Join(wordLines, "\n"),
		strings.Join(grammarLines, "\n"),
		difficultyNote,
		params.NumQuestions,
	)
}

// parseQuestions decodes the provider's raw text output. Two top-level
// shapes are accepted: a bare array of questions, or an object whose
// "questions" key holds that array.
func parseQuestions(content string) ([]Question, error) {
	payload := []byte(content)

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(payload, &wrapper); err == nil {
		questionsPayload, ok := wrapper["questions"]
		if !ok {
			return nil, fmt.Errorf("provider returned a JSON object without a questions key: %s", content)
		}
		payload = questionsPayload
	}

	var questions []Question
	if err := json.Unmarshal(payload, &questions); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return questions, nil
}
