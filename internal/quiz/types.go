// Package quiz generates multiple-choice quiz questions from stored
// vocabulary by delegating to an external text-generation provider.
package quiz

// Question is a single multiple-choice question produced by the provider.
// Questions are transient; they are returned to the caller and never
// persisted.
type Question struct {
	QuestionType int      `json:"question_type" validate:"gte=1"`
	Question     string   `json:"question" validate:"required"`
	Answers      []string `json:"answers" validate:"min=2,max=6"`
	CorrectIdx   int      `json:"correct_idx" validate:"gte=0"`
}

// Difficulty levels accepted by the generator.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)
