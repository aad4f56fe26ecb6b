// Package vocabulary provides the word and grammar domain models and their
// repositories.
package vocabulary

import (
	"time"
)

// Word is a Vietnamese vocabulary word with its English definition.
// The vietnamese_word column is the natural key and is unique across all rows.
type Word struct {
	ID                int64     `db:"id" json:"id"`
	VietnameseWord    string    `db:"vietnamese_word" json:"vietnamese_word"`
	EnglishDefinition string    `db:"english_definition" json:"english_definition"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Grammar is a Vietnamese grammar point with its English explanation and an
// optional example sentence. The grammar_point column is the natural key.
type Grammar struct {
	ID                 int64     `db:"id" json:"id"`
	GrammarPoint       string    `db:"grammar_point" json:"grammar_point"`
	EnglishExplanation string    `db:"english_explanation" json:"english_explanation"`
	ExampleSentence    *string   `db:"example_sentence" json:"example_sentence"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}
