// Package seed loads the starter vocabulary for a beginner Vietnamese
// course into the database.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/hmnguyen/vietlearn/internal/vocabulary"
)

// WordEntry is one seed word.
type WordEntry struct {
	VietnameseWord    string
	EnglishDefinition string
}

// GrammarEntry is one seed grammar point.
type GrammarEntry struct {
	GrammarPoint       string
	EnglishExplanation string
	ExampleSentence    string
}

// Run inserts the starter words and grammar points. Entries that already
// exist are skipped, so re-running the seed is safe.
func Run(ctx context.Context, words vocabulary.WordRepository, grammar vocabulary.GrammarRepository) error {
	fmt.Printf("Adding %d words...\n", len(Words))
	createdWords := 0
	for _, entry := range Words {
		_, err := words.Create(ctx, entry.VietnameseWord, entry.EnglishDefinition)
		if errors.Is(err, vocabulary.ErrDuplicate) {
			continue
		}
		if err != nil {
			return fmt.Errorf("words.Create(%s) > %w", entry.VietnameseWord, err)
		}
		createdWords++
	}

	fmt.Printf("Adding %d grammar points...\n", len(GrammarPoints))
	createdGrammar := 0
	for _, entry := range GrammarPoints {
		example := entry.ExampleSentence
		_, err := grammar.Create(ctx, entry.GrammarPoint, entry.EnglishExplanation, &example)
		if errors.Is(err, vocabulary.ErrDuplicate) {
			continue
		}
		if err != nil {
			return fmt.Errorf("grammar.Create(%s) > %w", entry.GrammarPoint, err)
		}
		createdGrammar++
	}

	color.Green("Database seeded successfully! (%d words and %d grammar points added)", createdWords, createdGrammar)
	return nil
}
