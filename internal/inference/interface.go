// Package inference defines the interface to the external text-generation
// provider.
package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	Complete(ctx context.Context, params CompletionRequest) (CompletionResponse, error)
}

// CompletionRequest holds a single prompt with its system instruction.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
}

// CompletionResponse holds the provider's raw text output.
type CompletionResponse struct {
	Content string
}
