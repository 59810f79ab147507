package driven

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// LLMService provides chat-completion calls to an external language
// model. This is an optional service: when nil, AI-assisted path
// prioritization degrades to heuristics and chat is unavailable.
//
// The interface is deliberately narrow so the parsing and ranking
// logic built on top is testable with a stub.
type LLMService interface {
	// Complete sends a structured message list and returns the
	// generated text. Options vary per call site.
	Complete(ctx context.Context, messages []domain.ChatTurn, opts CompleteOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight
	// request, without running inference.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompleteOptions configures one completion call.
type CompleteOptions struct {
	// MaxTokens is the generation budget. Zero lets the provider pick.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64

	// Model overrides the service default for this call when non-empty.
	Model string
}
