package driving

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// ChatService maintains a retrieval-augmented conversation over a
// crawled corpus.
type ChatService interface {
	// Load chunks and embeds a corpus, replacing any previous one.
	Load(ctx context.Context, corpus string) (int, error)

	// Ask appends a user turn, retrieves context, calls the model and
	// appends the assistant reply. Returns the reply text.
	Ask(ctx context.Context, question string) (string, error)

	// History returns the visible conversation so far.
	History() *domain.Conversation
}

// RetrievalService exposes the chunk store for inspection and direct
// queries.
type RetrievalService interface {
	// Query embeds the (optionally expanded) query and returns the
	// top-scoring chunks above the similarity threshold.
	Query(ctx context.Context, query string) ([]domain.ScoredChunk, error)

	// Context returns the concatenated top-K chunk texts for a query.
	Context(ctx context.Context, query string) (string, error)
}
