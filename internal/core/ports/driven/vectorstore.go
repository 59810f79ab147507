package driven

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// VectorStore holds embedded chunks for one retrieval session.
// Storage is linear and in-memory; scoring is a brute-force scan,
// acceptable at single-site crawl chunk counts. This is explicitly
// not a scalable index.
type VectorStore interface {
	// Add appends chunks (with embeddings) to the store.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Scan scores every stored chunk against the query embedding by
	// cosine similarity and returns all of them, unsorted.
	Scan(ctx context.Context, query []float32) ([]domain.ScoredChunk, error)

	// Len reports the number of stored chunks.
	Len() int

	// Reset discards all stored chunks.
	Reset()
}
