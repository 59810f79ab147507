// Package memory provides in-memory driven-side stores. The vector
// store lives here: retrieval sessions are per-invocation, so chunks
// never need to outlive the process.
package memory

import (
	"context"
	"math"
	"sync"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// VectorStore holds embedded chunks in a slice and scores them with a
// brute-force cosine scan. Linear search is fine at single-site crawl
// chunk counts; this is deliberately not an index.
type VectorStore struct {
	mu     sync.RWMutex
	chunks []domain.Chunk
}

// NewVectorStore creates an empty store.
func NewVectorStore() *VectorStore {
	return &VectorStore{}
}

// Add appends chunks to the store.
func (s *VectorStore) Add(_ context.Context, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunks...)
	return nil
}

// Scan scores every stored chunk against the query embedding by
// cosine similarity and returns all of them, unsorted.
func (s *VectorStore) Scan(_ context.Context, query []float32) ([]domain.ScoredChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scored := make([]domain.ScoredChunk, len(s.chunks))
	for i, chunk := range s.chunks {
		scored[i] = domain.ScoredChunk{
			Chunk: chunk,
			Score: cosineSimilarity(query, chunk.Embedding),
		}
	}
	return scored, nil
}

// Len reports the number of stored chunks.
func (s *VectorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Reset discards all stored chunks.
func (s *VectorStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
}

// cosineSimilarity computes the cosine of the angle between two
// vectors. Mismatched lengths and zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
