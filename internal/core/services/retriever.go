package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/scrawl-cli/internal/chunker"
	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// Ensure Retriever implements the interface.
var _ driving.RetrievalService = (*Retriever)(nil)

// Retriever makes a large block of crawled text queryable despite
// model context-size limits: chunk, embed, cosine-score, keep the best.
// Scoring is a brute-force linear scan over the store.
type Retriever struct {
	embedder  driven.EmbeddingService
	store     driven.VectorStore
	splitter  *chunker.Splitter
	threshold float64
	topK      int
}

// NewRetriever creates a retriever with the configured similarity
// threshold and top-K from settings.
func NewRetriever(embedder driven.EmbeddingService, store driven.VectorStore, settings domain.Settings) *Retriever {
	return &Retriever{
		embedder:  embedder,
		store:     store,
		splitter:  chunker.New(chunker.WithBudget(settings.ChunkBudget)),
		threshold: settings.SimilarityThreshold,
		topK:      settings.TopK,
	}
}

// Load chunks and embeds a corpus, replacing any previous store
// contents. Returns the number of chunks stored.
func (r *Retriever) Load(ctx context.Context, corpus string) (int, error) {
	if r.embedder == nil {
		return 0, domain.ErrEmbeddingUnavailable
	}

	corpus = strings.TrimSpace(corpus)
	texts := r.splitter.Split(corpus)
	if len(texts) == 0 {
		r.store.Reset()
		return 0, nil
	}

	logger.Section("Corpus Load")
	logger.Debug("Chunked corpus into %d chunks (budget %d)", len(texts), r.splitter.Budget())

	embeddings, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed corpus: %w", err)
	}
	if len(embeddings) != len(texts) {
		return 0, fmt.Errorf("embed corpus: got %d embeddings for %d chunks", len(embeddings), len(texts))
	}

	chunks := make([]domain.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = domain.Chunk{
			ID:        uuid.New().String(),
			Text:      text,
			Embedding: embeddings[i],
		}
	}

	r.store.Reset()
	if err := r.store.Add(ctx, chunks); err != nil {
		return 0, fmt.Errorf("store chunks: %w", err)
	}
	return len(chunks), nil
}

// Query embeds the expanded query and returns the chunks scoring at or
// above the similarity threshold, best first, capped at top-K.
//
// Scoring and sorting are order-independent: ties break on chunk ID so
// the same store contents produce the same ranking regardless of
// insertion order.
func (r *Retriever) Query(ctx context.Context, query string) ([]domain.ScoredChunk, error) {
	if r.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	expanded := ExpandQuery(query)
	if expanded != query {
		logger.Debug("Expanded query: %q", expanded)
	}

	embedding, err := r.embedder.Embed(ctx, expanded)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.store.Scan(ctx, embedding)
	if err != nil {
		return nil, fmt.Errorf("scan store: %w", err)
	}

	kept := scored[:0]
	for _, sc := range scored {
		if sc.Score >= r.threshold {
			kept = append(kept, sc)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return kept[i].Chunk.ID < kept[j].Chunk.ID
	})

	if len(kept) > r.topK {
		kept = kept[:r.topK]
	}
	logger.Debug("Retrieval: %d/%d chunks above threshold %.2f", len(kept), r.store.Len(), r.threshold)
	return kept, nil
}

// Context returns the concatenated top-K chunk texts for a query,
// empty when nothing clears the threshold.
func (r *Retriever) Context(ctx context.Context, query string) (string, error) {
	scored, err := r.Query(ctx, query)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(scored))
	for i, sc := range scored {
		parts[i] = strings.TrimSpace(sc.Chunk.Text)
	}
	return strings.Join(parts, "\n\n"), nil
}
