package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// axisEmbedder maps each known keyword to its own axis so cosine
// scores in tests are exact.
func axisEmbedder() *mockEmbedder {
	return &mockEmbedder{embedFn: func(text string) []float32 {
		switch {
		case strings.Contains(text, "alpha"):
			return []float32{1, 0, 0}
		case strings.Contains(text, "beta"):
			return []float32{0, 1, 0}
		default:
			return []float32{0, 0, 1}
		}
	}}
}

func testSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.ChunkBudget = 64
	return s
}

func TestRetrieverLoad(t *testing.T) {
	t.Run("chunks and stores the corpus", func(t *testing.T) {
		store := &testVectorStore{}
		r := NewRetriever(axisEmbedder(), store, testSettings())

		n, err := r.Load(context.Background(), "alpha paragraph\n\nbeta paragraph")

		require.NoError(t, err)
		assert.Equal(t, n, store.Len())
		assert.Greater(t, n, 0)
	})

	t.Run("reload replaces previous contents", func(t *testing.T) {
		store := &testVectorStore{}
		r := NewRetriever(axisEmbedder(), store, testSettings())

		corpus := "alpha paragraph one with plenty of filler text to pass the budget\n\n" +
			"alpha paragraph two with plenty of filler text to pass the budget"
		_, err := r.Load(context.Background(), corpus)
		require.NoError(t, err)
		before := store.Len()
		require.Greater(t, before, 1)

		n, err := r.Load(context.Background(), "beta only")
		require.NoError(t, err)
		assert.Equal(t, n, store.Len())
		assert.NotEqual(t, before, store.Len())
	})

	t.Run("empty corpus clears the store", func(t *testing.T) {
		store := &testVectorStore{}
		r := NewRetriever(axisEmbedder(), store, testSettings())

		_, err := r.Load(context.Background(), "alpha text")
		require.NoError(t, err)

		n, err := r.Load(context.Background(), "   ")
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Zero(t, store.Len())
	})

	t.Run("nil embedder is reported", func(t *testing.T) {
		r := NewRetriever(nil, &testVectorStore{}, testSettings())
		_, err := r.Load(context.Background(), "text")
		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	})

	t.Run("embedding failure propagates", func(t *testing.T) {
		embedder := axisEmbedder()
		embedder.err = errors.New("service down")
		r := NewRetriever(embedder, &testVectorStore{}, testSettings())

		_, err := r.Load(context.Background(), "alpha text")
		assert.Error(t, err)
	})
}

func TestRetrieverQuery(t *testing.T) {
	seed := func(store *testVectorStore, chunks ...domain.Chunk) {
		require.NoError(t, store.Add(context.Background(), chunks))
	}

	t.Run("filters below the similarity threshold", func(t *testing.T) {
		store := &testVectorStore{}
		seed(store,
			domain.Chunk{ID: "a", Text: "alpha facts", Embedding: []float32{1, 0, 0}},
			domain.Chunk{ID: "b", Text: "beta facts", Embedding: []float32{0, 1, 0}},
		)
		r := NewRetriever(axisEmbedder(), store, testSettings())

		scored, err := r.Query(context.Background(), "alpha question")

		require.NoError(t, err)
		require.Len(t, scored, 1)
		assert.Equal(t, "a", scored[0].Chunk.ID)
		assert.InDelta(t, 1.0, scored[0].Score, 1e-6)
	})

	t.Run("results are sorted best first and capped at top-K", func(t *testing.T) {
		settings := testSettings()
		settings.TopK = 2

		store := &testVectorStore{}
		seed(store,
			domain.Chunk{ID: "low", Text: "mixed", Embedding: []float32{0.5, 0, 0.87}},
			domain.Chunk{ID: "exact", Text: "alpha", Embedding: []float32{1, 0, 0}},
			domain.Chunk{ID: "near", Text: "mostly alpha", Embedding: []float32{0.9, 0, 0.44}},
		)
		r := NewRetriever(axisEmbedder(), store, settings)

		scored, err := r.Query(context.Background(), "alpha question")

		require.NoError(t, err)
		require.Len(t, scored, 2)
		assert.Equal(t, "exact", scored[0].Chunk.ID)
		assert.Equal(t, "near", scored[1].Chunk.ID)
	})

	t.Run("ranking is independent of insertion order", func(t *testing.T) {
		chunks := []domain.Chunk{
			{ID: "a", Text: "alpha", Embedding: []float32{1, 0, 0}},
			{ID: "b", Text: "alpha too", Embedding: []float32{1, 0, 0}},
			{ID: "c", Text: "alpha three", Embedding: []float32{1, 0, 0}},
		}

		forward := &testVectorStore{}
		seed(forward, chunks...)
		backward := &testVectorStore{}
		seed(backward, chunks[2], chunks[1], chunks[0])

		rf := NewRetriever(axisEmbedder(), forward, testSettings())
		rb := NewRetriever(axisEmbedder(), backward, testSettings())

		sf, err := rf.Query(context.Background(), "alpha")
		require.NoError(t, err)
		sb, err := rb.Query(context.Background(), "alpha")
		require.NoError(t, err)

		require.Equal(t, len(sf), len(sb))
		for i := range sf {
			assert.Equal(t, sf[i].Chunk.ID, sb[i].Chunk.ID)
		}
	})

	t.Run("nothing above threshold yields empty result", func(t *testing.T) {
		store := &testVectorStore{}
		seed(store, domain.Chunk{ID: "b", Text: "beta", Embedding: []float32{0, 1, 0}})
		r := NewRetriever(axisEmbedder(), store, testSettings())

		scored, err := r.Query(context.Background(), "alpha")
		require.NoError(t, err)
		assert.Empty(t, scored)
	})
}

func TestRetrieverContext(t *testing.T) {
	t.Run("joins chunk texts with blank lines", func(t *testing.T) {
		store := &testVectorStore{}
		require.NoError(t, store.Add(context.Background(), []domain.Chunk{
			{ID: "a", Text: "alpha one ", Embedding: []float32{1, 0, 0}},
			{ID: "b", Text: " alpha two", Embedding: []float32{0.99, 0, 0.14}},
		}))
		r := NewRetriever(axisEmbedder(), store, testSettings())

		text, err := r.Context(context.Background(), "alpha")

		require.NoError(t, err)
		assert.Equal(t, "alpha one\n\nalpha two", text)
	})

	t.Run("empty store yields empty context", func(t *testing.T) {
		r := NewRetriever(axisEmbedder(), &testVectorStore{}, testSettings())
		text, err := r.Context(context.Background(), "alpha")
		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
