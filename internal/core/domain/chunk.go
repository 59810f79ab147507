package domain

// DefaultChunkBudget is the default maximum chunk size in characters.
const DefaultChunkBudget = 2000

// Chunk is a bounded-size text segment, the unit of embedding and
// retrieval. Ordering within the source text is irrelevant after
// chunking; chunks are treated as an unordered set.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Text is the chunk content, at most the configured budget except
	// for a single unbroken run longer than the budget itself.
	Text string

	// Embedding is the vector representation, nil until computed.
	Embedding []float32
}

// ScoredChunk pairs a chunk with its similarity to a query embedding.
type ScoredChunk struct {
	Chunk Chunk

	// Score is the cosine similarity against the query, in [-1, 1].
	Score float64
}
