package domain

// Settings holds the user-tunable knobs for the scraping pipeline.
// Values are loaded from the config store and overridable per command.
type Settings struct {
	// MaxDepth bounds recursive crawls.
	MaxDepth int

	// ChunkBudget is the maximum chunk size in characters.
	ChunkBudget int

	// SimilarityThreshold discards retrieval hits scoring below it.
	SimilarityThreshold float64

	// TopK is the number of chunks injected as chat context.
	TopK int

	// OCRLanguages is the Tesseract language set, e.g. ["eng", "jpn"].
	OCRLanguages []string

	// ScratchDir is where exports and uploads are written.
	ScratchDir string

	// ChatModel and EmbeddingModel name the provider models.
	ChatModel      string
	EmbeddingModel string
}

// DefaultSettings returns the pipeline defaults. The retrieval
// threshold and top-K are single configurable defaults; call sites do
// not carry their own values.
func DefaultSettings() Settings {
	return Settings{
		MaxDepth:            DefaultMaxDepth,
		ChunkBudget:         DefaultChunkBudget,
		SimilarityThreshold: 0.3,
		TopK:                10,
		OCRLanguages:        []string{"eng"},
		ScratchDir:          "scratch",
	}
}
