package services

import (
	"context"
	"math"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockFetcher implements driven.PageFetcher over fixed page and link
// tables, counting fetches per URL.
type mockFetcher struct {
	pages      map[string]*domain.PageRecord
	links      map[string][]string
	fetchCount map[string]int
	fetchErr   error
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{
		pages:      make(map[string]*domain.PageRecord),
		links:      make(map[string][]string),
		fetchCount: make(map[string]int),
	}
}

func (m *mockFetcher) addPage(url, title, content string, links ...string) {
	m.pages[url] = &domain.PageRecord{URL: url, Title: title, Content: content}
	m.links[url] = links
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (*domain.PageRecord, error) {
	m.fetchCount[url]++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if rec, ok := m.pages[url]; ok {
		cp := *rec
		return &cp, nil
	}
	return &domain.PageRecord{URL: url, Error: "not found"}, nil
}

func (m *mockFetcher) Links(_ context.Context, url string) ([]string, error) {
	return m.links[url], nil
}

// mockDiscoverer implements driven.LinkDiscoverer.
type mockDiscoverer struct {
	links []driven.DiscoveredLink
	err   error
}

func (m *mockDiscoverer) Discover(_ context.Context, _ string) ([]driven.DiscoveredLink, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.links, nil
}

// mockLLM implements driven.LLMService, replaying queued replies and
// recording every call.
type mockLLM struct {
	replies []string
	err     error

	calls [][]domain.ChatTurn
	opts  []driven.CompleteOptions
}

func (m *mockLLM) Complete(_ context.Context, messages []domain.ChatTurn, opts driven.CompleteOptions) (string, error) {
	m.calls = append(m.calls, messages)
	m.opts = append(m.opts, opts)
	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	return reply, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockEmbedder implements driven.EmbeddingService via a pluggable
// text-to-vector function.
type mockEmbedder struct {
	embedFn func(text string) []float32
	err     error
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.embedFn(text), nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = m.embedFn(t)
	}
	return out, nil
}

func (m *mockEmbedder) ModelName() string            { return "mock-embed" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

// testVectorStore is a linear in-memory driven.VectorStore with real
// cosine scoring.
type testVectorStore struct {
	chunks []domain.Chunk
}

func (s *testVectorStore) Add(_ context.Context, chunks []domain.Chunk) error {
	s.chunks = append(s.chunks, chunks...)
	return nil
}

func (s *testVectorStore) Scan(_ context.Context, query []float32) ([]domain.ScoredChunk, error) {
	out := make([]domain.ScoredChunk, len(s.chunks))
	for i, c := range s.chunks {
		out[i] = domain.ScoredChunk{Chunk: c, Score: cosine(query, c.Embedding)}
	}
	return out, nil
}

func (s *testVectorStore) Len() int { return len(s.chunks) }
func (s *testVectorStore) Reset()   { s.chunks = nil }

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// mockNative implements driven.PDFTextExtractor.
type mockNative struct {
	text string
	err  error
}

func (m *mockNative) NativeText(_ context.Context, _ []byte) (string, error) {
	return m.text, m.err
}

// mockRaster implements driven.PDFRasteriser.
type mockRaster struct {
	pages [][]byte
	err   error
}

func (m *mockRaster) Rasterise(_ context.Context, _ []byte, _ int) ([][]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pages, nil
}

// mockOCR implements driven.OCREngine, returning page text keyed by
// image content.
type mockOCR struct {
	byImage map[string]string
	err     error

	languages [][]string
}

func (m *mockOCR) Recognize(_ context.Context, image []byte, languages []string) (string, error) {
	m.languages = append(m.languages, languages)
	if m.err != nil {
		return "", m.err
	}
	return m.byImage[string(image)], nil
}

func (m *mockOCR) Close() error { return nil }

// mockJobAPI implements driven.JobSearchAPI.
type mockJobAPI struct {
	configured bool
	result     *domain.JobSearchResult
	listing    *domain.JobListing
	err        error

	lastQuery domain.JobQuery
}

func (m *mockJobAPI) Configured() bool { return m.configured }

func (m *mockJobAPI) Search(_ context.Context, query domain.JobQuery) (*domain.JobSearchResult, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockJobAPI) Detail(_ context.Context, _ string) (*domain.JobListing, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listing, nil
}
