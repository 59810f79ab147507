package cli

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

type mockScrapeService struct {
	record *domain.PageRecord
	err    error
}

func (m *mockScrapeService) Scrape(_ context.Context, _ string) (*domain.PageRecord, error) {
	return m.record, m.err
}

type mockCrawlService struct {
	buckets map[string]*domain.DomainBucket
	err     error
}

func (m *mockCrawlService) Crawl(_ context.Context, _ string, _ domain.CrawlOptions) (*domain.PageRecord, error) {
	return nil, m.err
}

func (m *mockCrawlService) CrawlAll(_ context.Context, _ []string, _ domain.CrawlOptions) (map[string]*domain.DomainBucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.buckets, nil
}

type mockPathService struct {
	suggestions []domain.PathSuggestion
	err         error
}

func (m *mockPathService) Prioritize(_ context.Context, _ []string, _ string) ([]domain.PathSuggestion, error) {
	return m.suggestions, m.err
}

type mockJobService struct {
	available bool
	result    *domain.JobSearchResult
	listing   *domain.JobListing
	err       error
}

func (m *mockJobService) Available() bool { return m.available }

func (m *mockJobService) Search(_ context.Context, _ domain.JobQuery) (*domain.JobSearchResult, error) {
	return m.result, m.err
}

func (m *mockJobService) Detail(_ context.Context, _ string) (*domain.JobListing, error) {
	return m.listing, m.err
}

type mockExportService struct {
	path        string
	mainPath    string
	summaryPath string
	err         error
	lastFormat  string
}

func (m *mockExportService) Formats() []string {
	return []string{"csv", "docx", "json", "text", "xlsx"}
}

func (m *mockExportService) Export(_ context.Context, format string, _ []*domain.PageRecord) (string, error) {
	m.lastFormat = format
	return m.path, m.err
}

func (m *mockExportService) ExportText(_ context.Context, _, _ string) (string, string, error) {
	return m.mainPath, m.summaryPath, m.err
}

type mockChatService struct {
	conv    *domain.Conversation
	chunks  int
	reply   string
	loadErr error
	askErr  error
}

func (m *mockChatService) Load(_ context.Context, _ string) (int, error) {
	return m.chunks, m.loadErr
}

func (m *mockChatService) Ask(_ context.Context, question string) (string, error) {
	if m.askErr != nil {
		return "", m.askErr
	}
	m.conv.Append(domain.RoleUser, question)
	m.conv.Append(domain.RoleAssistant, m.reply)
	return m.reply, nil
}

func (m *mockChatService) History() *domain.Conversation {
	return m.conv
}

type mockRetrievalService struct {
	scored    []domain.ScoredChunk
	err       error
	lastQuery string
}

func (m *mockRetrievalService) Query(_ context.Context, query string) ([]domain.ScoredChunk, error) {
	m.lastQuery = query
	return m.scored, m.err
}

func (m *mockRetrievalService) Context(_ context.Context, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	var texts []string
	for _, sc := range m.scored {
		texts = append(texts, sc.Chunk.Text)
	}
	return strings.Join(texts, "\n\n"), nil
}

type mockPDFService struct {
	text      string
	err       error
	lastURL   string
	lastFile  string
	converted []string
}

func (m *mockPDFService) ExtractURL(_ context.Context, url string) (string, error) {
	m.lastURL = url
	return m.text, m.err
}

func (m *mockPDFService) ExtractFile(_ context.Context, path string) (string, error) {
	m.lastFile = path
	return m.text, m.err
}

func (m *mockPDFService) ExtractBytes(_ context.Context, _ []byte) (string, error) {
	return m.text, m.err
}

func (m *mockPDFService) ConvertToDocument(_ context.Context, _, docPath string) error {
	m.converted = append(m.converted, docPath)
	return m.err
}

func (m *mockPDFService) ConvertTables(_ context.Context, _, workbookPath string) error {
	m.converted = append(m.converted, workbookPath)
	return m.err
}

type mockArchiveStore struct {
	buckets map[string]*domain.DomainBucket
	listing []driven.ArchivedBucket
	saved   []*domain.DomainBucket
	err     error
}

func (m *mockArchiveStore) SaveBucket(_ context.Context, bucket *domain.DomainBucket) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, bucket)
	return nil
}

func (m *mockArchiveStore) GetBucket(_ context.Context, host string) (*domain.DomainBucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	bucket, ok := m.buckets[host]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return bucket, nil
}

func (m *mockArchiveStore) ListBuckets(_ context.Context) ([]driven.ArchivedBucket, error) {
	return m.listing, m.err
}

func (m *mockArchiveStore) SaveConversation(_ context.Context, _ *domain.Conversation) error {
	return m.err
}

func (m *mockArchiveStore) GetConversation(_ context.Context, _ string) (*domain.Conversation, error) {
	return nil, domain.ErrNotFound
}

func (m *mockArchiveStore) Close() error { return nil }

type mockConfigStore struct {
	data map[string]any
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.data[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	i, _ := m.data[key].(int)
	return i
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	f, _ := m.data[key].(float64)
	return f
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	s, _ := m.data[key].([]string)
	return s
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

// setupTestServices wires mocks into the package-level services and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldScrape := scrapeService
	oldCrawl := crawlService
	oldPath := pathService
	oldChat := chatService
	oldRetrieval := retrievalService
	oldPDF := pdfService
	oldJob := jobService
	oldExport := exportService
	oldArchive := archiveStore
	oldConfig := configStore

	record := &domain.PageRecord{
		URL:     "https://example.com",
		Title:   "Example",
		Content: "Sample page content.",
	}
	scrapeService = &mockScrapeService{record: record}
	crawlService = &mockCrawlService{
		buckets: map[string]*domain.DomainBucket{
			"example.com": {
				Domain:    "example.com",
				Pages:     []*domain.PageRecord{record},
				Text:      record.Text(),
				CrawledAt: time.Now(),
			},
		},
	}
	pathService = &mockPathService{
		suggestions: []domain.PathSuggestion{
			{
				SiteURL:  "https://example.com",
				URLs:     []string{"https://example.com/about"},
				Analysis: "The about page looks most relevant.",
			},
		},
	}
	jobService = &mockJobService{
		available: true,
		result: &domain.JobSearchResult{
			Listings: []domain.JobListing{
				{
					ID:          "mock-job-1",
					Title:       "Software Engineer",
					CompanyName: "Mock Company 2",
					Location:    domain.JobLocation{Name: "Remote"},
					ListedAt:    time.Now().UnixMilli(),
				},
			},
		},
		listing: &domain.JobListing{
			ID:          "mock-job-1",
			Title:       "Software Engineer",
			CompanyName: "Mock Company 2",
			Location:    domain.JobLocation{Name: "Remote"},
			Description: "Role description.",
		},
	}
	chatService = &mockChatService{
		conv:   &domain.Conversation{ID: "conv-1", StartedAt: time.Now()},
		chunks: 3,
		reply:  "It is an example site.",
	}
	retrievalService = &mockRetrievalService{
		scored: []domain.ScoredChunk{
			{Chunk: domain.Chunk{ID: "c1", Text: "Sample page content."}, Score: 0.91},
		},
	}
	pdfService = &mockPDFService{text: "Extracted PDF text."}
	exportService = &mockExportService{
		path:        "scratch/abc.json",
		mainPath:    "scratch/abc.txt",
		summaryPath: "scratch/Sum_abc.txt",
	}
	archiveStore = &mockArchiveStore{}
	configStore = newMockConfigStore()

	return func() {
		scrapeService = oldScrape
		crawlService = oldCrawl
		pathService = oldPath
		chatService = oldChat
		retrievalService = oldRetrieval
		pdfService = oldPDF
		jobService = oldJob
		exportService = oldExport
		archiveStore = oldArchive
		configStore = oldConfig
	}
}
