package mcp

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// --- Mock implementations ---

type mockCrawlService struct {
	buckets map[string]*domain.DomainBucket
	record  *domain.PageRecord
	err     error
	lastOpts domain.CrawlOptions
}

func (m *mockCrawlService) Crawl(_ context.Context, _ string, opts domain.CrawlOptions) (*domain.PageRecord, error) {
	m.lastOpts = opts
	return m.record, m.err
}

func (m *mockCrawlService) CrawlAll(_ context.Context, _ []string, opts domain.CrawlOptions) (map[string]*domain.DomainBucket, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.buckets, nil
}

type mockScrapeService struct {
	record *domain.PageRecord
	err    error
}

func (m *mockScrapeService) Scrape(_ context.Context, _ string) (*domain.PageRecord, error) {
	return m.record, m.err
}

type mockChatService struct {
	chunks  int
	answer  string
	loadErr error
	askErr  error
	asked   string
}

func (m *mockChatService) Load(_ context.Context, _ string) (int, error) {
	return m.chunks, m.loadErr
}

func (m *mockChatService) Ask(_ context.Context, question string) (string, error) {
	m.asked = question
	return m.answer, m.askErr
}

func (m *mockChatService) History() *domain.Conversation {
	return &domain.Conversation{}
}

type mockPDFService struct {
	text string
	err  error
}

func (m *mockPDFService) ExtractURL(_ context.Context, _ string) (string, error) {
	return m.text, m.err
}

func (m *mockPDFService) ExtractFile(_ context.Context, _ string) (string, error) {
	return m.text, m.err
}

func (m *mockPDFService) ExtractBytes(_ context.Context, _ []byte) (string, error) {
	return m.text, m.err
}

func (m *mockPDFService) ConvertToDocument(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockPDFService) ConvertTables(_ context.Context, _, _ string) error {
	return m.err
}
