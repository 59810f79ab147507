package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

func exampleBucket() map[string]*domain.DomainBucket {
	root := &domain.PageRecord{
		URL:     "https://example.com",
		Title:   "Example",
		Content: "Welcome to the example site.",
		SubPages: []*domain.PageRecord{
			{URL: "https://example.com/about", Content: "About us."},
		},
	}
	return map[string]*domain.DomainBucket{
		"example.com": {
			Domain: "example.com",
			Pages:  []*domain.PageRecord{root},
			Text:   root.Text(),
		},
	}
}

func TestServer_handleCrawl(t *testing.T) {
	ctx := context.Background()

	t.Run("returns crawled text", func(t *testing.T) {
		mockCrawl := &mockCrawlService{buckets: exampleBucket()}
		server, err := NewServer(&Ports{Crawl: mockCrawl})
		require.NoError(t, err)

		input := CrawlInput{URL: "https://example.com", MaxDepth: 2}
		_, output, err := server.handleCrawl(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "example.com", output.Domain)
		assert.Equal(t, 2, output.Pages)
		assert.Contains(t, output.Text, "Welcome to the example site.")
		assert.Equal(t, 2, mockCrawl.lastOpts.MaxDepth)
	})

	t.Run("zero depth falls back to default", func(t *testing.T) {
		mockCrawl := &mockCrawlService{buckets: exampleBucket()}
		server, err := NewServer(&Ports{Crawl: mockCrawl})
		require.NoError(t, err)

		input := CrawlInput{URL: "https://example.com"}
		_, _, err = server.handleCrawl(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultMaxDepth, mockCrawl.lastOpts.MaxDepth)
	})

	t.Run("bare domain is normalized", func(t *testing.T) {
		mockCrawl := &mockCrawlService{buckets: exampleBucket()}
		server, err := NewServer(&Ports{Crawl: mockCrawl})
		require.NoError(t, err)

		input := CrawlInput{URL: "example.com"}
		_, output, err := server.handleCrawl(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "example.com", output.Domain)
	})

	t.Run("returns error on crawl failure", func(t *testing.T) {
		mockCrawl := &mockCrawlService{err: errors.New("network down")}
		server, err := NewServer(&Ports{Crawl: mockCrawl})
		require.NoError(t, err)

		_, _, err = server.handleCrawl(ctx, nil, CrawlInput{URL: "https://example.com"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "network down")
	})
}

func TestServer_handleScrape(t *testing.T) {
	ctx := context.Background()

	t.Run("returns page text", func(t *testing.T) {
		mockScrape := &mockScrapeService{
			record: &domain.PageRecord{
				URL:     "https://example.com",
				Title:   "Example",
				Content: "Page content.",
			},
		}
		server, err := NewServer(&Ports{Crawl: &mockCrawlService{}, Scrape: mockScrape})
		require.NoError(t, err)

		_, output, err := server.handleScrape(ctx, nil, ScrapeInput{URL: "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", output.URL)
		assert.Equal(t, "Example", output.Title)
		assert.Contains(t, output.Text, "Page content.")
	})

	t.Run("returns error on scrape failure", func(t *testing.T) {
		mockScrape := &mockScrapeService{err: errors.New("fetch failed")}
		server, err := NewServer(&Ports{Crawl: &mockCrawlService{}, Scrape: mockScrape})
		require.NoError(t, err)

		_, _, err = server.handleScrape(ctx, nil, ScrapeInput{URL: "https://example.com"})

		require.Error(t, err)
	})
}

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("crawls, loads and answers", func(t *testing.T) {
		mockCrawl := &mockCrawlService{buckets: exampleBucket()}
		mockChat := &mockChatService{chunks: 3, answer: "It is an example site."}
		server, err := NewServer(&Ports{Crawl: mockCrawl, Chat: mockChat})
		require.NoError(t, err)

		input := AskInput{URL: "https://example.com", Question: "what is this site?"}
		_, output, err := server.handleAsk(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "It is an example site.", output.Answer)
		assert.Equal(t, 3, output.Chunks)
		assert.Equal(t, "what is this site?", mockChat.asked)
	})

	t.Run("returns error when loading fails", func(t *testing.T) {
		mockCrawl := &mockCrawlService{buckets: exampleBucket()}
		mockChat := &mockChatService{loadErr: domain.ErrEmbeddingUnavailable}
		server, err := NewServer(&Ports{Crawl: mockCrawl, Chat: mockChat})
		require.NoError(t, err)

		input := AskInput{URL: "https://example.com", Question: "anything"}
		_, _, err = server.handleAsk(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	})
}

func TestServer_handlePDF(t *testing.T) {
	ctx := context.Background()

	t.Run("returns extracted text", func(t *testing.T) {
		mockPDF := &mockPDFService{text: "Annual report contents."}
		server, err := NewServer(&Ports{Crawl: &mockCrawlService{}, PDF: mockPDF})
		require.NoError(t, err)

		_, output, err := server.handlePDF(ctx, nil, PDFInput{URL: "https://example.com/report.pdf"})

		require.NoError(t, err)
		assert.Equal(t, "Annual report contents.", output.Text)
	})

	t.Run("returns error on extraction failure", func(t *testing.T) {
		mockPDF := &mockPDFService{err: domain.ErrNoTextLayer}
		server, err := NewServer(&Ports{Crawl: &mockCrawlService{}, PDF: mockPDF})
		require.NoError(t, err)

		_, _, err = server.handlePDF(ctx, nil, PDFInput{URL: "https://example.com/report.pdf"})

		assert.ErrorIs(t, err, domain.ErrNoTextLayer)
	})
}
