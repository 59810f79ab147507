package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// CrawlInput is the input schema for the crawl tool.
type CrawlInput struct {
	URL      string `json:"url" jsonschema:"the site URL to crawl"`
	MaxDepth int    `json:"max_depth,omitempty" jsonschema:"maximum link depth to follow (default 3)"`
}

// CrawlOutput is the output schema for the crawl tool.
type CrawlOutput struct {
	Domain string `json:"domain"`
	Pages  int    `json:"pages"`
	Text   string `json:"text"`
}

// ScrapeInput is the input schema for the scrape tool.
type ScrapeInput struct {
	URL string `json:"url" jsonschema:"the page URL to extract"`
}

// ScrapeOutput is the output schema for the scrape tool.
type ScrapeOutput struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	URL      string `json:"url" jsonschema:"the site to crawl and ask about"`
	Question string `json:"question" jsonschema:"the question to answer from the site's content"`
	MaxDepth int    `json:"max_depth,omitempty" jsonschema:"maximum link depth to follow (default 3)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
	Chunks int    `json:"chunks"`
}

// PDFInput is the input schema for the extract_pdf tool.
type PDFInput struct {
	URL string `json:"url" jsonschema:"the PDF URL to download and extract"`
}

// PDFOutput is the output schema for the extract_pdf tool.
type PDFOutput struct {
	Text string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "crawl",
		Description: "Recursively crawl a website and return its extracted text",
	}, s.handleCrawl)

	if s.ports.Scrape != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "scrape",
			Description: "Extract the text content of a single web page",
		}, s.handleScrape)
	}

	if s.ports.Chat != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ask",
			Description: "Crawl a website and answer a question from its content",
		}, s.handleAsk)
	}

	if s.ports.PDF != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "extract_pdf",
			Description: "Download a PDF and extract its text, with OCR fallback",
		}, s.handlePDF)
	}
}

// handleCrawl handles the crawl tool invocation.
func (s *Server) handleCrawl(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CrawlInput,
) (*mcp.CallToolResult, CrawlOutput, error) {
	opts := domain.CrawlOptions{MaxDepth: input.MaxDepth}
	if input.MaxDepth == 0 {
		opts.MaxDepth = domain.DefaultMaxDepth
	}

	buckets, err := s.ports.Crawl.CrawlAll(ctx, []string{input.URL}, opts)
	if err != nil {
		return nil, CrawlOutput{}, err
	}

	host := domain.Host(domain.NormalizeURL(input.URL))
	bucket, ok := buckets[host]
	if !ok {
		return nil, CrawlOutput{}, domain.ErrInvalidURL
	}

	pages := 0
	for _, rec := range bucket.Pages {
		pages += len(rec.Flatten())
	}

	return nil, CrawlOutput{
		Domain: bucket.Domain,
		Pages:  pages,
		Text:   bucket.Text,
	}, nil
}

// handleScrape handles the scrape tool invocation.
func (s *Server) handleScrape(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScrapeInput,
) (*mcp.CallToolResult, ScrapeOutput, error) {
	record, err := s.ports.Scrape.Scrape(ctx, input.URL)
	if err != nil {
		return nil, ScrapeOutput{}, err
	}

	return nil, ScrapeOutput{
		URL:   record.URL,
		Title: record.Title,
		Text:  record.Text(),
	}, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	opts := domain.CrawlOptions{MaxDepth: input.MaxDepth}
	if input.MaxDepth == 0 {
		opts.MaxDepth = domain.DefaultMaxDepth
	}

	buckets, err := s.ports.Crawl.CrawlAll(ctx, []string{input.URL}, opts)
	if err != nil {
		return nil, AskOutput{}, err
	}

	host := domain.Host(domain.NormalizeURL(input.URL))
	bucket, ok := buckets[host]
	if !ok {
		return nil, AskOutput{}, domain.ErrInvalidURL
	}

	chunks, err := s.ports.Chat.Load(ctx, bucket.Text)
	if err != nil {
		return nil, AskOutput{}, err
	}

	answer, err := s.ports.Chat.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: answer, Chunks: chunks}, nil
}

// handlePDF handles the extract_pdf tool invocation.
func (s *Server) handlePDF(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PDFInput,
) (*mcp.CallToolResult, PDFOutput, error) {
	text, err := s.ports.PDF.ExtractURL(ctx, input.URL)
	if err != nil {
		return nil, PDFOutput{}, err
	}

	return nil, PDFOutput{Text: text}, nil
}
