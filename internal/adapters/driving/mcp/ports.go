package mcp

import (
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Crawl runs recursive crawls.
	Crawl driving.CrawlService

	// Scrape extracts single pages.
	Scrape driving.ScrapeService

	// Chat answers questions over a loaded corpus.
	Chat driving.ChatService

	// PDF extracts PDF text.
	PDF driving.PDFService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Crawl == nil {
		return ErrMissingCrawlService
	}
	// Scrape, Chat and PDF are optional; their tools are registered
	// only when present.
	return nil
}
