package driven

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// PageFetcher turns one URL into a structured page record.
//
// Implementations run a fallback chain (static fetch, rendered fetch,
// image OCR) and always return a best-effort record: transport and
// parse failures become inline error text on the record, never a
// returned error. The error return is reserved for context
// cancellation.
type PageFetcher interface {
	// Fetch extracts title, headings h1-h3 and paragraph text from the
	// page at url. The record's Error field is set when every stage
	// failed.
	Fetch(ctx context.Context, url string) (*domain.PageRecord, error)

	// Links returns the resolved absolute anchor targets found on the
	// page, in document order, duplicates preserved.
	Links(ctx context.Context, url string) ([]string, error)
}

// Renderer drives a headless browser to obtain the DOM of a
// script-rendered page. It is a scarce external resource; adapters
// bound concurrent instances with a debug-port pool.
type Renderer interface {
	// Render navigates to url, waits a fixed settle time for
	// script-driven rendering, and returns the rendered HTML.
	Render(ctx context.Context, url string) (string, error)

	// Close releases the port pool and any running browser processes.
	Close() error
}

// LinkDiscoverer collects the outbound links of a single page without
// recursing. Used by path prioritization to map a site's surface.
type LinkDiscoverer interface {
	// Discover fetches only the seed page and returns the same-origin
	// links found on it together with their anchor text.
	Discover(ctx context.Context, seedURL string) ([]DiscoveredLink, error)
}

// DiscoveredLink is one anchor found during link discovery.
type DiscoveredLink struct {
	// URL is the resolved absolute target.
	URL string

	// Text is the anchor text, lower-cased and trimmed.
	Text string
}
