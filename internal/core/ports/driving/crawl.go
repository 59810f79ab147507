package driving

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// CrawlService runs recursive, depth-bounded crawls.
type CrawlService interface {
	// Crawl walks the site rooted at seedURL and returns the record
	// tree. The visited set is scoped to this invocation.
	Crawl(ctx context.Context, seedURL string, opts domain.CrawlOptions) (*domain.PageRecord, error)

	// CrawlAll fans out one crawl per domain in urls and returns the
	// per-domain buckets. Failures degrade that domain only.
	CrawlAll(ctx context.Context, urls []string, opts domain.CrawlOptions) (map[string]*domain.DomainBucket, error)
}

// PathService performs AI-assisted path prioritization.
type PathService interface {
	// Prioritize reduces each site's reachable link set to a short
	// relevance-ranked URL list for the given information need.
	// LLM failures degrade to heuristics-only suggestions.
	Prioritize(ctx context.Context, siteURLs []string, need string) ([]domain.PathSuggestion, error)
}

// ScrapeService extracts a single page without recursion.
type ScrapeService interface {
	// Scrape extracts one URL into a page record.
	Scrape(ctx context.Context, url string) (*domain.PageRecord, error)
}
