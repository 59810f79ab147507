package domain

import "time"

// DefaultMaxDepth bounds recursive crawls when no depth is given.
const DefaultMaxDepth = 3

// CrawlOptions configures a recursive crawl.
type CrawlOptions struct {
	// MaxDepth is the maximum recursion depth. Depth 0 crawls only the
	// seed page. Negative values fall back to DefaultMaxDepth.
	MaxDepth int
}

// DomainBucket aggregates the crawl output for one network authority.
// Buckets are rebuilt on every run; they exist only to batch per-domain
// exports and retrieval corpora.
type DomainBucket struct {
	// Domain is the network authority (host) shared by all pages.
	Domain string

	// Pages are the root records crawled for this domain.
	Pages []*PageRecord

	// Text is the aggregated extracted text for the whole bucket.
	Text string

	// CrawledAt is when the bucket was assembled.
	CrawledAt time.Time
}

// PathSuggestion is the outcome of AI-assisted path prioritization for
// one site: a short relevance-ranked URL list plus the model's prose
// rationale. Best-effort only; never authoritative.
type PathSuggestion struct {
	// SiteURL is the seed the suggestion was computed for.
	SiteURL string

	// URLs are the prioritized absolute URLs, capped per site.
	URLs []string

	// Analysis is the model's free-text rationale, empty when the
	// heuristic-only fallback was taken.
	Analysis string
}

// MaxSuggestedURLs caps the combined keyword-matched and model-suggested
// URL set per site.
const MaxSuggestedURLs = 20
