package driven

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// JobSearchAPI wraps an external job-search provider.
//
// When credentials are absent the adapter reports itself unconfigured
// via Configured() rather than failing hard on use.
type JobSearchAPI interface {
	// Configured reports whether credentials are present.
	Configured() bool

	// Search runs a keyword/location job search.
	Search(ctx context.Context, query domain.JobQuery) (*domain.JobSearchResult, error)

	// Detail fetches one job listing by ID.
	Detail(ctx context.Context, jobID string) (*domain.JobListing, error)
}
