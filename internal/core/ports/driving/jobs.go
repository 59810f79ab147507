package driving

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// JobService wraps the job-search integration.
type JobService interface {
	// Available reports whether the integration is configured.
	Available() bool

	// Search runs a keyword/location job search.
	Search(ctx context.Context, query domain.JobQuery) (*domain.JobSearchResult, error)

	// Detail fetches one job listing by ID.
	Detail(ctx context.Context, jobID string) (*domain.JobListing, error)
}

// ExportService writes crawl results in the requested formats.
type ExportService interface {
	// Formats lists the available export format names.
	Formats() []string

	// Export writes records in the named format and returns the file
	// path.
	Export(ctx context.Context, format string, records []*domain.PageRecord) (string, error)

	// ExportText writes plain text with an AI "clear English" rewrite
	// saved beside it; the rewrite falls back to the original text when
	// the LLM is unavailable. Returns both paths.
	ExportText(ctx context.Context, seedURL, text string) (mainPath, summaryPath string, err error)
}
