package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
)

// Ensure Jobs implements the interface.
var _ driving.JobService = (*Jobs)(nil)

// Jobs fronts the external job-search provider with configuration
// checks and input validation.
type Jobs struct {
	api driven.JobSearchAPI
}

// NewJobs creates the job-search service.
func NewJobs(api driven.JobSearchAPI) *Jobs {
	return &Jobs{api: api}
}

// Available reports whether the provider has credentials.
func (j *Jobs) Available() bool {
	return j.api != nil && j.api.Configured()
}

// Search runs a keyword/location search against the provider.
func (j *Jobs) Search(ctx context.Context, query domain.JobQuery) (*domain.JobSearchResult, error) {
	if !j.Available() {
		return nil, domain.ErrNotConfigured
	}
	query.Keywords = strings.TrimSpace(query.Keywords)
	if query.Keywords == "" {
		return nil, fmt.Errorf("%w: keywords required", domain.ErrInvalidInput)
	}
	if query.Count <= 0 {
		query.Count = domain.DefaultJobCount
	}
	return j.api.Search(ctx, query)
}

// Detail fetches one listing by ID.
func (j *Jobs) Detail(ctx context.Context, jobID string) (*domain.JobListing, error) {
	if !j.Available() {
		return nil, domain.ErrNotConfigured
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, fmt.Errorf("%w: job ID required", domain.ErrInvalidInput)
	}
	return j.api.Detail(ctx, jobID)
}
