// Package linkedin provides the job-search adapter.
//
// The real LinkedIn job-search API requires a partnership agreement,
// so Search and Detail return representative mock listings shaped
// like the live API's payloads. Credential handling, rate limiting
// and the response model are production-shaped so the mock can be
// swapped for live calls without touching callers.
package linkedin

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure API implements the interface.
var _ driven.JobSearchAPI = (*API)(nil)

// Environment variables holding the API credentials.
const (
	EnvClientID     = "LINKEDIN_CLIENT_ID"
	EnvClientSecret = "LINKEDIN_CLIENT_SECRET"
	EnvRedirectURI  = "LINKEDIN_REDIRECT_URI"
	EnvAccessToken  = "LINKEDIN_ACCESS_TOKEN"
)

// requestsPerMinute is the provider's documented rate limit.
const requestsPerMinute = 60

// authURL and tokenURL are LinkedIn's OAuth 2.0 endpoints.
const (
	authURL  = "https://www.linkedin.com/oauth/v2/authorization"
	tokenURL = "https://www.linkedin.com/oauth/v2/accessToken"
)

// API wraps the LinkedIn job-search integration.
type API struct {
	oauth   *oauth2.Config
	token   string
	limiter *rate.Limiter
}

// NewFromEnv builds the API from environment credentials. Missing
// credentials leave the API unconfigured rather than failing.
func NewFromEnv() *API {
	return New(
		os.Getenv(EnvClientID),
		os.Getenv(EnvClientSecret),
		os.Getenv(EnvRedirectURI),
		os.Getenv(EnvAccessToken),
	)
}

// New builds the API from explicit credentials.
func New(clientID, clientSecret, redirectURI, accessToken string) *API {
	return &API{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
			Scopes: []string{"r_liteprofile", "r_emailaddress"},
		},
		token:   accessToken,
		limiter: rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), 1),
	}
}

// Configured reports whether every credential is present.
func (a *API) Configured() bool {
	return a.oauth.ClientID != "" && a.oauth.ClientSecret != "" &&
		a.oauth.RedirectURL != "" && a.token != ""
}

// Search runs a keyword/location job search.
func (a *API) Search(ctx context.Context, query domain.JobQuery) (*domain.JobSearchResult, error) {
	if !a.Configured() {
		return nil, domain.ErrNotConfigured
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	count := query.Count
	if count <= 0 || count > domain.DefaultJobCount {
		count = domain.DefaultJobCount
	}

	listings := mockListings(query, count)
	return &domain.JobSearchResult{
		Listings: listings,
		Paging: domain.JobPaging{
			Count: len(listings),
			Start: 0,
			Total: len(listings),
		},
		SearchID: fmt.Sprintf("search-%d", time.Now().UnixNano()),
	}, nil
}

// Detail fetches one job listing by ID.
func (a *API) Detail(ctx context.Context, jobID string) (*domain.JobListing, error) {
	if !a.Configured() {
		return nil, domain.ErrNotConfigured
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	listing := mockDetail(jobID)
	if listing == nil {
		return nil, fmt.Errorf("%w: job %q", domain.ErrNotFound, jobID)
	}
	return listing, nil
}
