// Package discover maps a site's link surface with a single-page
// colly collector. It feeds path prioritization, which needs the
// seed page's outbound links but none of their content.
package discover

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure Discoverer implements the interface.
var _ driven.LinkDiscoverer = (*Discoverer)(nil)

// Default configuration values.
const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
)

// Config holds configuration for the discoverer.
type Config struct {
	// Timeout bounds the page fetch (default: 15s).
	Timeout time.Duration

	// UserAgent is sent with the request (default: a desktop browser).
	UserAgent string
}

// Discoverer collects the same-origin anchors of a single page.
type Discoverer struct {
	timeout   time.Duration
	userAgent string
}

// New creates a discoverer.
func New(cfg Config) *Discoverer {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &Discoverer{timeout: cfg.Timeout, userAgent: cfg.UserAgent}
}

// Discover fetches only the seed page and returns its same-origin
// links with their anchor text.
func (d *Discoverer) Discover(ctx context.Context, seedURL string) ([]driven.DiscoveredLink, error) {
	seedURL = domain.NormalizeURL(seedURL)
	host := domain.Host(seedURL)
	if host == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidURL, seedURL)
	}

	c := colly.NewCollector(
		colly.MaxDepth(1),
		colly.UserAgent(d.userAgent),
		colly.AllowedDomains(host),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(d.timeout)

	var links []driven.DiscoveredLink
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		target := e.Request.AbsoluteURL(e.Attr("href"))
		if target == "" || !domain.SameOrigin(target, seedURL) {
			return
		}
		links = append(links, driven.DiscoveredLink{
			URL:  target,
			Text: strings.ToLower(strings.TrimSpace(e.Text)),
		})
	})

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(seedURL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", seedURL, err)
	}
	c.Wait()

	if fetchErr != nil && len(links) == 0 {
		return nil, fmt.Errorf("discover %s: %w", seedURL, fetchErr)
	}
	return links, nil
}
