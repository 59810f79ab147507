package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// Ensure Crawler implements the interfaces.
var (
	_ driving.CrawlService  = (*Crawler)(nil)
	_ driving.ScrapeService = (*Crawler)(nil)
)

// pdfTextSource extracts text from a PDF URL. Satisfied by PDFExtract;
// optional, nil disables the PDF short-circuit.
type pdfTextSource interface {
	ExtractURL(ctx context.Context, url string) (string, error)
}

// Crawler walks a site recursively, depth-bounded, visiting each
// same-origin URL at most once per invocation.
type Crawler struct {
	fetcher driven.PageFetcher
	pdf     pdfTextSource
}

// NewCrawler creates a crawler over the given fetcher.
func NewCrawler(fetcher driven.PageFetcher) *Crawler {
	return &Crawler{fetcher: fetcher}
}

// SetPDFExtractor enables the PDF short-circuit: crawl targets ending
// in .pdf are routed to PDF extraction instead of HTML parsing.
func (c *Crawler) SetPDFExtractor(pdf pdfTextSource) {
	c.pdf = pdf
}

// Scrape extracts a single page without recursion.
func (c *Crawler) Scrape(ctx context.Context, url string) (*domain.PageRecord, error) {
	url = domain.NormalizeURL(url)
	if domain.Host(url) == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidURL, url)
	}
	return c.fetcher.Fetch(ctx, url)
}

// Crawl walks the site rooted at seedURL and returns the record tree.
//
// The visited set is shared across the whole recursive call tree and
// grows monotonically, so the crawl terminates in at most the
// same-origin reachable page count, bounded further by depth.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, opts domain.CrawlOptions) (*domain.PageRecord, error) {
	seedURL = domain.NormalizeURL(seedURL)
	host := domain.Host(seedURL)
	if host == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidURL, seedURL)
	}

	depth := opts.MaxDepth
	if depth < 0 {
		depth = domain.DefaultMaxDepth
	}

	logger.Section("Crawl")
	logger.Info("Seed: %s, max depth: %d", seedURL, depth)

	visited := map[string]struct{}{seedURL: {}}
	rec := c.crawl(ctx, seedURL, host, 0, depth, visited)
	logger.Info("Crawl finished: %d pages visited", len(visited))
	return rec, ctx.Err()
}

// crawl extracts one page and recurses into its unvisited same-origin
// links. Fetch failures produce an error leaf and stop that branch.
func (c *Crawler) crawl(ctx context.Context, url, seedHost string, depth, maxDepth int, visited map[string]struct{}) *domain.PageRecord {
	if ctx.Err() != nil {
		return &domain.PageRecord{URL: url, Error: ctx.Err().Error()}
	}

	if c.pdf != nil && isPDFTarget(url) {
		return c.extractPDFLeaf(ctx, url)
	}

	rec, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return &domain.PageRecord{URL: url, Error: err.Error()}
	}
	if rec.IsError() {
		logger.Debug("Error leaf at %s: %s", url, rec.Error)
		return rec
	}

	if depth >= maxDepth {
		return rec
	}

	links, err := c.fetcher.Links(ctx, url)
	if err != nil {
		logger.Warn("Link extraction failed for %s: %v", url, err)
		return rec
	}

	// Pre-order marking: claim every survivor before recursing so
	// sibling branches cannot visit it again.
	var next []string
	for _, link := range links {
		if domain.Host(link) != seedHost {
			continue
		}
		if _, seen := visited[link]; seen {
			continue
		}
		visited[link] = struct{}{}
		next = append(next, link)
	}

	for _, link := range next {
		sub := c.crawl(ctx, link, seedHost, depth+1, maxDepth, visited)
		if sub != nil {
			rec.SubPages = append(rec.SubPages, sub)
		}
	}

	return rec
}

// extractPDFLeaf routes a PDF target to the PDF extraction path.
func (c *Crawler) extractPDFLeaf(ctx context.Context, url string) *domain.PageRecord {
	text, err := c.pdf.ExtractURL(ctx, url)
	if err != nil {
		return &domain.PageRecord{URL: url, Error: err.Error()}
	}
	return &domain.PageRecord{URL: url, Content: text}
}

// CrawlAll fans out one crawl-and-extract job per domain so the
// fallback-chain fetches of independent domains proceed in parallel.
// Within one domain's job, work is sequential and the visited set is
// scoped to that job alone.
func (c *Crawler) CrawlAll(ctx context.Context, urls []string, opts domain.CrawlOptions) (map[string]*domain.DomainBucket, error) {
	byDomain := make(map[string][]string)
	var order []string
	for _, raw := range urls {
		u := domain.NormalizeURL(raw)
		host := domain.Host(u)
		if host == "" {
			logger.Warn("Skipping invalid URL %q", raw)
			continue
		}
		if _, ok := byDomain[host]; !ok {
			order = append(order, host)
		}
		byDomain[host] = append(byDomain[host], u)
	}

	results := make(map[string]*domain.DomainBucket, len(order))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, host := range order {
		wg.Add(1)
		go func(host string, seeds []string) {
			defer wg.Done()
			bucket := c.crawlDomain(ctx, host, seeds, opts)
			mu.Lock()
			results[host] = bucket
			mu.Unlock()
		}(host, byDomain[host])
	}
	wg.Wait()

	return results, ctx.Err()
}

// crawlDomain runs the sequential per-domain job.
func (c *Crawler) crawlDomain(ctx context.Context, host string, seeds []string, opts domain.CrawlOptions) *domain.DomainBucket {
	bucket := &domain.DomainBucket{Domain: host, CrawledAt: time.Now()}
	var text strings.Builder

	for _, seed := range seeds {
		rec, err := c.Crawl(ctx, seed, opts)
		if err != nil && rec == nil {
			rec = &domain.PageRecord{URL: seed, Error: err.Error()}
		}
		bucket.Pages = append(bucket.Pages, rec)
		text.WriteString(rec.Text())
	}

	bucket.Text = text.String()
	return bucket
}

// isPDFTarget reports whether a URL points at a PDF resource.
func isPDFTarget(url string) bool {
	return strings.HasSuffix(strings.ToLower(url), ".pdf")
}
