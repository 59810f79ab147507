package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	DefaultTimeout         = 15 * time.Second
	DefaultMinContentChars = 100
	DefaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
)

// Config holds configuration for the fetcher.
type Config struct {
	// Timeout bounds one HTTP request (default: 15s).
	Timeout time.Duration

	// UserAgent is sent on every request (default: a desktop browser).
	UserAgent string

	// MinContentChars is the extracted-text length below which the
	// rendered fallback runs (default: 100).
	MinContentChars int

	// MinDelay and MaxDelay bound the request pacing.
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Fetcher extracts structured page records with a three-stage fallback
// chain: static HTTP fetch, headless-browser render, image OCR.
// Renderer and OCR engine are optional; missing stages are skipped.
type Fetcher struct {
	client     *http.Client
	limiter    *RateLimiter
	userAgent  string
	minContent int

	renderer driven.Renderer
	ocr      driven.OCREngine
	ocrLangs []string
}

// New creates a fetcher.
func New(cfg Config) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MinContentChars == 0 {
		cfg.MinContentChars = DefaultMinContentChars
	}
	return &Fetcher{
		client:     &http.Client{Timeout: cfg.Timeout},
		limiter:    NewRateLimiter(cfg.MinDelay, cfg.MaxDelay),
		userAgent:  cfg.UserAgent,
		minContent: cfg.MinContentChars,
	}
}

// SetRenderer enables the headless-browser fallback stage.
func (f *Fetcher) SetRenderer(r driven.Renderer) {
	f.renderer = r
}

// SetOCR enables the image-OCR stage with the given language set.
func (f *Fetcher) SetOCR(engine driven.OCREngine, languages []string) {
	f.ocr = engine
	f.ocrLangs = languages
}

// Fetch extracts one page, degrading through the fallback chain.
// Failures become inline error text on the record; the error return is
// reserved for context cancellation.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*domain.PageRecord, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	logger.Stage("static fetch", pageURL)
	html, fetchErr := f.get(ctx, pageURL)

	var rec *domain.PageRecord
	if fetchErr == nil {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			fetchErr = fmt.Errorf("parse html: %w", err)
		} else {
			rec = extractRecord(pageURL, doc)
		}
	}

	// Stage 2: script-rendered pages yield little static text.
	if f.renderer != nil && (fetchErr != nil || len(rec.Content) < f.minContent) {
		logger.Stage("rendered fetch", pageURL)
		if rendered, err := f.renderer.Render(ctx, pageURL); err != nil {
			logger.Warn("Rendered fetch failed for %s: %v", pageURL, err)
		} else if doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered)); err == nil {
			if r2 := extractRecord(pageURL, doc); rec == nil || len(r2.Content) > len(rec.Content) {
				rec = r2
				html = rendered
				fetchErr = nil
			}
		}
	}

	if rec == nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &domain.PageRecord{URL: pageURL, Error: fetchErr.Error()}, nil
	}

	// Stage 3: recover text locked inside content images.
	if f.ocr != nil && html != "" {
		logger.Stage("image OCR", pageURL)
		if imgText := f.imageText(ctx, pageURL, html); imgText != "" {
			rec.Content = strings.TrimSpace(rec.Content + "\n\n" + imageSectionHeader + "\n" + imgText)
		}
	}

	return rec, nil
}

// Links returns the resolved absolute anchor targets on the page, in
// document order, duplicates preserved.
func (f *Fetcher) Links(ctx context.Context, pageURL string) ([]string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	html, err := f.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if resolved := resolveLink(base, href); resolved != "" {
			links = append(links, resolved)
		}
	})
	return links, nil
}

// get performs one paced HTTP GET and returns the body.
func (f *Fetcher) get(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}

// resolveLink turns an anchor href into a crawlable absolute URL,
// dropping fragments and non-navigational schemes.
func resolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}
