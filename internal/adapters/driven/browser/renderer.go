// Package browser renders script-driven pages with a headless Chrome
// instance driven over the DevTools protocol.
package browser

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Default configuration values.
const (
	DefaultSettleTime = 5 * time.Second
	DefaultTimeout    = 60 * time.Second
	DefaultPoolSize   = 3
	DefaultPortStart  = 9222
	DefaultPortEnd    = 9322
)

// Config holds configuration for the renderer.
type Config struct {
	// SettleTime is how long to wait after navigation for scripts to
	// populate the DOM (default: 5s).
	SettleTime time.Duration

	// Timeout bounds one full render (default: 60s).
	Timeout time.Duration

	// PoolSize caps concurrent browser instances (default: 3).
	PoolSize int

	// PortStart and PortEnd bound the debug-port probe range.
	PortStart int
	PortEnd   int
}

// Renderer obtains rendered DOM snapshots from a headless browser.
// Each render claims a debug port from the pool, launches a browser
// bound to it, and releases the port when the browser exits.
type Renderer struct {
	pool       *PortPool
	settleTime time.Duration
	timeout    time.Duration
}

// New creates a renderer and probes its port pool.
func New(cfg Config) (*Renderer, error) {
	if cfg.SettleTime == 0 {
		cfg.SettleTime = DefaultSettleTime
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PoolSize == 0 {
		cfg.PoolSize = DefaultPoolSize
	}
	if cfg.PortStart == 0 {
		cfg.PortStart = DefaultPortStart
	}
	if cfg.PortEnd == 0 {
		cfg.PortEnd = DefaultPortEnd
	}

	pool, err := NewPortPool(cfg.PortStart, cfg.PortEnd, cfg.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("create port pool: %w", err)
	}
	return &Renderer{
		pool:       pool,
		settleTime: cfg.SettleTime,
		timeout:    cfg.Timeout,
	}, nil
}

// Render navigates to url, waits the settle time and returns the
// rendered HTML.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	port, err := r.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer r.pool.Release(port)

	logger.Debug("Rendering %s on debug port %d", url, port)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("remote-debugging-port", strconv.Itoa(port)),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	var html string
	err = chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(r.settleTime),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return html, nil
}

// Close releases the renderer. Browser processes are per-render and
// already reaped by their context cancel functions.
func (r *Renderer) Close() error {
	return nil
}
