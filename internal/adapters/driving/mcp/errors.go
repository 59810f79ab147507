// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants crawl sites and ask questions about crawled
// content through the standard tool-calling protocol.
package mcp

import "errors"

// ErrMissingCrawlService is returned when the crawl service is not provided.
var ErrMissingCrawlService = errors.New("mcp: crawl service is required")
