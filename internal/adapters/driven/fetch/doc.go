// Package fetch implements the page fetcher with its fallback chain:
// a plain HTTP fetch parsed with goquery, a headless-browser render
// for script-driven pages, and OCR over content images. Requests are
// paced by a randomised rate limiter to avoid hammering crawled sites.
package fetch
