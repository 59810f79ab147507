// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): page fetching, rendering, OCR, PDF
// handling, AI services, job search, exports and storage.
package driven
