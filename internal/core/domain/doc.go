// Package domain contains the core business entities for Scrawl.
// These types have no dependencies on infrastructure and represent
// the vocabulary of the scraping pipeline: pages, chunks, conversations
// and job listings.
package domain
