package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidURL indicates a URL could not be parsed or lacks a host.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Features requiring completion calls (path analysis, chat, rewrite)
	// are disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Retrieval degrades to returning nothing.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrNotConfigured indicates an integration is missing credentials.
	// The capability is reported unavailable rather than attempted.
	ErrNotConfigured = errors.New("integration not configured")

	// ErrNoTextLayer indicates a PDF carried no usable native text and
	// the caller should fall back to OCR.
	ErrNoTextLayer = errors.New("no usable text layer")

	// ErrPoolExhausted indicates no browser debug port is free.
	ErrPoolExhausted = errors.New("port pool exhausted")
)
