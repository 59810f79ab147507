// Package pdf provides the PDF driven adapters: native text-layer
// extraction, page rasterisation for OCR, and one-shot conversions to
// document and workbook formats.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure NativeExtractor implements the interface.
var _ driven.PDFTextExtractor = (*NativeExtractor)(nil)

// NativeExtractor reads the embedded text layer of a PDF. Scanned
// documents have no text layer and report domain.ErrNoTextLayer.
type NativeExtractor struct{}

// NewNativeExtractor creates the extractor.
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// NativeText parses the PDF pages for embedded text.
func (e *NativeExtractor) NativeText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNoTextLayer, err)
	}

	text, err := io.ReadAll(textReader)
	if err != nil {
		return "", fmt.Errorf("read text layer: %w", err)
	}
	if len(text) == 0 {
		return "", domain.ErrNoTextLayer
	}
	return string(text), nil
}
