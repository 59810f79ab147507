package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"

	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure Rasteriser implements the interface.
var _ driven.PDFRasteriser = (*Rasteriser)(nil)

// Rasteriser renders PDF pages to PNG images with MuPDF.
type Rasteriser struct{}

// NewRasteriser creates the rasteriser.
func NewRasteriser() *Rasteriser {
	return &Rasteriser{}
}

// Rasterise renders every page at the given DPI.
func (r *Rasteriser) Rasterise(ctx context.Context, data []byte, dpi int) ([][]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([][]byte, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i+1, err)
		}
		pages = append(pages, buf.Bytes())
	}
	return pages, nil
}
