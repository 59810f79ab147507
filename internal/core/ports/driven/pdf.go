package driven

import "context"

// PDFTextExtractor reads the native text layer of a PDF.
type PDFTextExtractor interface {
	// NativeText parses the PDF pages for embedded text. Returns
	// domain.ErrNoTextLayer when no text layer is present.
	NativeText(ctx context.Context, pdf []byte) (string, error)
}

// PDFRasteriser renders PDF pages to images for OCR.
type PDFRasteriser interface {
	// Rasterise renders every page at the given DPI and returns one
	// encoded image per page.
	Rasterise(ctx context.Context, pdf []byte, dpi int) ([][]byte, error)
}

// PDFConverter performs the auxiliary one-shot conversions. These are
// independent of the extraction fallback chain and have no retry
// logic.
type PDFConverter interface {
	// ToDocument converts a PDF file to a word-processor document.
	ToDocument(ctx context.Context, pdfPath, docPath string) error

	// TablesToWorkbook extracts tabular text into a spreadsheet
	// workbook.
	TablesToWorkbook(ctx context.Context, pdfPath, workbookPath string) error
}
