package driving

import "context"

// PDFService extracts text from PDF resources with a native-then-OCR
// fallback chain and exposes the auxiliary conversions.
type PDFService interface {
	// ExtractURL downloads a PDF and extracts its text.
	ExtractURL(ctx context.Context, url string) (string, error)

	// ExtractFile extracts text from a local PDF file.
	ExtractFile(ctx context.Context, path string) (string, error)

	// ExtractBytes extracts text from in-memory PDF content.
	ExtractBytes(ctx context.Context, pdf []byte) (string, error)

	// ConvertToDocument converts a PDF to a word-processor document.
	ConvertToDocument(ctx context.Context, pdfPath, docPath string) error

	// ConvertTables extracts tables into a spreadsheet workbook.
	ConvertTables(ctx context.Context, pdfPath, workbookPath string) error
}

