package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// Ensure PDFExtract implements the interface.
var _ driving.PDFService = (*PDFExtract)(nil)

// Native-text acceptance heuristics: the extracted string must be
// longer than minNativeChars with an alphanumeric ratio above
// minAlnumRatio, otherwise the OCR stage runs.
const (
	minNativeChars  = 50
	minAlnumRatio   = 0.1
	rasterDPI       = 300
	downloadTimeout = 30 * time.Second
)

// downloadUserAgent mimics a desktop browser for PDF downloads.
const downloadUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"

// PDFExtract obtains text from PDF resources with a two-stage
// fallback: native text layer, then OCR over rasterized pages.
type PDFExtract struct {
	native    driven.PDFTextExtractor
	raster    driven.PDFRasteriser
	ocr       driven.OCREngine
	converter driven.PDFConverter
	client    *http.Client
	languages []string
}

// NewPDFExtract creates the extraction service. The OCR engine and
// rasteriser may be nil; extraction then stops after the native stage.
func NewPDFExtract(
	native driven.PDFTextExtractor,
	raster driven.PDFRasteriser,
	ocr driven.OCREngine,
	converter driven.PDFConverter,
	settings domain.Settings,
) *PDFExtract {
	languages := settings.OCRLanguages
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &PDFExtract{
		native:    native,
		raster:    raster,
		ocr:       ocr,
		converter: converter,
		client:    &http.Client{Timeout: downloadTimeout},
		languages: languages,
	}
}

// SetHTTPClient overrides the download client.
func (p *PDFExtract) SetHTTPClient(client *http.Client) {
	if client != nil {
		p.client = client
	}
}

// ExtractURL downloads a PDF and extracts its text.
func (p *PDFExtract) ExtractURL(ctx context.Context, url string) (string, error) {
	url = domain.NormalizeURL(url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", downloadUserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download PDF: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download PDF: status %d", resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read PDF body: %w", err)
	}
	return p.ExtractBytes(ctx, pdf)
}

// ExtractFile extracts text from a local PDF file.
func (p *PDFExtract) ExtractFile(ctx context.Context, path string) (string, error) {
	pdf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read PDF file: %w", err)
	}
	return p.ExtractBytes(ctx, pdf)
}

// ExtractBytes runs the native-then-OCR fallback chain over in-memory
// PDF content.
func (p *PDFExtract) ExtractBytes(ctx context.Context, pdf []byte) (string, error) {
	if len(pdf) == 0 {
		return "", domain.ErrInvalidInput
	}

	logger.Stage("native text layer", fmt.Sprintf("%d bytes", len(pdf)))
	text, err := p.native.NativeText(ctx, pdf)
	if err == nil {
		text = strings.TrimSpace(text)
		if len(text) > minNativeChars && isTextValid(text) {
			logger.Debug("Native PDF extraction accepted (%d chars)", len(text))
			return text, nil
		}
		logger.Debug("Native PDF extraction insufficient (%d chars), falling back to OCR", len(text))
	} else {
		logger.Debug("Native PDF extraction failed: %v", err)
	}

	if p.raster == nil || p.ocr == nil {
		if err != nil {
			return "", fmt.Errorf("native extraction failed and OCR unavailable: %w", err)
		}
		return text, nil
	}
	return p.extractOCR(ctx, pdf)
}

// extractOCR rasterizes every page at 300 DPI and concatenates the
// per-page OCR text.
func (p *PDFExtract) extractOCR(ctx context.Context, pdf []byte) (string, error) {
	logger.Stage("raster OCR", fmt.Sprintf("%d bytes at %d DPI", len(pdf), rasterDPI))
	pages, err := p.raster.Rasterise(ctx, pdf, rasterDPI)
	if err != nil {
		return "", fmt.Errorf("rasterise PDF: %w", err)
	}

	var b strings.Builder
	for i, page := range pages {
		text, err := p.ocr.Recognize(ctx, page, p.languages)
		if err != nil {
			// One unreadable page degrades that page only.
			logger.Warn("OCR failed on page %d: %v", i+1, err)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// ConvertToDocument converts a PDF to a word-processor document.
// One-shot; not part of the extraction fallback chain.
func (p *PDFExtract) ConvertToDocument(ctx context.Context, pdfPath, docPath string) error {
	if p.converter == nil {
		return domain.ErrNotConfigured
	}
	return p.converter.ToDocument(ctx, pdfPath, docPath)
}

// ConvertTables extracts tabular text into a spreadsheet workbook.
func (p *PDFExtract) ConvertTables(ctx context.Context, pdfPath, workbookPath string) error {
	if p.converter == nil {
		return domain.ErrNotConfigured
	}
	return p.converter.TablesToWorkbook(ctx, pdfPath, workbookPath)
}

// isTextValid checks the alphanumeric-character ratio of extracted
// text. Accepts text with lots of spacing or punctuation as long as a
// minimal proportion is alphanumeric.
func isTextValid(text string) bool {
	if text == "" {
		return false
	}
	alnum := 0
	for _, r := range text {
		if ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			alnum++
		}
	}
	ratio := float64(alnum) / float64(len([]rune(text)))
	return ratio > minAlnumRatio
}
