package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.PDFConverter = (*Converter)(nil)

// Converter performs the one-shot PDF conversions. Both conversions
// work from the PDF's text layer; scanned documents should go through
// the OCR extraction path first.
type Converter struct {
	extractor driven.PDFTextExtractor
}

// NewConverter creates a converter over the given text extractor.
func NewConverter(extractor driven.PDFTextExtractor) *Converter {
	return &Converter{extractor: extractor}
}

// ToDocument converts a PDF file to a word-processor document, one
// paragraph per text line.
func (c *Converter) ToDocument(ctx context.Context, pdfPath, docPath string) error {
	text, err := c.extractText(ctx, pdfPath)
	if err != nil {
		return err
	}

	doc := docx.New().WithDefaultTheme()
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			doc.AddParagraph().AddText(line)
		}
	}

	out, err := os.Create(docPath)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	defer out.Close()

	if _, err := doc.WriteTo(out); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// TablesToWorkbook extracts whitespace-delimited tabular text into a
// spreadsheet workbook, one text line per row.
func (c *Converter) TablesToWorkbook(ctx context.Context, pdfPath, workbookPath string) error {
	text, err := c.extractText(ctx, pdfPath)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	row := 1
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		for col, field := range splitFields(line) {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, field); err != nil {
				return fmt.Errorf("set cell: %w", err)
			}
		}
		row++
	}

	if err := f.SaveAs(workbookPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// extractText reads a PDF file and returns its text layer.
func (c *Converter) extractText(ctx context.Context, pdfPath string) (string, error) {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return "", fmt.Errorf("read PDF: %w", err)
	}
	text, err := c.extractor.NativeText(ctx, data)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}

// splitFields splits a table line into cells. Runs of two or more
// spaces and tabs delimit cells; single spaces stay inside one cell.
func splitFields(line string) []string {
	line = strings.ReplaceAll(line, "\t", "  ")
	var fields []string
	for _, part := range strings.Split(line, "  ") {
		if part = strings.TrimSpace(part); part != "" {
			fields = append(fields, part)
		}
	}
	return fields
}
