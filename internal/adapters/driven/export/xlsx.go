package export

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure XLSXExporter implements the interface.
var _ driven.Exporter = (*XLSXExporter)(nil)

// XLSXExporter flattens the record trees into a spreadsheet workbook,
// one row per page.
type XLSXExporter struct{}

// Format returns "xlsx".
func (e *XLSXExporter) Format() string { return "xlsx" }

// Export writes the records and returns the created file path.
func (e *XLSXExporter) Export(_ context.Context, dir string, records []*domain.PageRecord) (string, error) {
	if len(records) == 0 {
		return "", domain.ErrInvalidInput
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return "", fmt.Errorf("set header: %w", err)
		}
	}

	row := 2
	for _, root := range records {
		for _, rec := range root.Flatten() {
			values := []string{
				rec.URL,
				rec.Title,
				flattenHeadings(rec.Headings),
				rec.Content,
				rec.Error,
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return "", fmt.Errorf("cell name: %w", err)
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return "", fmt.Errorf("set cell: %w", err)
				}
			}
			row++
		}
	}

	path := filepath.Join(dir, RandomBaseName(records[0].URL)+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save export: %w", err)
	}
	return path, nil
}
