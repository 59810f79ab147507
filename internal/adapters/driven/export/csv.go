package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure CSVExporter implements the interface.
var _ driven.Exporter = (*CSVExporter)(nil)

// csvHeader is the flattened row layout.
var csvHeader = []string{"url", "title", "headings", "content", "error"}

// CSVExporter flattens the record trees into one row per page.
type CSVExporter struct{}

// Format returns "csv".
func (e *CSVExporter) Format() string { return "csv" }

// Export writes the records and returns the created file path.
func (e *CSVExporter) Export(_ context.Context, dir string, records []*domain.PageRecord) (string, error) {
	if len(records) == 0 {
		return "", domain.ErrInvalidInput
	}

	path := filepath.Join(dir, RandomBaseName(records[0].URL)+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, root := range records {
		for _, rec := range root.Flatten() {
			row := []string{
				rec.URL,
				rec.Title,
				flattenHeadings(rec.Headings),
				rec.Content,
				rec.Error,
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("write row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush export: %w", err)
	}
	return path, nil
}

// flattenHeadings joins all heading texts, level-tagged, into one cell.
func flattenHeadings(headings map[string][]string) string {
	var parts []string
	for _, level := range []string{"h1", "h2", "h3"} {
		for _, text := range headings[level] {
			parts = append(parts, level+": "+text)
		}
	}
	return strings.Join(parts, " | ")
}
