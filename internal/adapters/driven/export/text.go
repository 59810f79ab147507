package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure TextExporter implements the interface.
var _ driven.Exporter = (*TextExporter)(nil)

// TextExporter writes the aggregated page text of every record tree.
type TextExporter struct{}

// Format returns "text".
func (e *TextExporter) Format() string { return "text" }

// Export writes the records and returns the created file path.
func (e *TextExporter) Export(_ context.Context, dir string, records []*domain.PageRecord) (string, error) {
	if len(records) == 0 {
		return "", domain.ErrInvalidInput
	}

	path := filepath.Join(dir, RandomBaseName(records[0].URL)+".txt")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	defer f.Close()

	for _, rec := range records {
		if _, err := f.WriteString(rec.Text()); err != nil {
			return "", fmt.Errorf("write export: %w", err)
		}
	}
	return path, nil
}
