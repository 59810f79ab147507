package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure JSONExporter implements the interface.
var _ driven.Exporter = (*JSONExporter)(nil)

// JSONExporter writes the record trees as indented JSON, preserving
// the nested sub-page structure.
type JSONExporter struct{}

// Format returns "json".
func (e *JSONExporter) Format() string { return "json" }

// Export writes the records and returns the created file path.
func (e *JSONExporter) Export(_ context.Context, dir string, records []*domain.PageRecord) (string, error) {
	if len(records) == 0 {
		return "", domain.ErrInvalidInput
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal records: %w", err)
	}

	path := filepath.Join(dir, RandomBaseName(records[0].URL)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
