package driven

import (
	"context"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// Exporter writes crawl results to a local file in one format.
// Implementations exist for JSON, CSV, plain text, spreadsheet
// workbooks and word-processor documents.
type Exporter interface {
	// Format returns the short format name ("json", "csv", ...).
	Format() string

	// Export writes the records and returns the created file path.
	// Filenames are randomized or timestamped inside dir.
	Export(ctx context.Context, dir string, records []*domain.PageRecord) (string, error)
}
