package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Ensure DocxExporter implements the interface.
var _ driven.Exporter = (*DocxExporter)(nil)

// DocxExporter writes the record trees as a word-processor document,
// one titled section per page.
type DocxExporter struct{}

// Format returns "docx".
func (e *DocxExporter) Format() string { return "docx" }

// Export writes the records and returns the created file path.
func (e *DocxExporter) Export(_ context.Context, dir string, records []*domain.PageRecord) (string, error) {
	if len(records) == 0 {
		return "", domain.ErrInvalidInput
	}

	doc := docx.New().WithDefaultTheme()
	for _, root := range records {
		for _, rec := range root.Flatten() {
			heading := rec.Title
			if heading == "" {
				heading = rec.URL
			}
			doc.AddParagraph().AddText(heading).Size("28")
			doc.AddParagraph().AddText(rec.URL)

			if rec.IsError() {
				doc.AddParagraph().AddText("Error: " + rec.Error)
				continue
			}
			for _, line := range strings.Split(rec.Content, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					doc.AddParagraph().AddText(line)
				}
			}
		}
	}

	path := filepath.Join(dir, RandomBaseName(records[0].URL)+".docx")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	defer out.Close()

	if _, err := doc.WriteTo(out); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
