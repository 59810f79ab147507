package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// Ensure Service implements the interface.
var _ driving.ExportService = (*Service)(nil)

// rewriteSystemPrompt steers the summary rewrite.
const rewriteSystemPrompt = "You are a helpful assistant that rewrites text in clear, grammatical English."

// summaryPrefix marks the rewritten companion file of a text export.
const summaryPrefix = "Sum_"

// Service dispatches exports to per-format exporters and implements
// the text-with-summary export. The LLM is optional; without it the
// summary file receives the original text.
type Service struct {
	dir       string
	exporters map[string]driven.Exporter
	llm       driven.LLMService
}

// NewService creates the export service writing into dir.
func NewService(dir string, llm driven.LLMService) *Service {
	s := &Service{
		dir:       dir,
		exporters: make(map[string]driven.Exporter),
		llm:       llm,
	}
	for _, e := range []driven.Exporter{
		&JSONExporter{},
		&CSVExporter{},
		&TextExporter{},
		&XLSXExporter{},
		&DocxExporter{},
	} {
		s.exporters[e.Format()] = e
	}
	return s
}

// Formats lists the available export format names, sorted.
func (s *Service) Formats() []string {
	formats := make([]string, 0, len(s.exporters))
	for name := range s.exporters {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}

// Export writes records in the named format and returns the file path.
func (s *Service) Export(ctx context.Context, format string, records []*domain.PageRecord) (string, error) {
	exporter, ok := s.exporters[strings.ToLower(format)]
	if !ok {
		return "", fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidInput, format)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	return exporter.Export(ctx, s.dir, records)
}

// ExportText writes the raw text plus a clear-English rewrite saved
// beside it under the summary prefix. The rewrite degrades to the
// original text when the model is unavailable or fails.
func (s *Service) ExportText(ctx context.Context, seedURL, text string) (string, string, error) {
	if strings.TrimSpace(text) == "" {
		return "", "", domain.ErrInvalidInput
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create export dir: %w", err)
	}

	base := RandomBaseName(seedURL)
	mainPath := filepath.Join(s.dir, base+".txt")
	summaryPath := filepath.Join(s.dir, summaryPrefix+base+".txt")

	if err := os.WriteFile(mainPath, []byte(text), 0o644); err != nil {
		return "", "", fmt.Errorf("write text export: %w", err)
	}

	if err := os.WriteFile(summaryPath, []byte(s.rewrite(ctx, text)), 0o644); err != nil {
		return "", "", fmt.Errorf("write summary export: %w", err)
	}
	return mainPath, summaryPath, nil
}

// rewrite asks the model for a clear-English version of text, falling
// back to the input on any failure.
func (s *Service) rewrite(ctx context.Context, text string) string {
	if s.llm == nil {
		return text
	}

	prompt := "Please rewrite the following text in clear, concise, and grammatically " +
		"correct English:\n\n" + text + "\n\nRewritten version:"

	reply, err := s.llm.Complete(ctx, []domain.ChatTurn{
		{Role: domain.RoleSystem, Content: rewriteSystemPrompt},
		{Role: domain.RoleUser, Content: prompt},
	}, driven.CompleteOptions{
		Temperature: 0.5,
		MaxTokens:   10240,
	})
	if err != nil {
		logger.Warn("Clear-English rewrite failed: %v", err)
		return text
	}
	if reply = strings.TrimSpace(reply); reply == "" {
		return text
	}
	return reply
}
