package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

var (
	scrapeExportFormat string
	scrapeText         bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Extract a single page",
	Long: `Extracts the text content of one page without following links.
Falls back to browser rendering for JavaScript-heavy pages and to OCR
for text embedded in images.`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeExportFormat, "export", "e", "", "export format (json, csv, text, xlsx, docx)")
	scrapeCmd.Flags().BoolVar(&scrapeText, "text", false, "write a text export with an AI-rewritten summary")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	if scrapeService == nil {
		return errors.New("scrape service not configured")
	}

	url := args[0]
	record, err := scrapeService.Scrape(cmd.Context(), url)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	if scrapeExportFormat != "" || scrapeText {
		return exportRecords(cmd, url, []*domain.PageRecord{record}, scrapeExportFormat, scrapeText)
	}

	cmd.Println(record.Text())
	return nil
}

// exportRecords writes records in the requested format and/or as a
// text export with the rewritten summary beside it.
func exportRecords(cmd *cobra.Command, seedURL string, records []*domain.PageRecord, format string, text bool) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	if format != "" {
		path, err := exportService.Export(cmd.Context(), format, records)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		cmd.Printf("Exported to %s\n", path)
	}

	if text {
		var combined string
		for i, rec := range records {
			if i > 0 {
				combined += "\n\n"
			}
			combined += rec.Text()
		}
		mainPath, summaryPath, err := exportService.ExportText(cmd.Context(), seedURL, combined)
		if err != nil {
			return fmt.Errorf("text export failed: %w", err)
		}
		cmd.Printf("Exported to %s\n", mainPath)
		cmd.Printf("Summary written to %s\n", summaryPath)
	}

	return nil
}
