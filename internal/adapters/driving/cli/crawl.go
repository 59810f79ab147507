package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

var (
	crawlDepth        int
	crawlExportFormat string
	crawlText         bool
	crawlSave         bool
)

var crawlCmd = &cobra.Command{
	Use:   "crawl [url...]",
	Short: "Recursively crawl one or more sites",
	Long: `Crawls each site breadth-limited by depth, staying on the seed's
origin. Multiple seeds are grouped by domain and crawled concurrently;
results are bucketed per domain.

Depth 0 fetches only the seed page. PDF links are extracted in place
instead of being followed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().IntVarP(&crawlDepth, "depth", "d", domain.DefaultMaxDepth, "maximum crawl depth")
	crawlCmd.Flags().StringVarP(&crawlExportFormat, "export", "e", "", "export format (json, csv, text, xlsx, docx)")
	crawlCmd.Flags().BoolVar(&crawlText, "text", false, "write a text export with an AI-rewritten summary")
	crawlCmd.Flags().BoolVar(&crawlSave, "save", false, "save crawled text to the archive")
	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	if crawlService == nil {
		return errors.New("crawl service not configured")
	}

	opts := domain.CrawlOptions{MaxDepth: crawlDepth}
	buckets, err := crawlService.CrawlAll(cmd.Context(), args, opts)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}
	if len(buckets) == 0 {
		return errors.New("no valid URLs to crawl")
	}

	// Stable output order.
	domains := make([]string, 0, len(buckets))
	for d := range buckets {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	for _, d := range domains {
		bucket := buckets[d]
		cmd.Printf("%s: %d pages, %d characters\n", d, countPages(bucket.Pages), len(bucket.Text))

		if crawlSave {
			if archiveStore == nil {
				return errors.New("archive store not configured")
			}
			if err := archiveStore.SaveBucket(cmd.Context(), bucket); err != nil {
				return fmt.Errorf("saving %s: %w", d, err)
			}
			cmd.Printf("Saved %s to archive\n", d)
		}

		if crawlExportFormat != "" || crawlText {
			if err := exportRecords(cmd, "https://"+d, bucket.Pages, crawlExportFormat, crawlText); err != nil {
				return err
			}
		}
	}

	return nil
}

func countPages(records []*domain.PageRecord) int {
	n := 0
	for _, rec := range records {
		n += len(rec.Flatten())
	}
	return n
}
