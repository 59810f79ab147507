// Package cli implements the command-line interface. Commands depend
// on driving ports only; main wires the concrete services in through
// the Set* functions before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// version is set by main at startup.
var version = "dev"

// Injected services. Commands check for nil and fail with a clear
// message instead of panicking when a service was not wired.
var (
	scrapeService    driving.ScrapeService
	crawlService     driving.CrawlService
	pathService      driving.PathService
	chatService      driving.ChatService
	retrievalService driving.RetrievalService
	pdfService       driving.PDFService
	jobService       driving.JobService
	exportService    driving.ExportService
	archiveStore     driven.ArchiveStore
	configStore      driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "scrawl",
	Short: "Web scraping and document extraction toolkit",
	Long: `Scrawl crawls websites recursively, extracts text from pages and
PDFs (with browser rendering and OCR fallbacks), and supports
retrieval-augmented chat over the crawled content.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetScrapeService injects the single-page scrape service.
func SetScrapeService(s driving.ScrapeService) { scrapeService = s }

// SetCrawlService injects the recursive crawl service.
func SetCrawlService(s driving.CrawlService) { crawlService = s }

// SetPathService injects the path prioritization service.
func SetPathService(s driving.PathService) { pathService = s }

// SetChatService injects the retrieval-augmented chat service.
func SetChatService(s driving.ChatService) { chatService = s }

// SetRetrievalService injects the retrieval query service.
func SetRetrievalService(s driving.RetrievalService) { retrievalService = s }

// SetPDFService injects the PDF extraction service.
func SetPDFService(s driving.PDFService) { pdfService = s }

// SetJobService injects the job search service.
func SetJobService(s driving.JobService) { jobService = s }

// SetExportService injects the export service.
func SetExportService(s driving.ExportService) { exportService = s }

// SetArchiveStore injects the crawl archive.
func SetArchiveStore(s driven.ArchiveStore) { archiveStore = s }

// SetConfigStore injects the persistent configuration store.
func SetConfigStore(s driven.ConfigStore) { configStore = s }
