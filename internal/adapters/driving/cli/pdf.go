package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

var (
	pdfConvertDoc      string
	pdfConvertWorkbook string
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "PDF extraction and conversion",
}

var pdfExtractCmd = &cobra.Command{
	Use:   "extract [url-or-path]",
	Short: "Extract text from a PDF",
	Long: `Extracts text from a PDF given as a URL or a local path. Uses the
native text layer when present and falls back to rasterizing pages
and running OCR for scanned documents.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFExtract,
}

var pdfConvertCmd = &cobra.Command{
	Use:   "convert [path]",
	Short: "Convert a PDF to other document formats",
	Long: `Converts a local PDF into a word-processor document and/or a
spreadsheet of its tabular content. At least one output flag is
required.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFConvert,
}

var pdfWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and extract dropped PDFs",
	Long: `Watches a directory and extracts the text of every PDF created in
it, writing a .txt file alongside each. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFWatch,
}

func init() {
	pdfConvertCmd.Flags().StringVar(&pdfConvertDoc, "doc", "", "write a .docx document to this path")
	pdfConvertCmd.Flags().StringVar(&pdfConvertWorkbook, "xlsx", "", "write an .xlsx workbook to this path")
	pdfCmd.AddCommand(pdfExtractCmd)
	pdfCmd.AddCommand(pdfConvertCmd)
	pdfCmd.AddCommand(pdfWatchCmd)
	rootCmd.AddCommand(pdfCmd)
}

func runPDFExtract(cmd *cobra.Command, args []string) error {
	if pdfService == nil {
		return errors.New("pdf service not configured")
	}

	target := args[0]
	var text string
	var err error
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		text, err = pdfService.ExtractURL(cmd.Context(), target)
	} else {
		text, err = pdfService.ExtractFile(cmd.Context(), target)
	}
	if err != nil {
		return fmt.Errorf("pdf extraction failed: %w", err)
	}

	cmd.Println(text)
	return nil
}

func runPDFConvert(cmd *cobra.Command, args []string) error {
	if pdfService == nil {
		return errors.New("pdf service not configured")
	}
	if pdfConvertDoc == "" && pdfConvertWorkbook == "" {
		return errors.New("at least one of --doc or --xlsx is required")
	}

	pdfPath := args[0]

	if pdfConvertDoc != "" {
		if err := pdfService.ConvertToDocument(cmd.Context(), pdfPath, pdfConvertDoc); err != nil {
			return fmt.Errorf("document conversion failed: %w", err)
		}
		cmd.Printf("Wrote %s\n", pdfConvertDoc)
	}

	if pdfConvertWorkbook != "" {
		if err := pdfService.ConvertTables(cmd.Context(), pdfPath, pdfConvertWorkbook); err != nil {
			return fmt.Errorf("table conversion failed: %w", err)
		}
		cmd.Printf("Wrote %s\n", pdfConvertWorkbook)
	}

	return nil
}

func runPDFWatch(cmd *cobra.Command, args []string) error {
	if pdfService == nil {
		return errors.New("pdf service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	cmd.Printf("Watching %s for PDFs (Ctrl+C to stop)\n", dir)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".pdf") {
				continue
			}
			if err := extractWatched(cmd, event.Name); err != nil {
				logger.Warn("extracting %s: %v", event.Name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

func extractWatched(cmd *cobra.Command, pdfPath string) error {
	text, err := pdfService.ExtractFile(cmd.Context(), pdfPath)
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".txt"
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return err
	}
	cmd.Printf("Extracted %s -> %s\n", pdfPath, outPath)
	return nil
}
