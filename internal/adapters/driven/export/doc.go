// Package export writes crawl results to local files. One exporter
// per format (JSON, CSV, plain text, spreadsheet workbook,
// word-processor document), plus the text-with-summary export that
// saves an AI-rewritten companion file beside the raw text.
package export
