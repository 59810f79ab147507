package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export helpers",
}

var exportFormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available export formats",
	RunE:  runExportFormats,
}

func init() {
	exportCmd.AddCommand(exportFormatsCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportFormats(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}
	for _, format := range exportService.Formats() {
		cmd.Println(format)
	}
	return nil
}
