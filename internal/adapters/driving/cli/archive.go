package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect saved crawls",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived domains",
	RunE:  runArchiveList,
}

func init() {
	archiveCmd.AddCommand(archiveListCmd)
	rootCmd.AddCommand(archiveCmd)
}

func runArchiveList(cmd *cobra.Command, _ []string) error {
	if archiveStore == nil {
		return errors.New("archive store not configured")
	}

	buckets, err := archiveStore.ListBuckets(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing archive: %w", err)
	}

	if len(buckets) == 0 {
		cmd.Println("Archive is empty.")
		return nil
	}

	for _, b := range buckets {
		cmd.Printf("  %s  %d characters  %s\n", b.Domain, b.Size, b.CrawledAt.Format("2006-01-02 15:04"))
	}

	return nil
}
