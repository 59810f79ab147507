package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [need] [url...]",
	Short: "Suggest relevant paths for an information need",
	Long: `Analyses each site's link structure and suggests the paths most
likely to answer the stated information need. Uses the configured
language model when available and falls back to keyword heuristics
otherwise.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	if pathService == nil {
		return errors.New("path service not configured")
	}

	need := args[0]
	sites := args[1:]

	suggestions, err := pathService.Prioritize(cmd.Context(), sites, need)
	if err != nil {
		return fmt.Errorf("path analysis failed: %w", err)
	}

	for _, sug := range suggestions {
		cmd.Printf("%s\n", sug.SiteURL)
		if sug.Analysis != "" {
			cmd.Printf("  Analysis: %s\n", sug.Analysis)
		}
		for _, u := range sug.URLs {
			cmd.Printf("  %s\n", u)
		}
		cmd.Println()
	}

	return nil
}
