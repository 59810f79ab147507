package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

var (
	jobsLocation string
	jobsCount    int
	jobsJSON     bool
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Job search commands",
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search [keywords]",
	Short: "Search job listings",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsSearch,
}

var jobsDetailCmd = &cobra.Command{
	Use:   "detail [job-id]",
	Short: "Show one job listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsDetail,
}

func init() {
	jobsSearchCmd.Flags().StringVarP(&jobsLocation, "location", "l", "", "restrict results to a location")
	jobsSearchCmd.Flags().IntVarP(&jobsCount, "count", "n", domain.DefaultJobCount, "number of listings to return")
	jobsSearchCmd.Flags().BoolVar(&jobsJSON, "json", false, "output listings as JSON")
	jobsCmd.AddCommand(jobsSearchCmd)
	jobsCmd.AddCommand(jobsDetailCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsSearch(cmd *cobra.Command, args []string) error {
	if jobService == nil {
		return errors.New("job service not configured")
	}
	if !jobService.Available() {
		return errors.New("job search is not configured; set the LinkedIn environment variables")
	}

	query := domain.JobQuery{
		Keywords: args[0],
		Location: jobsLocation,
		Count:    jobsCount,
	}

	result, err := jobService.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("job search failed: %w", err)
	}

	if jobsJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal listings: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(result.Listings) == 0 {
		cmd.Println("No listings found.")
		return nil
	}

	cmd.Printf("Found %d listings\n\n", len(result.Listings))
	for i := range result.Listings {
		listing := &result.Listings[i]
		listed := time.UnixMilli(listing.ListedAt).Format("2006-01-02")
		cmd.Printf("  [%s] %s\n", listing.ID, listing.Title)
		cmd.Printf("      %s - %s (listed %s)\n", listing.CompanyName, listing.Location.Name, listed)
	}

	return nil
}

func runJobsDetail(cmd *cobra.Command, args []string) error {
	if jobService == nil {
		return errors.New("job service not configured")
	}
	if !jobService.Available() {
		return errors.New("job search is not configured; set the LinkedIn environment variables")
	}

	listing, err := jobService.Detail(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching job detail: %w", err)
	}

	cmd.Printf("%s\n", listing.Title)
	cmd.Printf("Company:  %s\n", listing.CompanyName)
	cmd.Printf("Location: %s\n", listing.Location.Name)
	if listing.EmploymentStatus != "" {
		cmd.Printf("Type:     %s\n", listing.EmploymentStatus)
	}
	if listing.ApplyURL != "" {
		cmd.Printf("Apply:    %s\n", listing.ApplyURL)
	}
	cmd.Println()
	cmd.Println(listing.Description)

	return nil
}
