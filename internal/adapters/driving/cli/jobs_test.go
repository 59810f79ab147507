package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [keywords]", jobsSearchCmd.Use)
}

func TestJobsSearchCmd_ListsResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"jobs", "search", "software engineer"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Found 1 listings")
	assert.Contains(t, buf.String(), "Software Engineer")
	assert.Contains(t, buf.String(), "Mock Company 2")
}

func TestJobsSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"jobs", "search", "--json", "software engineer"})
	defer func() {
		rootCmd.SetArgs(nil)
		jobsJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"id\": \"mock-job-1\"")
}

func TestJobsSearchCmd_NotAvailable(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	jobService = &mockJobService{available: false}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"jobs", "search", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestJobsDetailCmd_ShowsListing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"jobs", "detail", "mock-job-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Software Engineer")
	assert.Contains(t, buf.String(), "Role description.")
}

func TestJobsDetailCmd_ServiceNotConfigured(t *testing.T) {
	oldService := jobService
	jobService = nil
	defer func() {
		jobService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"jobs", "detail", "mock-job-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job service not configured")
}
