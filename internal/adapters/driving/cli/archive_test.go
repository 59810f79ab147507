package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

func TestArchiveListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"archive", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Archive is empty.")
}

func TestArchiveListCmd_ListsDomains(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	archiveStore = &mockArchiveStore{
		listing: []driven.ArchivedBucket{
			{Domain: "example.com", Size: 1234, CrawledAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"archive", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "example.com")
	assert.Contains(t, buf.String(), "1234 characters")
	assert.Contains(t, buf.String(), "2025-06-01")
}
