package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webpulse/webpulse/pkg/audit"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	score := 0.85
	rep := &audit.Report{
		URL:       "https://example.com",
		FetchedAt: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
		Categories: map[string]audit.CategoryResult{
			audit.CategoryPerformance: {ID: audit.CategoryPerformance, Title: "Performance", Score: &score},
		},
		Audits:         map[string]audit.AuditResult{},
		CategoryAudits: map[string][]string{},
	}

	path, err := store.Save("scan-123", rep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("reports", "scan-123.json"), path)

	// artifact exists on disk under the scan id
	_, err = os.Stat(filepath.Join(dir, "scan-123.json"))
	require.NoError(t, err)

	loaded, err := store.Load("scan-123")
	require.NoError(t, err)
	assert.Equal(t, rep.URL, loaded.URL)
	require.NotNil(t, loaded.Categories[audit.CategoryPerformance].Score)
	assert.InDelta(t, 0.85, *loaded.Categories[audit.CategoryPerformance].Score, 0.001)
}

func TestFileStore_LoadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("nope")
	assert.Error(t, err)
}

func TestNewFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
