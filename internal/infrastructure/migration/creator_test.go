package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"create ledger entries", "create_ledger_entries"},
		{"Create-Staging-Tables", "create_staging_tables"},
		{"ADD_MASTER_TABLES", "add_master_tables"},
		{"add__party__index", "add_party_index"},
		{"Window Index 2", "window_index_2"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	tmpDir := t.TempDir()

	mf, err := CreateMigration(tmpDir, "create ledger entries")
	require.NoError(t, err)
	require.NotNil(t, mf)

	// Version is a sortable YYYYMMDDHHMMSS timestamp.
	assert.Len(t, mf.Version, 14)

	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)
	assert.Contains(t, upBase, "create_ledger_entries")

	upContent, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "create ledger entries")

	downContent, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(downContent), "rollback")
}

func TestListMigrations(t *testing.T) {
	tmpDir := t.TempDir()

	listed, err := ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, listed)

	for _, name := range []string{
		"20260101000001_first.up.sql",
		"20260101000001_first.down.sql",
		"20260101000002_second.up.sql",
		"20260101000002_second.down.sql",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("-- sql"), 0644))
	}

	listed, err = ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"20260101000001_first", "20260101000002_second"}, listed)

	missing, err := ListMigrations(filepath.Join(tmpDir, "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}
