package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOutputFileName(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

	tests := []struct {
		name    string
		format  string
		ext     string
		pattern string
	}{
		{
			name:    "timestamp and uuid",
			format:  "transactions_{timestamp}_{uuid}.xlsx",
			ext:     ".xlsx",
			pattern: `^transactions_20240115_143022_[0-9a-f-]{36}\.xlsx$`,
		},
		{
			name:    "extension appended",
			format:  "merged_{date}_{time}",
			ext:     ".xlsx",
			pattern: `^merged_20240115_143022\.xlsx$`,
		},
		{
			name:    "extension match is case-insensitive",
			format:  "REPORT.XLSX",
			ext:     ".xlsx",
			pattern: `^REPORT\.XLSX$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateOutputFileName(tt.format, tt.ext, now)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), got)
		})
	}
}

func TestGenerateOutputFileName_Unique(t *testing.T) {
	now := time.Now()
	a := GenerateOutputFileName("{uuid}", ".xlsx", now)
	b := GenerateOutputFileName("{uuid}", ".xlsx", now)
	assert.NotEqual(t, a, b)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))
	assert.True(t, FileExists(dir))

	assert.NoError(t, EnsureDir(""))
	assert.NoError(t, EnsureDir("."))
}

func TestJoinOutputPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := JoinOutputPath(dir, "x.xlsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x.xlsx"), path)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.True(t, FileExists(path))
}
