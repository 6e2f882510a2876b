package textstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", "one\r\ntwo\n\nthree")

	lines, err := readLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "", "three"}, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := readLines(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestWriteLinesReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	require.NoError(t, writeLines(path, []string{"a", "b"}))
	assert.Equal(t, "a\nb\n", readFile(t, path))

	require.NoError(t, writeLines(path, []string{"c"}))
	assert.Equal(t, "c\n", readFile(t, path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestIsComment(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"# header", true},
		{"  # indented", true},
		{"BASIC:a::1", false},
		{"DATE: 01-01-2024", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isComment(tt.line))
		})
	}
}
