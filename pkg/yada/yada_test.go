package yada

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/yada/pkg/types"
)

func TestOpenEmptyDataDir(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s, err := Open(types.Config{DataDir: t.TempDir()}, WithLogger(logger))
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 0, s.Catalog.Len())
	assert.Empty(t, s.Logs.Dates())
	assert.False(t, s.Profile.Complete())
	assert.Contains(t, buf.String(), "catalog file missing")
}

func TestOpenInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrDataDirEmpty)
}

func TestStoreSaveAndReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{DataDir: dir}

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Catalog.AddBasic(types.NewBasicFood("egg", []string{"protein"}, 78)))
	l, err := s.Logs.Log("03-03-2024")
	require.NoError(t, err)
	l.AddEntry("egg", 2)
	require.NoError(t, s.Profile.SetAge(40))
	require.NoError(t, s.Save())
	require.NoError(t, s.Close())

	for _, name := range []string{
		types.DefaultBasicFoodsFile,
		types.DefaultCompositeFoodsFile,
		types.DefaultLogsFile,
		types.DefaultProfileFile,
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	reopened, err := Open(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	l, err = reopened.Logs.Log("03-03-2024")
	require.NoError(t, err)
	total, err := l.TotalCalories(reopened.Catalog)
	require.NoError(t, err)
	assert.Equal(t, 156.0, total)
	assert.Equal(t, 40, reopened.Profile.Age)
}

func TestStoreCloseKeepsCatalogOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{DataDir: dir}

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Catalog.AddBasic(types.NewBasicFood("egg", nil, 78)))
	l, err := s.Logs.Log("03-03-2024")
	require.NoError(t, err)
	l.AddEntry("egg", 1)
	require.NoError(t, s.Close())

	reopened, err := Open(cfg)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, 1, reopened.Catalog.Len())
	assert.Empty(t, reopened.Logs.Dates())
}

func TestStoreExport(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Catalog.AddBasic(types.NewBasicFood("egg", nil, 78)))

	stats, err := s.Export(context.Background(), filepath.Join(dir, "yada.db"))
	require.NoError(t, err)
	assert.Equal(t, ExportStats{Foods: 1}, stats)
}

func TestStoreExportRefusesDataFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Catalog.AddBasic(types.NewBasicFood("egg", nil, 78)))
	require.NoError(t, s.Save())

	basic := s.Config.BasicFoodsPath()
	before, err := os.ReadFile(basic)
	require.NoError(t, err)

	link := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, os.Symlink(basic, link))

	tests := []struct {
		name string
		path string
	}{
		{"basic foods file", basic},
		{"composite foods file with dot segment", filepath.Join(dir, ".", types.DefaultCompositeFoodsFile)},
		{"logs file", s.Config.LogsPath()},
		{"profile file not yet written", s.Config.ProfilePath()},
		{"link to basic foods file", link},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Export(context.Background(), tt.path)
			assert.ErrorIs(t, err, types.ErrDataFileTarget)
		})
	}

	after, err := os.ReadFile(basic)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
