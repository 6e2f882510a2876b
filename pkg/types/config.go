package types

import (
	"errors"
	"path/filepath"
	"strings"
)

// Default file names inside the data directory.
const (
	DefaultBasicFoodsFile     = "basic_foods.txt"
	DefaultCompositeFoodsFile = "composite_foods.txt"
	DefaultLogsFile           = "daily_logs.txt"
	DefaultProfileFile        = "profile.yaml"
)

// Config locates the data files of a yada store.
type Config struct {
	DataDir            string `json:"data_dir" yaml:"data_dir"`
	BasicFoodsFile     string `json:"basic_foods_file" yaml:"basic_foods_file"`
	CompositeFoodsFile string `json:"composite_foods_file" yaml:"composite_foods_file"`
	LogsFile           string `json:"logs_file" yaml:"logs_file"`
	ProfileFile        string `json:"profile_file" yaml:"profile_file"`
}

// Config validation errors.
var (
	ErrDataDirEmpty    = errors.New("data directory must not be empty")
	ErrInvalidFileName = errors.New("file name must be a plain name inside the data directory")
	ErrFileNameClash   = errors.New("data files must have distinct names")
	ErrDataFileTarget  = errors.New("path is one of the store's data files")
)

// WithDefaults fills empty file names with their defaults.
func (c Config) WithDefaults() Config {
	if c.BasicFoodsFile == "" {
		c.BasicFoodsFile = DefaultBasicFoodsFile
	}
	if c.CompositeFoodsFile == "" {
		c.CompositeFoodsFile = DefaultCompositeFoodsFile
	}
	if c.LogsFile == "" {
		c.LogsFile = DefaultLogsFile
	}
	if c.ProfileFile == "" {
		c.ProfileFile = DefaultProfileFile
	}
	return c
}

// Validate checks that the Config is well-formed. File names are checked
// after defaults are applied.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return ErrDataDirEmpty
	}
	c = c.WithDefaults()
	names := []string{c.BasicFoodsFile, c.CompositeFoodsFile, c.LogsFile, c.ProfileFile}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n != filepath.Base(n) || n == "." || n == ".." {
			return ErrInvalidFileName
		}
		if seen[n] {
			return ErrFileNameClash
		}
		seen[n] = true
	}
	return nil
}

// BasicFoodsPath returns the path of the basic foods file.
func (c Config) BasicFoodsPath() string {
	return filepath.Join(c.DataDir, c.WithDefaults().BasicFoodsFile)
}

// CompositeFoodsPath returns the path of the composite foods file.
func (c Config) CompositeFoodsPath() string {
	return filepath.Join(c.DataDir, c.WithDefaults().CompositeFoodsFile)
}

// LogsPath returns the path of the daily logs file.
func (c Config) LogsPath() string {
	return filepath.Join(c.DataDir, c.WithDefaults().LogsFile)
}

// ProfilePath returns the path of the diet profile file.
func (c Config) ProfilePath() string {
	return filepath.Join(c.DataDir, c.WithDefaults().ProfileFile)
}

// DataPaths returns the paths of every file the store reads and writes.
func (c Config) DataPaths() []string {
	return []string{c.BasicFoodsPath(), c.CompositeFoodsPath(), c.LogsPath(), c.ProfilePath()}
}
