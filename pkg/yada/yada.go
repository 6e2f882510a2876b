// Package yada is the public entry point of the yada diet tracker. It opens
// the food catalog, the daily logs, and the diet profile of a data
// directory as a single Store.
//
// Example:
//
//	store, err := yada.Open(types.Config{DataDir: "data"})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
package yada

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/yada/internal/sqlite"
	"github.com/mesh-intelligence/yada/internal/textstore"
	"github.com/mesh-intelligence/yada/pkg/types"
)

// Option configures the stores created by this package.
type Option = textstore.Option

// ExportStats counts the rows written by Store.Export.
type ExportStats = sqlite.Stats

// WithLogger routes load diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return textstore.WithLogger(logger)
}

// NewCatalog creates an unloaded catalog over the given food files.
func NewCatalog(basicPath, compositePath string, opts ...Option) types.Catalog {
	return textstore.NewCatalog(basicPath, compositePath, opts...)
}

// NewLogBook creates an unloaded log book over the given log file.
func NewLogBook(path string, opts ...Option) types.LogBook {
	return textstore.NewLogManager(path, opts...)
}

// Store bundles the catalog, the daily logs, and the profile of one data
// directory.
type Store struct {
	Config  types.Config
	Catalog types.Catalog
	Logs    types.LogBook
	Profile *types.Profile

	logger *slog.Logger
}

// Open loads the store described by cfg. The catalog loads before the logs
// because ledger entries are checked against it. Missing data files are
// treated as empty and reported through the logger.
func Open(cfg types.Config, opts ...Option) (*Store, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		Config:  cfg,
		Catalog: NewCatalog(cfg.BasicFoodsPath(), cfg.CompositeFoodsPath(), opts...),
		Logs:    NewLogBook(cfg.LogsPath(), opts...),
		logger:  textstore.Logger(opts...),
	}

	if err := s.Catalog.Load(); err != nil {
		if !textstore.IsNotExist(err) {
			return nil, err
		}
		s.logger.Warn("catalog file missing, starting empty", "err", err)
	}
	if err := s.Logs.Load(s.Catalog); err != nil {
		if !textstore.IsNotExist(err) {
			return nil, err
		}
		s.logger.Warn("log file missing, starting empty", "err", err)
	}

	profile, err := textstore.LoadProfile(cfg.ProfilePath())
	if err != nil {
		return nil, err
	}
	s.Profile = profile

	s.logger.Debug("store opened", "data_dir", cfg.DataDir, "foods", s.Catalog.Len())
	return s, nil
}

// Save persists the catalog, the daily logs, and the profile.
func (s *Store) Save() error {
	return errors.Join(
		s.Catalog.Save(),
		s.Logs.Save(),
		s.SaveProfile(),
	)
}

// SaveProfile persists the profile alone.
func (s *Store) SaveProfile() error {
	return textstore.SaveProfile(s.Config.ProfilePath(), s.Profile)
}

// TargetCalories returns the profile's daily calorie target.
func (s *Store) TargetCalories() (float64, error) {
	return s.Profile.TargetCalories()
}

// Export writes a SQLite snapshot of the catalog and the logs to path. The
// export replaces an existing file, so path must not name a data file.
func (s *Store) Export(ctx context.Context, path string) (ExportStats, error) {
	if err := s.checkExportTarget(path); err != nil {
		return ExportStats{}, err
	}
	stats, err := sqlite.Export(ctx, path, s.Catalog, s.Logs)
	if err != nil {
		return stats, fmt.Errorf("exporting to %s: %w", path, err)
	}
	return stats, nil
}

// checkExportTarget rejects a path that resolves to one of the data files,
// by name or through a link.
func (s *Store) checkExportTarget(path string) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	targetInfo, statErr := os.Stat(target)
	for _, p := range s.Config.DataPaths() {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		if abs == target {
			return fmt.Errorf("%w: %s", types.ErrDataFileTarget, path)
		}
		if statErr != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && os.SameFile(info, targetInfo) {
			return fmt.Errorf("%w: %s", types.ErrDataFileTarget, path)
		}
	}
	return nil
}

// Close closes the catalog, which saves it once. The logs and the profile
// are saved only by Save.
func (s *Store) Close() error {
	return s.Catalog.Close()
}
