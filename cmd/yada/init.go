// Init command: creates the configuration and the empty data files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/yada/pkg/types"
	"github.com/mesh-intelligence/yada/pkg/yada"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	DataDir            string `yaml:"data_dir,omitempty"`
	BasicFoodsFile     string `yaml:"basic_foods_file"`
	CompositeFoodsFile string `yaml:"composite_foods_file"`
	LogsFile           string `yaml:"logs_file"`
	ProfileFile        string `yaml:"profile_file"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Initialize yada storage",
		Long:        "Create the configuration and data directories and the empty data files. Existing files are kept.",
		Args:        exactArgs(0),
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, cfg, err := a.resolveConfig()
			if err != nil {
				return err
			}
			if a.dataDir != "" {
				if err := writeConfig(filepath.Join(configDir, configFileExt), cfg); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
			}

			s, err := yada.Open(cfg, yada.WithLogger(a.logger))
			if err != nil {
				return fmt.Errorf("initialize storage: %w", err)
			}
			if anyMissing(cfg.BasicFoodsPath(), cfg.CompositeFoodsPath(), cfg.LogsPath(), cfg.ProfilePath()) {
				if err := s.Save(); err != nil {
					s.Close()
					return fmt.Errorf("initialize storage: %w", err)
				}
			}
			if err := s.Close(); err != nil {
				return fmt.Errorf("finalize storage: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "yada initialized in %s\n", cfg.DataDir)
			return nil
		},
	}
}

// writeConfig records cfg in config.yaml so later runs find the same data
// directory without flags.
func writeConfig(path string, cfg types.Config) error {
	data, err := yaml.Marshal(&configFile{
		DataDir:            cfg.DataDir,
		BasicFoodsFile:     cfg.BasicFoodsFile,
		CompositeFoodsFile: cfg.CompositeFoodsFile,
		LogsFile:           cfg.LogsFile,
		ProfileFile:        cfg.ProfileFile,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func anyMissing(paths ...string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return true
		}
	}
	return false
}
