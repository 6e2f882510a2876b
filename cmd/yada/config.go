// Config loading for the yada CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/yada/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir            = "data_dir"
	cfgKeyBasicFoodsFile     = "basic_foods_file"
	cfgKeyCompositeFoodsFile = "composite_foods_file"
	cfgKeyLogsFile           = "logs_file"
	cfgKeyProfileFile        = "profile_file"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# yada configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# File names inside the data directory
basic_foods_file: basic_foods.txt
composite_foods_file: composite_foods.txt
logs_file: daily_logs.txt
profile_file: profile.yaml
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBasicFoodsFile, types.DefaultBasicFoodsFile)
	v.SetDefault(cfgKeyCompositeFoodsFile, types.DefaultCompositeFoodsFile)
	v.SetDefault(cfgKeyLogsFile, types.DefaultLogsFile)
	v.SetDefault(cfgKeyProfileFile, types.DefaultProfileFile)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// configFromViper builds the store configuration for dataDir.
func configFromViper(v *viper.Viper, dataDir string) types.Config {
	return types.Config{
		DataDir:            dataDir,
		BasicFoodsFile:     v.GetString(cfgKeyBasicFoodsFile),
		CompositeFoodsFile: v.GetString(cfgKeyCompositeFoodsFile),
		LogsFile:           v.GetString(cfgKeyLogsFile),
		ProfileFile:        v.GetString(cfgKeyProfileFile),
	}
}
