// Package paths resolves the yada configuration and data directories.
package paths

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// CWD-relative directory names used when nothing else is configured.
const (
	DefaultConfigDirName = ".yada"
	DefaultDataDirName   = "data"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "YADA_CONFIG_DIR"
	EnvDataDir   = "YADA_DATA_DIR"
)

// getwd is overridden in tests.
var getwd = os.Getwd

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > YADA_CONFIG_DIR env > $(CWD)/.yada.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return absolute(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return absolute(env)
	}
	return cwdRelative(DefaultConfigDirName)
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > YADA_DATA_DIR env > $(CWD)/data.
//
// A relative configYAMLValue is taken relative to configDir so a config file
// can point at data beside it regardless of the working directory.
func ResolveDataDir(flag, configYAMLValue, configDir string) (string, error) {
	if flag != "" {
		return absolute(flag)
	}
	if configYAMLValue != "" {
		expanded, err := homedir.Expand(configYAMLValue)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(expanded) && configDir != "" {
			expanded = filepath.Join(configDir, expanded)
		}
		return filepath.Abs(expanded)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return absolute(env)
	}
	return cwdRelative(DefaultDataDirName)
}

// absolute expands a leading ~ and makes p absolute.
func absolute(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

func cwdRelative(name string) (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
