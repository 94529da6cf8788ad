// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/anipeek/anipeek/constant"
	"github.com/anipeek/anipeek/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "ANIPEEK_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// ANIPEEK_CONFIG_PATH takes precedence over the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Anipeek))
}

// Cache resolves the cache directory, falling back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Anipeek))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the file holding recent lookups.
func History() string {
	return filepath.Join(Cache(), "recent.json")
}

// ConfigFile resolves the toml configuration file path.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Anipeek+".toml")
}
