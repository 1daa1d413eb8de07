// Package where resolves the application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "ANITAKU_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honouring ANITAKU_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.Anitaku))
}

// Cache returns the user cache directory, falling back to ./cache when the system one is unavailable.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Anitaku))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Queries returns the search query history file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
