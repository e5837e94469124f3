package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ceramicstudio/create-ceramic-app/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood in config.yaml and as <PREFIX>_<KEY> env vars.
const (
	KeyGitBin   = "git_bin"
	KeyNpmBin   = "npm_bin"
	KeyLogLevel = "log_level"
)

// Keys lists every setting Set accepts.
func Keys() []string {
	return []string{KeyGitBin, KeyNpmBin, KeyLogLevel}
}

// Dir returns the path to the config directory (~/.create-ceramic-app/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it doesn't exist.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("creating config dir %s: %w", Dir(), err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	for _, key := range Keys() {
		_ = viper.BindEnv(key, branding.EnvVar(key))
	}

	viper.SetDefault(KeyGitBin, "git")
	viper.SetDefault(KeyNpmBin, "npm")
	viper.SetDefault(KeyLogLevel, "info")

	// Ignore error if config file doesn't exist.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GitBin returns the git executable to invoke.
func GitBin() string { return Get(KeyGitBin) }

// NpmBin returns the npm executable to invoke.
func NpmBin() string { return Get(KeyNpmBin) }

// LogLevel returns the configured log level name.
func LogLevel() string { return Get(KeyLogLevel) }

// Set persists a known key to the config file, creating it when missing.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown key %q (known: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
