/*
Package config loads run's settings from defaults, an optional YAML file in
the project directory and RUN_* environment variables.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileName is the optional settings file looked up in the working directory.
	FileName = ".runrc.yaml"
	// EnvPrefix is prepended to every environment override (RUN_RUNTIME, ...).
	EnvPrefix = "RUN"
)

// ErrConfigNotFound is returned when an explicit config path does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Config holds every tunable setting.
type Config struct {
	RunFile    string `mapstructure:"run_file"`
	Runtime    string `mapstructure:"runtime"`
	Shell      string `mapstructure:"shell"`
	BinDir     string `mapstructure:"bin_dir"`
	MarkerFile string `mapstructure:"marker_file"`
	Verbose    bool   `mapstructure:"verbose"`
	NoColor    bool   `mapstructure:"no_color"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		RunFile:    "run.yaml",
		Runtime:    "native",
		BinDir:     "node_modules/.bin",
		MarkerFile: "package.json",
	}
}

// Load resolves the configuration. When path is set the file must exist;
// otherwise FileName is read if present and skipped if not.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("run_file", defaults.RunFile)
	v.SetDefault("runtime", defaults.Runtime)
	v.SetDefault("shell", defaults.Shell)
	v.SetDefault("bin_dir", defaults.BinDir)
	v.SetDefault("marker_file", defaults.MarkerFile)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("no_color", defaults.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := path
	if file == "" && fileExists(FileName) {
		file = FileName
	}
	if path != "" && !fileExists(path) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
