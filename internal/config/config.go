// Package config loads runtime settings in priority order:
//  1. Defaults
//  2. Config file (--config, else todo.toml / .todo.toml / todo.yaml in the
//     working directory, else <user config dir>/todo/config.toml)
//  3. .env in the working directory, then environment variables
//  4. CLI flags (applied by the caller via Overrides)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todo-repl/internal/store/linestore"
)

// Environment variable names.
const (
	EnvFile     = "TODO_FILE"
	EnvTheme    = "TODO_THEME"
	EnvLogLevel = "TODO_LOG_LEVEL"
	EnvProgress = "TODO_PROGRESS"
	EnvNoColor  = "NO_COLOR"
)

// ErrUnknownTheme is returned by Validate for theme names ui does not know.
var ErrUnknownTheme = errors.New("unknown theme")

// Config holds all runtime configuration.
type Config struct {
	// DataFile is the two-line-per-item persistence file.
	DataFile string `toml:"data_file" yaml:"data_file"`
	// Theme is one of classic, neon, mono.
	Theme string `toml:"theme" yaml:"theme"`
	// Color enables ANSI styling when stdout is a terminal.
	Color bool `toml:"color" yaml:"color"`
	// ShowProgress prints a done/total bar after "list all".
	ShowProgress bool `toml:"show_progress" yaml:"show_progress"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Source is the config file that was read, empty if none.
	Source string `toml:"-" yaml:"-"`
}

// Overrides carries flag values; nil fields were not set.
type Overrides struct {
	DataFile *string
	Theme    *string
	NoColor  *bool
	LogLevel *string
}

// Default returns a baseline configuration without side effects.
func Default() Config {
	return Config{
		DataFile:     linestore.DefaultFileName,
		Theme:        "classic",
		Color:        true,
		ShowProgress: true,
		LogLevel:     "info",
	}
}

// Load builds the configuration. configPath may be empty.
func Load(configPath string, o Overrides) (Config, error) {
	cfg := Default()

	path, err := findConfigFile(configPath)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := decodeFile(&cfg, path); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.Source = path
	}

	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	applyOverrides(&cfg, o)

	return Normalize(cfg), nil
}

// Normalize trims values and restores defaults for empty ones.
func Normalize(cfg Config) Config {
	d := Default()
	cfg.DataFile = strings.TrimSpace(cfg.DataFile)
	if cfg.DataFile == "" {
		cfg.DataFile = d.DataFile
	}
	cfg.DataFile = expandHome(cfg.DataFile)
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme == "" {
		cfg.Theme = d.Theme
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = d.LogLevel
	}
	return cfg
}

// UserConfigPath is the per-user fallback config file.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, "todo", "config.toml"), nil
}

// findConfigFile returns the file to read, or "" when there is none.
// An explicit path must exist.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, name := range []string{"todo.toml", ".todo.toml", "todo.yaml", "todo.yml"} {
		if fileExists(name) {
			return name, nil
		}
	}
	if p, err := UserConfigPath(); err == nil && fileExists(p) {
		return p, nil
	}
	return "", nil
}

func decodeFile(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
		return nil
	default:
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("parse toml: %w", err)
		}
		return nil
	}
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvFile); ok && strings.TrimSpace(v) != "" {
		cfg.DataFile = v
	}
	if v, ok := os.LookupEnv(EnvTheme); ok && strings.TrimSpace(v) != "" {
		cfg.Theme = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvProgress); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvProgress, err)
		}
		cfg.ShowProgress = b
	}
	// https://no-color.org: any non-empty value disables colour.
	if os.Getenv(EnvNoColor) != "" {
		cfg.Color = false
	}
	return nil
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.DataFile != nil {
		cfg.DataFile = *o.DataFile
	}
	if o.Theme != nil {
		cfg.Theme = *o.Theme
	}
	if o.NoColor != nil && *o.NoColor {
		cfg.Color = false
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Validate checks values that Normalize cannot repair.
func Validate(cfg Config, themes []string) error {
	for _, t := range themes {
		if cfg.Theme == t {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTheme, cfg.Theme, strings.Join(themes, ", "))
}
