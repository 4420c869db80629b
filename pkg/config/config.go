// Package config loads planus settings from ~/.config/planus/config.yaml,
// PLANUS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/harrisonrobin/planus/pkg/i18n"
)

const (
	xdgAppName = "planus"
	configName = "config"
	configType = "yaml"
	envPrefix  = "PLANUS"
)

// Report formats.
const (
	FormatMarkdown = "markdown"
	FormatTerminal = "terminal"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Config is the full planus configuration.
type Config struct {
	// Language selects report and message language (en, pt, es).
	Language string `mapstructure:"language" yaml:"language"`
	// Format is the default report format.
	Format string `mapstructure:"format" yaml:"format"`
	// Calendar is the Google Calendar that export writes to.
	Calendar string `mapstructure:"calendar" yaml:"calendar"`
	// Location is the IANA zone used for schedule dates without a zone.
	Location string        `mapstructure:"location" yaml:"location"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Watch    WatchConfig   `mapstructure:"watch" yaml:"watch"`
}

// LoggingConfig controls the structured log.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// Dir holds planus.log; empty logs to stderr.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms" yaml:"debounce_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Language: string(i18n.Default),
		Format:   FormatMarkdown,
		Calendar: "Tasks",
		Location: "Local",
		Logging:  LoggingConfig{Level: "INFO"},
		Watch:    WatchConfig{DebounceMs: 500},
	}
}

// SetDefaults registers every default on v so they apply without a config file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("language", d.Language)
	v.SetDefault("format", d.Format)
	v.SetDefault("calendar", d.Calendar)
	v.SetDefault("location", d.Location)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.dir", d.Logging.Dir)
	v.SetDefault("watch.debounce_ms", d.Watch.DebounceMs)
}

// NewViper returns a viper instance with defaults, PLANUS_* environment
// overrides and the config file read in. An explicit cfgFile must exist; the
// default file is optional.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(ConfigDir())
	}

	v.SetEnvPrefix(envPrefix)
	// PLANUS_LOGGING_LEVEL for logging.level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ConfigDir returns $XDG_CONFIG_HOME/planus or ~/.config/planus.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, xdgAppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + xdgAppName
	}
	return filepath.Join(home, ".config", xdgAppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), configName+"."+configType)
}

// Locale returns the configured language as a supported locale.
func (c *Config) Locale() i18n.Locale {
	return i18n.Parse(c.Language)
}

// TimeLocation resolves Location; empty and "Local" mean the system zone.
func (c *Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Location)
}

// Debounce returns the watch debounce interval.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}
