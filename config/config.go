// Package config loads the uprocfs configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/shayshai/uprocfs/log"
)

// EnvPrefix is the prefix of every environment override, e.g.
// UPROCFS_LOGGING_LEVEL=DEBUG.
const EnvPrefix = "UPROCFS"

// Config represents the uprocfs configuration.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (UPROCFS_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Mountpoint is the directory the filesystem is mounted on
	Mountpoint string `mapstructure:"mountpoint" validate:"required" yaml:"mountpoint"`

	// AllowOther lets other users access the mount
	AllowOther bool `mapstructure:"allow_other" yaml:"allow_other"`

	// Fuse tunes the kernel session
	Fuse FuseConfig `mapstructure:"fuse" yaml:"fuse"`

	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Metrics contains the status server configuration
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// FuseConfig controls the FUSE session.
type FuseConfig struct {
	// Debug logs every kernel request
	Debug bool `mapstructure:"debug" yaml:"debug"`

	// EntryTimeout is how long the kernel caches lookups
	EntryTimeout time.Duration `mapstructure:"entry_timeout" validate:"gte=0" yaml:"entry_timeout"`

	// AttrTimeout is how long the kernel caches attributes
	AttrTimeout time.Duration `mapstructure:"attr_timeout" validate:"gte=0" yaml:"attr_timeout"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// File is rotated with lumberjack when set
	File string `mapstructure:"file" yaml:"file"`

	// JSON writes one JSON object per line
	JSON bool `mapstructure:"json" yaml:"json"`

	// NoTerminal disables output to stdout
	NoTerminal bool `mapstructure:"no_terminal" yaml:"no_terminal"`
}

// MetricsConfig controls the status server.
type MetricsConfig struct {
	// Listen is the address of the status server, empty disables it
	Listen string `mapstructure:"listen" validate:"omitempty,hostname_port" yaml:"listen"`
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() log.LogLevel {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.Info
	}

	return level
}

// Load loads configuration from file, environment, and defaults.
// A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks cfg against its validation tags.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// Save writes cfg to path in YAML format.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setupViper configures defaults, environment overrides and the config file.
func setupViper(v *viper.Viper, configPath string) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// ConfigDir returns $XDG_CONFIG_HOME/uprocfs, falling back to ~/.config/uprocfs.
func ConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "uprocfs")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "uprocfs")
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// MarshalYAML writes the timeouts as duration strings such as "1s".
func (f FuseConfig) MarshalYAML() (any, error) {
	return struct {
		Debug        bool   `yaml:"debug"`
		EntryTimeout string `yaml:"entry_timeout"`
		AttrTimeout  string `yaml:"attr_timeout"`
	}{
		Debug:        f.Debug,
		EntryTimeout: f.EntryTimeout.String(),
		AttrTimeout:  f.AttrTimeout.String(),
	}, nil
}
