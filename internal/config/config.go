package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
)

const (
	// AppName names the config directory, data directory and env prefix
	AppName = "internlog"

	// DatabaseFile is the SQLite file created in the data directory
	DatabaseFile = "internlog.db"

	envPrefix = "INTERNLOG"
)

// Config represents the application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Program ProgramConfig `mapstructure:"program" yaml:"program"`
	Tasks   TasksConfig   `mapstructure:"tasks" yaml:"tasks"`
	Auth    AuthConfig    `mapstructure:"auth" yaml:"auth"`
	Theme   ColorScheme   `mapstructure:"theme" yaml:"theme"`
}

// StorageConfig locates the database
type StorageConfig struct {
	// Path is the SQLite file; empty means ~/.internlog/internlog.db
	Path string `mapstructure:"path" yaml:"path,omitempty"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// ProgramConfig describes the internship
type ProgramConfig struct {
	TotalDays int `mapstructure:"total_days" yaml:"total_days"`
}

// TasksConfig tunes task listings
type TasksConfig struct {
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// AuthConfig holds default credentials, usually supplied through the
// environment or a .env file rather than the config file
type AuthConfig struct {
	User     string `mapstructure:"user" yaml:"user,omitempty"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Program: ProgramConfig{TotalDays: progress.TotalDays},
		Tasks:   TasksConfig{Limit: models.DefaultTaskLimit},
		Theme:   *DefaultColorScheme(),
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("storage.path", "")
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("program.total_days", d.Program.TotalDays)
	v.SetDefault("tasks.limit", d.Tasks.Limit)
	// Registered so AutomaticEnv can supply them
	v.SetDefault("auth.user", "")
	v.SetDefault("auth.password", "")
	v.SetDefault("theme.preset", "default")
}

// Load builds the configuration from, lowest priority first: defaults, the
// config file, a .env file in the working directory, INTERNLOG_* environment
// variables and the --db / --log-level flags in flags (which may be nil).
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if dir, err := ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		slog.Debug("no config.yaml found, using defaults")
	} else {
		slog.Debug("loaded configuration", "file", v.ConfigFileUsed())
	}

	// Allow environment variables to override config file
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// bindFlags lets command line flags override config values
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	bindings := map[string]string{
		"storage.path":  "db",
		"logging.level": "log-level",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// applyDefaults fills in missing or invalid values with defaults
func (c *Config) applyDefaults() {
	d := Default()
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Program.TotalDays <= 0 {
		c.Program.TotalDays = d.Program.TotalDays
	}
	if c.Tasks.Limit <= 0 {
		c.Tasks.Limit = d.Tasks.Limit
	}
	c.Theme.ApplyDefaults()
}

// Save writes the config to the user's config directory. Credentials are
// left out of the file.
func (c *Config) Save() (string, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return "", err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", err
	}

	out := *c
	out.Auth = AuthConfig{}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return "", err
	}

	return configPath, os.WriteFile(configPath, data, 0o644)
}

// DatabasePath is the SQLite file to open
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFile), nil
}

// DataDir is where logs are written: the database's directory, or the
// default data directory for an in-memory database.
func (c *Config) DataDir() (string, error) {
	path, err := c.DatabasePath()
	if err != nil {
		return "", err
	}
	if path == ":memory:" {
		return DefaultDataDir()
	}
	return filepath.Dir(path), nil
}

// DefaultDataDir is ~/.internlog
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "."+AppName), nil
}

// ConfigDir returns the directory holding config.yaml
func ConfigDir() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", AppName), nil
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
