package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config defines trainlog configuration.
type Config struct {
	DB      DBConfig      `yaml:"db"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

// StorageConfig selects where the session collection lives.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Key     string `yaml:"key"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		DB: DBConfig{
			Path: "trainlog.db",
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Key:     "training_sessions",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
// path takes precedence over TRAINLOG_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("TRAINLOG_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("TRAINLOG_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if backend := os.Getenv("TRAINLOG_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if key := os.Getenv("TRAINLOG_STORAGE_KEY"); key != "" {
		cfg.Storage.Key = key
	}
	if level := os.Getenv("TRAINLOG_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown backends and log levels.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.DB.Path == "" {
			return fmt.Errorf("db.path is required for the %s backend", BackendSQLite)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend %q (want %s or %s)", c.Storage.Backend, BackendSQLite, BackendMemory)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("storage.key must not be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
