package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables honoured by Load.
const (
	EnvConfigPath = "POWERCONV_CONFIG"
	EnvDSN        = "POWERCONV_DSN"
)

// DefaultPath is the config file used when POWERCONV_CONFIG is unset.
const DefaultPath = "config/powerconv.yaml"

// Config holds all configuration for the converter.
type Config struct {
	// Raw game data root, e.g. "Raw Data Homecoming/powers".
	RawDataDir string `yaml:"raw_data_dir"`
	// Root of the generated planner modules, e.g. "js/data".
	OutputDir string `yaml:"output_dir"`

	LogLevel string `yaml:"log_level"`
	// Concurrent power conversions per set.
	Workers int `yaml:"workers"`
	// Debounce for watch mode, milliseconds.
	WatchDebounceMs int `yaml:"watch_debounce_ms"`

	Database DatabaseConfig `yaml:"database"`

	// Pools converted by `powerconv pool all`.
	Pools []string `yaml:"pools"`
	// Powerset groups converted by `powerconv batch`.
	Batch []BatchGroup `yaml:"batch"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the catalog store.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`

	// DSNOverride wins over the individual fields when set (POWERCONV_DSN).
	DSNOverride string `yaml:"dsn"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	if d.DSNOverride != "" {
		return d.DSNOverride
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		RawDataDir:      "raw/powers",
		OutputDir:       "js/data",
		LogLevel:        "info",
		Workers:         4,
		WatchDebounceMs: 300,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "powerconv",
			Password: "powerconv",
			DBName:   "powerconv",
			SSLMode:  "disable",
		},
		Pools: DefaultPools(),
		Batch: DefaultBatch(),
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults. POWERCONV_DSN overrides the
// database DSN either way.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if dsn := os.Getenv(EnvDSN); dsn != "" {
		cfg.Database.DSNOverride = dsn
		cfg.Database.Enabled = true
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// Path returns POWERCONV_CONFIG or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}
