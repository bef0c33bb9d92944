// Package config loads service configuration from an optional YAML file
// with environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Store driver names.
const (
	DriverStub    = "stub"
	DriverSQLite  = "sqlite"
	DriverSpanner = "spanner"
)

// EnvConfigPath names the environment variable pointing at the YAML file.
const EnvConfigPath = "COUNTRY_EDIT_CONFIG"

// StoreConfig selects and parameterizes the record store backend.
type StoreConfig struct {
	Driver          string `yaml:"driver"`
	SQLitePath      string `yaml:"sqlite_path"`
	SpannerDatabase string `yaml:"spanner_database"`
}

// SeedConfig is the record a fresh sqlite database is bootstrapped with.
type SeedConfig struct {
	UID  string `yaml:"uid"`
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// Config is the full service configuration.
type Config struct {
	HTTPPort    string      `yaml:"http_port"`
	StubDelayMS int         `yaml:"stub_delay_ms"`
	Store       StoreConfig `yaml:"store"`
	Seed        SeedConfig  `yaml:"seed"`
}

// Load builds the configuration from defaults, then the YAML file named
// by COUNTRY_EDIT_CONFIG (if set), then environment overrides.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:    "8080",
		StubDelayMS: 200,
		Store: StoreConfig{
			Driver:     DriverStub,
			SQLitePath: "country-edit.db",
		},
		Seed: SeedConfig{
			UID:  "c-1",
			Name: "United Kingdom",
			Code: "UK",
		},
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("COUNTRY_EDIT_HTTP_PORT"); v != "" {
		cfg.HTTPPort = v
	}
	if v := os.Getenv("COUNTRY_EDIT_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("COUNTRY_EDIT_SQLITE_PATH"); v != "" {
		cfg.Store.SQLitePath = v
	}
	if v := os.Getenv("COUNTRY_EDIT_SPANNER_DB"); v != "" {
		cfg.Store.SpannerDatabase = v
	}
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case DriverStub, DriverSQLite, DriverSpanner:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Driver == DriverSpanner && c.Store.SpannerDatabase == "" {
		return fmt.Errorf("spanner driver requires a database path")
	}
	return nil
}

// StubDelay returns the stub's artificial delay as a duration.
func (c Config) StubDelay() time.Duration {
	return time.Duration(c.StubDelayMS) * time.Millisecond
}
