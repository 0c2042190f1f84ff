// Package config loads service configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port                string `yaml:"port"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	} `yaml:"server"`
	Database struct {
		URL        string `yaml:"url"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Auth struct {
		APIKey    string `yaml:"api_key"`
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Registry struct {
		TTLHours int `yaml:"ttl_hours"`
	} `yaml:"registry"`
	Schedule struct {
		RetrainCron string `yaml:"retrain_cron"`
		RunOnStart  bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment
// variable overrides. A missing file is fine; every setting has a
// default or an environment source.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("AI_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("REGISTRY_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			cfg.Registry.TTLHours = hours
		}
	}
	if v := os.Getenv("RETRAIN_CRON"); v != "" {
		cfg.Schedule.RetrainCron = v
	}
	if v := os.Getenv("RUN_ON_START"); v != "" {
		if run, err := strconv.ParseBool(v); err == nil {
			cfg.Schedule.RunOnStart = run
		}
	}

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = 30
	}
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = 30
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/ai_service.db"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-1.5-pro"
	}
	if cfg.Registry.TTLHours == 0 {
		cfg.Registry.TTLHours = 24
	}
	if cfg.Schedule.RetrainCron == "" {
		cfg.Schedule.RetrainCron = "0 0 3 * * *"
	}

	return cfg, nil
}

// Validate checks settings that have no workable fallback.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port must be numeric, got %q", c.Server.Port)
	}
	if c.Server.ReadTimeoutSeconds <= 0 || c.Server.WriteTimeoutSeconds <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.Registry.TTLHours <= 0 {
		return fmt.Errorf("registry.ttl_hours must be positive")
	}
	if c.Schedule.RetrainCron == "" {
		return fmt.Errorf("schedule.retrain_cron is required")
	}
	return nil
}
