package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Config is the complete bot configuration
type Config struct {
	DiscordToken string   `yaml:"discord_token" toml:"discord_token" env:"DISCORD_TOKEN"`
	OwnerID      string   `yaml:"owner_id" toml:"owner_id" env:"AILIE_OWNER_ID"`
	Environment  string   `yaml:"environment" toml:"environment" env:"AILIE_ENV"`
	Prefixes     []string `yaml:"prefixes" toml:"prefixes" env:"AILIE_PREFIXES" envSeparator:","`

	Database DatabaseConfig `yaml:"database" toml:"database"`
	Logger   LoggerConfig   `yaml:"logger" toml:"logger"`
	Health   HealthConfig   `yaml:"health" toml:"health"`
}

// DatabaseConfig contains connection parameters for the relational store
type DatabaseConfig struct {
	URL             string        `yaml:"url" toml:"url" env:"DATABASE_URL"`
	Host            string        `yaml:"host" toml:"host" env:"DB_HOST"`
	Port            int           `yaml:"port" toml:"port" env:"DB_PORT"`
	Name            string        `yaml:"name" toml:"name" env:"DB_NAME"`
	User            string        `yaml:"user" toml:"user" env:"DB_USER"`
	Password        string        `yaml:"password" toml:"password" env:"DB_PASSWORD"`
	SSLMode         string        `yaml:"ssl_mode" toml:"ssl_mode" env:"DB_SSLMODE"`
	MaxOpenConns    int           `yaml:"max_open_conns" toml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" toml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" toml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string `yaml:"level" toml:"level" env:"AILIE_LOG_LEVEL"`
	Format   string `yaml:"format" toml:"format" env:"AILIE_LOG_FORMAT"`
	SaveToDB bool   `yaml:"save_to_db" toml:"save_to_db" env:"AILIE_LOG_SAVE_DB"`
}

// HealthConfig contains the health endpoint and store ping schedule
type HealthConfig struct {
	Addr     string `yaml:"addr" toml:"addr" env:"AILIE_HEALTH_ADDR"`
	Schedule string `yaml:"schedule" toml:"schedule" env:"AILIE_HEALTH_SCHEDULE"`
}

// Dir is where LoadConfig looks for ailie.yaml and ailie.toml
var Dir = "config"

// LoadConfig builds the configuration from, in increasing priority:
// defaults, config/ailie.yaml (or config/ailie.toml), .env and the environment.
func LoadConfig() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadDatabaseConfig loads the same sources as LoadConfig but only validates
// the database section. The migration tool runs without a Discord token.
func LoadDatabaseConfig() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("database configuration validation failed: %w", err)
	}

	return cfg, nil
}

func load() (*Config, error) {
	cfg := Default()

	if err := loadYAMLConfig(cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := loadTOMLConfig(cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := loadEnvConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration values
func Default() *Config {
	return &Config{
		Environment: EnvironmentDevelopment,
		Prefixes:    []string{"ailie;", "a;"},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Logger: LoggerConfig{
			Level:    "info",
			Format:   "json",
			SaveToDB: true,
		},
		Health: HealthConfig{
			Addr:     ":8080",
			Schedule: "@every 1m",
		},
	}
}

// loadYAMLConfig overlays config/ailie.yaml when it exists
func loadYAMLConfig(cfg *Config) error {
	yamlPath := filepath.Join(Dir, "ailie.yaml")
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", yamlPath, err)
	}

	return nil
}

// loadTOMLConfig overlays config/ailie.toml when it exists
func loadTOMLConfig(cfg *Config) error {
	tomlPath := filepath.Join(Dir, "ailie.toml")
	if _, err := os.Stat(tomlPath); err != nil {
		return err
	}

	if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
		return fmt.Errorf("failed to parse TOML config %s: %w", tomlPath, err)
	}

	return nil
}

// loadEnvConfig overlays .env and process environment variables
func loadEnvConfig(cfg *Config) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}

// IsProduction reports whether the bot runs against the production database
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvironmentProduction)
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return errors.New("discord token is not set (DISCORD_TOKEN)")
	}
	if len(c.Prefixes) == 0 {
		return errors.New("at least one command prefix is required")
	}
	for _, prefix := range c.Prefixes {
		if strings.TrimSpace(prefix) == "" {
			return errors.New("command prefixes cannot be blank")
		}
	}
	if !isValidEnvironment(c.Environment) {
		return fmt.Errorf("invalid environment: %s (must be development or production)", c.Environment)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}

	if !isValidLogLevel(c.Logger.Level) {
		return fmt.Errorf("invalid logger level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if !isValidLogFormat(c.Logger.Format) {
		return fmt.Errorf("invalid logger format: %s (must be json or text)", c.Logger.Format)
	}

	if c.Health.Addr == "" {
		return errors.New("health addr cannot be empty")
	}
	if _, err := cron.ParseStandard(c.Health.Schedule); err != nil {
		return fmt.Errorf("invalid health schedule %q: %w", c.Health.Schedule, err)
	}

	return nil
}

// Validate checks that enough connection parameters are present
func (d *DatabaseConfig) Validate() error {
	if d.URL == "" && (d.Host == "" || d.Name == "") {
		return errors.New("database is not configured (set DATABASE_URL or DB_HOST and DB_NAME)")
	}
	if d.Port <= 0 {
		return fmt.Errorf("database port must be positive, got %d", d.Port)
	}
	if d.MaxOpenConns < 0 || d.MaxIdleConns < 0 {
		return errors.New("database pool sizes must be non-negative")
	}
	return nil
}

// Validation helper functions
func isValidEnvironment(environment string) bool {
	switch strings.ToLower(environment) {
	case EnvironmentDevelopment, EnvironmentProduction:
		return true
	}
	return false
}

func isValidLogLevel(level string) bool {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if strings.ToLower(level) == valid {
			return true
		}
	}
	return false
}

func isValidLogFormat(format string) bool {
	validFormats := []string{"json", "text"}
	for _, valid := range validFormats {
		if strings.ToLower(format) == valid {
			return true
		}
	}
	return false
}
