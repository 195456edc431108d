package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	Job      JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
	// Bcrypt hash của operator API key (đổi token tại /auth/token)
	OperatorKeyHash  string
	TokenExpiryHours int
}

// CatalogConfig chọn backend cho reference data
// "memory" = demo fixtures, "postgres" = catalog tables
type CatalogConfig struct {
	Backend string
}

type JobConfig struct {
	AlertScanCron       string
	MetricsSnapshotCron string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Distribution OOS Copilot API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "distribution_oos"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			OperatorKeyHash:  getEnv("OPERATOR_KEY_HASH", ""),
			TokenExpiryHours: getEnvInt("JWT_TOKEN_EXPIRY_HOURS", 24),
		},
		Catalog: CatalogConfig{
			Backend: getEnv("CATALOG_BACKEND", "memory"),
		},
		Job: JobConfig{
			AlertScanCron:       getEnv("JOB_ALERT_SCAN_CRON", "*/15 * * * *"),
			MetricsSnapshotCron: getEnv("JOB_METRICS_SNAPSHOT_CRON", "*/5 * * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Auth.OperatorKeyHash == "" {
			return fmt.Errorf("OPERATOR_KEY_HASH must be set in production")
		}
		if c.Catalog.Backend == "postgres" && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	if c.Catalog.Backend != "memory" && c.Catalog.Backend != "postgres" {
		return fmt.Errorf("CATALOG_BACKEND must be memory or postgres, got %q", c.Catalog.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
