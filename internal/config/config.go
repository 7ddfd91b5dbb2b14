package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	Storage  StorageConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration. The database is
// optional; when disabled the server runs on the JSON file store.
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration. AdminKey guards the admin
// surface (order listing, status updates, dashboard stats).
type AuthConfig struct {
	AdminKey string
}

// CatalogConfig holds configuration for the seed catalogue, optionally
// sourced from AWS S3 with a local file fallback.
type CatalogConfig struct {
	File      string
	S3Enabled bool
	S3Bucket  string
	S3Region  string
	S3Prefix  string // key prefix within the bucket (e.g. "catalog/")
}

// StorageConfig holds configuration for the JSON file store used when the
// database is disabled.
type StorageConfig struct {
	DataFile string
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	// Missing .env is fine; real environments configure via the process env.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 5000),
		},
		Database: DatabaseConfig{
			Enabled:         getEnvAsBool("DB_ENABLED", false),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "stylestore"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			AdminKey: getEnv("ADMIN_KEY", ""),
		},
		Catalog: CatalogConfig{
			File:      getEnv("CATALOG_FILE", ""),
			S3Enabled: getEnvAsBool("CATALOG_S3_ENABLED", false),
			S3Bucket:  getEnv("CATALOG_S3_BUCKET", ""),
			S3Region:  getEnv("CATALOG_S3_REGION", "us-east-1"),
			S3Prefix:  getEnv("CATALOG_S3_PREFIX", "catalog/"),
		},
		Storage: StorageConfig{
			DataFile: getEnv("STORE_DATA_FILE", "store_data.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.AdminKey == "" {
		return fmt.Errorf("admin key is required")
	}

	if c.Database.Enabled {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}

		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}

		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}

		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}

		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	} else if c.Storage.DataFile == "" {
		return fmt.Errorf("store data file is required when the database is disabled")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Catalog.S3Enabled {
		if c.Catalog.S3Bucket == "" {
			return fmt.Errorf("catalog S3 bucket is required when catalog S3 is enabled")
		}
		if c.Catalog.S3Region == "" {
			return fmt.Errorf("catalog S3 region is required when catalog S3 is enabled")
		}
		if c.Catalog.File == "" {
			return fmt.Errorf("catalog file is required when catalog S3 is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
