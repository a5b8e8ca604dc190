package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full service configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Cache    CacheConfig    `json:"cache"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	BaseRoute string `json:"baseRoute"`
	Debug     bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Type     string           `json:"type"`
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
	ConnectTimeout  time.Duration `json:"connectTimeout"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	Backend string        `json:"backend"`
	Prefix  string        `json:"prefix"`
	TTL     time.Duration `json:"ttl"`
	Redis   RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string `json:"address"`
	Password     string `json:"password"`
	DB           int    `json:"db"`
	PoolSize     int    `json:"poolSize"`
	MinIdleConns int    `json:"minIdleConns"`
}

// LoadFromEnv loads configuration from the environment.
// It follows a clear precedence:
// 1. Explicit environment variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	// godotenv.Load() reads the .env file and loads its values into the
	// environment for this process only if they are not already set, which
	// gives the correct precedence automatically.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}

	if loadErr != nil {
		// A missing .env file is not an error.
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:      getEnvOrDefault("HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 8080),
			BaseRoute: getEnvOrDefault("BASE_ROUTE", "/api"),
			Debug:     getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Type: getEnvOrDefault("DB_TYPE", "postgresql"),
			Postgres: PostgreSQLConfig{
				Host:            getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:            getEnvAsInt("POSTGRES_PORT", 5432),
				Username:        getEnvOrDefault("POSTGRES_USERNAME", ""),
				Password:        getEnvOrDefault("POSTGRES_PASSWORD", ""),
				Database:        getEnvOrDefault("POSTGRES_DATABASE", "bizboard"),
				SSLMode:         getEnvOrDefault("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
				ConnectTimeout:  time.Duration(getEnvAsInt("POSTGRES_CONNECT_TIMEOUT", 10)) * time.Second,
			},
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", true),
			Backend: getEnvOrDefault("CACHE_BACKEND", "memory"),
			Prefix:  getEnvOrDefault("CACHE_PREFIX", "bizboard:"),
			TTL:     getEnvAsDuration("CACHE_TTL", 10*time.Minute),
			Redis: RedisConfig{
				Address:      getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:     getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:           getEnvAsInt("REDIS_DB", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists {
			return value
		}
		return defaultValue
	}

	getInt := func(key string, defaultValue int) int {
		if value, exists := envMap[key]; exists {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	getBool := func(key string, defaultValue bool) bool {
		if value, exists := envMap[key]; exists {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}

	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, exists := envMap[key]; exists {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Host:      get("HOST", "localhost"),
			Port:      getInt("SERVER_PORT", 8080),
			BaseRoute: get("BASE_ROUTE", "/api"),
			Debug:     getBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Type: get("DB_TYPE", "postgresql"),
			Postgres: PostgreSQLConfig{
				Host:            get("POSTGRES_HOST", "localhost"),
				Port:            getInt("POSTGRES_PORT", 5432),
				Username:        get("POSTGRES_USERNAME", ""),
				Password:        get("POSTGRES_PASSWORD", ""),
				Database:        get("POSTGRES_DATABASE", "bizboard"),
				SSLMode:         get("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
				ConnectTimeout:  time.Duration(getInt("POSTGRES_CONNECT_TIMEOUT", 10)) * time.Second,
			},
		},
		Cache: CacheConfig{
			Enabled: getBool("CACHE_ENABLED", true),
			Backend: get("CACHE_BACKEND", "memory"),
			Prefix:  get("CACHE_PREFIX", "bizboard:"),
			TTL:     getDuration("CACHE_TTL", 10*time.Minute),
			Redis: RedisConfig{
				Address:      get("REDIS_ADDRESS", "localhost:6379"),
				Password:     get("REDIS_PASSWORD", ""),
				DB:           getInt("REDIS_DB", 0),
				PoolSize:     getInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 5),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	validDbTypes := []string{"postgresql"}
	if !contains(validDbTypes, c.Database.Type) {
		errors = append(errors, fmt.Sprintf("DB_TYPE must be one of: %s", strings.Join(validDbTypes, ", ")))
	}

	if strings.TrimSpace(c.Database.Postgres.Database) == "" {
		errors = append(errors, "POSTGRES_DATABASE is required")
	}

	validBackends := []string{"memory", "redis"}
	if c.Cache.Enabled && !contains(validBackends, c.Cache.Backend) {
		errors = append(errors, fmt.Sprintf("CACHE_BACKEND must be one of: %s", strings.Join(validBackends, ", ")))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errors = append(errors, "SERVER_PORT must be between 1 and 65535")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
