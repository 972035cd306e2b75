package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the session service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL      string `env:"DATABASE_URL" required:"true"`
	DatabaseHost     string `env:"DB_HOST" default:"session-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"session_db"`
	DatabaseUser     string `env:"DB_USER" default:"session_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Kratos
	KratosPublicURL string `env:"KRATOS_PUBLIC_URL" required:"true"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" default:"session-redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" default:"0"`

	// Coordinator
	BootTimeout         time.Duration `env:"BOOT_TIMEOUT" default:"3s"`
	HydrationTimeout    time.Duration `env:"HYDRATION_TIMEOUT" default:"2s"`
	RedirectGuardDelay  time.Duration `env:"REDIRECT_GUARD_DELAY" default:"100ms"`
	SessionPollInterval time.Duration `env:"SESSION_POLL_INTERVAL" default:"30s"`
	LoginRoute          string        `env:"LOGIN_ROUTE" default:"/login"`
	DashboardRoute      string        `env:"DASHBOARD_ROUTE" default:"/dashboard"`
	StorageNamespace    string        `env:"STORAGE_NAMESPACE" default:"kratos:"`

	// Admin recognition
	AdminEmails []string `env:"ADMIN_EMAILS"`
	AdminTier   string   `env:"ADMIN_TIER" default:"elite"`

	// Features
	EnableDebug bool `env:"ENABLE_DEBUG" default:"false"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", "session-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "session_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "session_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	// Redis configuration
	config.RedisAddr = getEnvOrDefault("REDIS_ADDR", "session-redis:6379")
	config.RedisPassword = os.Getenv("REDIS_PASSWORD")
	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	config.RedisDB = redisDB

	// Coordinator configuration
	if config.BootTimeout, err = getDurationEnv("BOOT_TIMEOUT", 3*time.Second); err != nil {
		return nil, err
	}
	if config.HydrationTimeout, err = getDurationEnv("HYDRATION_TIMEOUT", 2*time.Second); err != nil {
		return nil, err
	}
	if config.RedirectGuardDelay, err = getDurationEnv("REDIRECT_GUARD_DELAY", 100*time.Millisecond); err != nil {
		return nil, err
	}
	if config.SessionPollInterval, err = getDurationEnv("SESSION_POLL_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}
	config.LoginRoute = getEnvOrDefault("LOGIN_ROUTE", "/login")
	config.DashboardRoute = getEnvOrDefault("DASHBOARD_ROUTE", "/dashboard")
	config.StorageNamespace = getEnvOrDefault("STORAGE_NAMESPACE", "kratos:")

	// Admin recognition
	config.AdminEmails = splitCSV(os.Getenv("ADMIN_EMAILS"))
	config.AdminTier = getEnvOrDefault("ADMIN_TIER", "elite")

	// Feature flags
	config.EnableDebug = getBoolEnv("ENABLE_DEBUG", false)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate coordinator timings
	if c.BootTimeout <= 0 {
		return fmt.Errorf("boot timeout must be positive, got: %v", c.BootTimeout)
	}
	if c.HydrationTimeout <= 0 {
		return fmt.Errorf("hydration timeout must be positive, got: %v", c.HydrationTimeout)
	}
	if c.RedirectGuardDelay < 0 {
		return fmt.Errorf("redirect guard delay must not be negative, got: %v", c.RedirectGuardDelay)
	}
	if c.SessionPollInterval < time.Second {
		return fmt.Errorf("session poll interval must be at least 1 second, got: %v", c.SessionPollInterval)
	}

	// Validate routes
	if !strings.HasPrefix(c.LoginRoute, "/") {
		return fmt.Errorf("login route must start with /: %s", c.LoginRoute)
	}
	if !strings.HasPrefix(c.DashboardRoute, "/") {
		return fmt.Errorf("dashboard route must start with /: %s", c.DashboardRoute)
	}

	if c.StorageNamespace == "" {
		return fmt.Errorf("storage namespace must not be empty")
	}

	validTiers := []string{"free", "pro", "elite"}
	if !contains(validTiers, c.AdminTier) {
		return fmt.Errorf("invalid admin tier: %s (must be one of: %s)", c.AdminTier, strings.Join(validTiers, ", "))
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

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
