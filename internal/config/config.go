package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Scoring  ScoringConfig
	Export   ExportConfig
}

// DatabaseConfig holds database connection settings. Persistence is
// optional: an empty URL disables the Postgres run repository.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ScoringConfig holds quality-computation defaults
type ScoringConfig struct {
	ModelPath          string
	EnableConfInterval bool
	BootstrapResamples int
	BootstrapSeed      int64
	CILevel            float64
	AggregateMethod    string
	DisableAVX         bool
}

// ExportConfig holds report/export output settings
type ExportConfig struct {
	Dir string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Scoring: ScoringConfig{
			ModelPath:          getEnvOrDefault("VMAF_MODEL_PATH", "model/vmaf_v0.6.1.json"),
			EnableConfInterval: getEnvBoolOrDefault("VMAF_CONF_INTERVAL", false),
			BootstrapResamples: getEnvIntOrDefault("VMAF_BOOTSTRAP_RESAMPLES", 100),
			BootstrapSeed:      int64(getEnvIntOrDefault("VMAF_BOOTSTRAP_SEED", 42)),
			CILevel:            getEnvFloatOrDefault("VMAF_CI_LEVEL", 0.95),
			AggregateMethod:    getEnvOrDefault("VMAF_POOL_METHOD", "mean"),
			DisableAVX:         getEnvBoolOrDefault("VMAF_DISABLE_AVX", false),
		},
		Export: ExportConfig{
			Dir: getEnvOrDefault("EXPORT_DIR", "."),
		},
	}
	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
