package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Gradebook
	Gradebook GradebookConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string
}

// GradebookConfig holds gradebook-specific settings.
type GradebookConfig struct {
	// Path to the CSV roster file
	CSVPath string

	// How many students the demo ranking shows
	TopN int
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	// Logging level: debug, info, warn, error
	LogLevel string
}

// Load loads configuration from environment variables.
// A .env file in the working directory is picked up if present.
func Load() (*Config, error) {
	// .env is optional; real env vars take precedence
	_ = godotenv.Load()

	env := Environment(getEnv("APP_ENV", "development"))

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "gradebook"),
			Environment: env,
			Debug:       env == EnvDevelopment || getEnvBool("APP_DEBUG", false),
			Version:     getEnv("APP_VERSION", "0.1.0"),
		},
		Gradebook: GradebookConfig{
			CSVPath: getEnv("GRADEBOOK_CSV_PATH", "students.csv"),
			TopN:    getEnvInt("GRADEBOOK_TOP_N", 3),
		},
		Observability: ObservabilityConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Gradebook.CSVPath == "" {
		errs = append(errs, "GRADEBOOK_CSV_PATH cannot be empty")
	}

	if c.Gradebook.TopN < 1 {
		errs = append(errs, "GRADEBOOK_TOP_N must be at least 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
