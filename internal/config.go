package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Which plan catalog the site serves ("standard" or "classic")
	CatalogVariant catalog.Variant

	// Public base URL (canonical links, export index)
	BaseURL string

	// Reload templates from disk on every request (development only)
	TemplatesDir string

	// Rate limit for the JSON and partial endpoints, per client IP
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Storage Configuration for static exports
	StorageProvider string // "local" or "r2"

	// Local Storage (development)
	LocalStoragePath string // Base directory for exported files
	LocalStorageURL  string // Base URL for accessing exported files

	// R2 Storage (production)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string // Optional custom domain URL

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

// IsDevelopment reports whether the app runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		BaseURL:      strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		TemplatesDir: getEnv("TEMPLATES_DIR", ""),

		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		// Storage defaults to local filesystem for development
		StorageProvider:  getEnv("STORAGE_PROVIDER", "local"),
		LocalStoragePath: getEnv("LOCAL_STORAGE_PATH", "./dist"),
		LocalStorageURL:  getEnv("LOCAL_STORAGE_URL", "http://localhost:8080/dist"),

		// R2 configuration (production only)
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	variant, err := catalog.ParseVariant(getEnv("CATALOG_VARIANT", string(catalog.DefaultVariant)))
	if err != nil {
		return nil, fmt.Errorf("CATALOG_VARIANT must be either 'standard' or 'classic', got: %s", os.Getenv("CATALOG_VARIANT"))
	}
	cfg.CatalogVariant = variant

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got: %d", cfg.Port)
	}
	if cfg.RateLimitRequests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got: %d", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got: %s", cfg.RateLimitWindow)
	}

	if err := cfg.validateStorage(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validateStorage() error {
	switch c.StorageProvider {
	case "local":
		return nil
	case "r2":
		if c.R2AccountID == "" {
			return fmt.Errorf("R2_ACCOUNT_ID is required when STORAGE_PROVIDER is 'r2'")
		}
		if c.R2AccessKeyID == "" {
			return fmt.Errorf("R2_ACCESS_KEY_ID is required when STORAGE_PROVIDER is 'r2'")
		}
		if c.R2SecretAccessKey == "" {
			return fmt.Errorf("R2_SECRET_ACCESS_KEY is required when STORAGE_PROVIDER is 'r2'")
		}
		if c.R2BucketName == "" {
			return fmt.Errorf("R2_BUCKET_NAME is required when STORAGE_PROVIDER is 'r2'")
		}
		return nil
	default:
		return fmt.Errorf("STORAGE_PROVIDER must be either 'local' or 'r2', got: %s", c.StorageProvider)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
