package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
)

// clearEnv blanks every variable NewConfig reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "PORT", "LOG_LEVEL", "CATALOG_VARIANT", "BASE_URL", "TEMPLATES_DIR",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
		"STORAGE_PROVIDER", "LOCAL_STORAGE_PATH", "LOCAL_STORAGE_URL",
		"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_URL",
		"METRICS_USERNAME", "METRICS_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, catalog.VariantStandard, cfg.CatalogVariant)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "local", cfg.StorageProvider)
	assert.Equal(t, 120, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_VARIANT", "Classic")
	t.Setenv("BASE_URL", "https://pricing.example.com/")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, catalog.VariantClassic, cfg.CatalogVariant)
	assert.Equal(t, "https://pricing.example.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown variant", map[string]string{"CATALOG_VARIANT": "deluxe"}, "CATALOG_VARIANT"},
		{"port out of range", map[string]string{"PORT": "70000"}, "PORT"},
		{"zero rate limit", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
		{"zero rate limit window", map[string]string{"RATE_LIMIT_WINDOW": "0s"}, "RATE_LIMIT_WINDOW"},
		{"negative rate limit window", map[string]string{"RATE_LIMIT_WINDOW": "-5s"}, "RATE_LIMIT_WINDOW"},
		{"unknown storage", map[string]string{"STORAGE_PROVIDER": "s3"}, "STORAGE_PROVIDER"},
		{"r2 without account", map[string]string{"STORAGE_PROVIDER": "r2"}, "R2_ACCOUNT_ID"},
		{"r2 without bucket", map[string]string{
			"STORAGE_PROVIDER":     "r2",
			"R2_ACCOUNT_ID":        "acct",
			"R2_ACCESS_KEY_ID":     "key",
			"R2_SECRET_ACCESS_KEY": "secret",
		}, "R2_BUCKET_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewConfig_R2Complete(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_PROVIDER", "r2")
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "felo-pricing")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "r2", cfg.StorageProvider)
}
