package export

import (
	"fmt"
	"time"
)

// Config holds the configuration of an export run.
type Config struct {
	// Concurrency is the number of pages rendered and uploaded in parallel.
	// Default: 4
	Concurrency int

	// Timeout bounds the whole run, uploads included.
	// Default: 2 minutes
	Timeout time.Duration

	// Overwrite replaces objects left by a previous run. Without it the run
	// fails on the first existing key.
	// Default: true
	Overwrite bool

	// CacheControl is stored with every object for backends that serve them.
	// Default: "public, max-age=300"
	CacheControl string

	// MaxPageSize rejects pages larger than this many bytes.
	// Default: 1 MiB
	MaxPageSize int64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Concurrency:  4,
		Timeout:      2 * time.Minute,
		Overwrite:    true,
		CacheControl: "public, max-age=300",
		MaxPageSize:  1 << 20,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Concurrency > 32 {
		return fmt.Errorf("concurrency too high (max 32), got %d", c.Concurrency)
	}
	if c.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second, got %v", c.Timeout)
	}
	if c.MaxPageSize < 0 {
		return fmt.Errorf("max page size must not be negative, got %d", c.MaxPageSize)
	}
	return nil
}
