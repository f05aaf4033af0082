// Package storage provides the object storage targets of the static export.
//
// The Storage interface has two implementations:
//   - LocalStorage: a directory on disk, for development and self-hosting
//   - R2Storage: Cloudflare R2 (S3-compatible), for production hosting
//
// Keys are slash-separated and relative; see PageKey and friends for the
// layout the exporter writes.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Storage defines the interface for file storage operations.
// All methods are context-aware for timeout and cancellation support.
type Storage interface {
	// Put stores data at the specified key. It fails with ErrKeyExists when
	// the key is taken and opts.Overwrite is false.
	Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error

	// Get retrieves the data at the specified key. The caller must close the
	// reader. Returns ErrNotFound if the key doesn't exist.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes the object at the specified key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns a URL for the object. A zero expires asks for a permanent
	// public URL and fails with ErrNoPublicURL when the backend has none.
	URL(ctx context.Context, key string, expires time.Duration) (string, error)

	// Exists checks if an object exists at the specified key.
	Exists(ctx context.Context, key string) (bool, error)
}

// =============================================================================
// Data Types
// =============================================================================

// PutOptions configures how an object is stored.
type PutOptions struct {
	// ContentType is the MIME type. Empty means detect from the key.
	ContentType string

	// CacheControl is sent to HTTP clients by backends that serve objects.
	CacheControl string

	// MaxSize is the maximum allowed size in bytes; 0 means no limit.
	MaxSize int64

	// Overwrite allows replacing an existing object at the same key.
	Overwrite bool
}

// ObjectInfo contains metadata about a stored object.
type ObjectInfo struct {
	Key          string    // Object key/path
	Size         int64     // Size in bytes
	ContentType  string    // MIME type
	LastModified time.Time // Last modification time
	ETag         string    // Entity tag (if available)
}

// =============================================================================
// Configuration Types
// =============================================================================

// LocalConfig holds configuration for local filesystem storage.
type LocalConfig struct {
	// BasePath is the root directory, e.g. "./dist".
	BasePath string

	// BaseURL is the public URL prefix of BasePath, e.g. "http://localhost:8080/dist".
	BaseURL string
}

// R2Config holds configuration for Cloudflare R2 storage.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string

	// PublicURL is the bucket's public domain. When empty, only presigned
	// URLs are available.
	PublicURL string

	// Region defaults to "auto".
	Region string

	// Endpoint overrides https://{account}.r2.cloudflarestorage.com.
	Endpoint string
}

// =============================================================================
// Provider Selection
// =============================================================================

const (
	// ProviderLocal identifies the local filesystem storage provider.
	ProviderLocal = "local"

	// ProviderR2 identifies the Cloudflare R2 storage provider.
	ProviderR2 = "r2"
)

// New returns the storage backend named by provider.
func New(provider string, local LocalConfig, r2 R2Config, logger *slog.Logger) (Storage, error) {
	switch provider {
	case ProviderLocal:
		return NewLocalStorage(local, logger)
	case ProviderR2:
		return NewR2Storage(r2, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", provider)
	}
}

// =============================================================================
// Key Layout
// =============================================================================

// Export layout:
//
//	pricing/{variant}/index.html                        default selection
//	pricing/{variant}/{segment}/{currency}/index.html   one page per selection
//	pricing/{variant}/manifest.json                     export run summary
//	pricing/{variant}/static/{asset}                    stylesheets

const exportRoot = "pricing"

// VariantRoot is the key prefix of everything exported for a variant.
func VariantRoot(variant string) string {
	return path.Join(exportRoot, variant)
}

// PageKey is the key of the page for one segment and currency.
func PageKey(variant, segment, currency string) string {
	return path.Join(exportRoot, variant, segment, currency, "index.html")
}

// IndexKey is the key of the variant's landing page.
func IndexKey(variant string) string {
	return path.Join(exportRoot, variant, "index.html")
}

// ManifestKey is the key of the export manifest.
func ManifestKey(variant string) string {
	return path.Join(exportRoot, variant, "manifest.json")
}

// AssetKey is the key of a static asset, name relative to the static root.
func AssetKey(variant, name string) string {
	return path.Join(exportRoot, variant, "static", name)
}
