package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage stores objects as files below a base directory.
// Writes go to a temporary file that is renamed into place, so readers never
// see a half-written page.
type LocalStorage struct {
	basePath string
	baseURL  string
	logger   *slog.Logger
}

// NewLocalStorage creates the base directory if needed.
func NewLocalStorage(cfg LocalConfig, logger *slog.Logger) (*LocalStorage, error) {
	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base path: %w", err)
	}

	if err := os.MkdirAll(absPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	logger.Info("initialized local storage",
		"base_path", absPath,
		"base_url", baseURL,
	)

	return &LocalStorage{
		basePath: absPath,
		baseURL:  baseURL,
		logger:   logger,
	}, nil
}

// Put stores data at the specified key.
func (s *LocalStorage) Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	filePath, err := s.resolvePath(key)
	if err != nil {
		return &StorageError{Op: "Put", Key: key, Err: err}
	}

	if !opts.Overwrite {
		if _, err := os.Stat(filePath); err == nil {
			return &StorageError{Op: "Put", Key: key, Err: ErrKeyExists}
		}
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "Put", Key: key, Err: fmt.Errorf("failed to create directory: %w", err)}
	}

	tmp, err := os.CreateTemp(dir, ".put-*")
	if err != nil {
		return &StorageError{Op: "Put", Key: key, Err: fmt.Errorf("failed to create file: %w", err)}
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	src := data
	if opts.MaxSize > 0 {
		src = io.LimitReader(data, opts.MaxSize+1)
	}

	written, err := io.Copy(tmp, src)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return &StorageError{Op: "Put", Key: key, Err: fmt.Errorf("failed to write file: %w", err)}
	}
	if opts.MaxSize > 0 && written > opts.MaxSize {
		return &StorageError{Op: "Put", Key: key, Err: ErrTooLarge}
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return &StorageError{Op: "Put", Key: key, Err: fmt.Errorf("failed to set permissions: %w", err)}
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return &StorageError{Op: "Put", Key: key, Err: fmt.Errorf("failed to move file into place: %w", err)}
	}

	s.logger.Debug("stored file",
		"key", key,
		"path", filePath,
		"size", written,
		"content_type", DetectContentType(opts.ContentType, key, nil),
	)

	return nil
}

// Get retrieves the data at the specified key.
func (s *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}

	filePath, err := s.resolvePath(key)
	if err != nil {
		return nil, ObjectInfo{}, &StorageError{Op: "Get", Key: key, Err: err}
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ObjectInfo{}, &StorageError{Op: "Get", Key: key, Err: ErrNotFound}
		}
		return nil, ObjectInfo{}, &StorageError{Op: "Get", Key: key, Err: fmt.Errorf("failed to open file: %w", err)}
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, ObjectInfo{}, &StorageError{Op: "Get", Key: key, Err: fmt.Errorf("failed to stat file: %w", err)}
	}
	if stat.IsDir() {
		file.Close()
		return nil, ObjectInfo{}, &StorageError{Op: "Get", Key: key, Err: ErrNotFound}
	}

	info := ObjectInfo{
		Key:          key,
		Size:         stat.Size(),
		ContentType:  DetectContentType("", key, nil),
		LastModified: stat.ModTime(),
	}

	return file, info, nil
}

// Delete removes the object at the specified key.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	filePath, err := s.resolvePath(key)
	if err != nil {
		return &StorageError{Op: "Delete", Key: key, Err: err}
	}

	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return &StorageError{Op: "Delete", Key: key, Err: fmt.Errorf("failed to delete file: %w", err)}
	}

	s.logger.Debug("deleted file", "key", key, "path", filePath)
	return nil
}

// URL returns the object's URL below BaseURL; expires is ignored.
func (s *LocalStorage) URL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := s.resolvePath(key); err != nil {
		return "", &StorageError{Op: "URL", Key: key, Err: err}
	}
	if s.baseURL == "" {
		return "", &StorageError{Op: "URL", Key: key, Err: ErrNoPublicURL}
	}

	return s.baseURL + "/" + path.Clean(key), nil
}

// Exists checks if an object exists at the specified key.
func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	filePath, err := s.resolvePath(key)
	if err != nil {
		return false, &StorageError{Op: "Exists", Key: key, Err: err}
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &StorageError{Op: "Exists", Key: key, Err: fmt.Errorf("failed to stat file: %w", err)}
	}

	return !stat.IsDir(), nil
}

// resolvePath converts a key to a file path below basePath. Keys must be
// relative, slash-separated and stay inside the base directory.
func (s *LocalStorage) resolvePath(key string) (string, error) {
	if !fs.ValidPath(key) || key == "." {
		return "", ErrInvalidKey
	}

	absPath := filepath.Join(s.basePath, filepath.FromSlash(key))

	rel, err := filepath.Rel(s.basePath, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}

	return absPath, nil
}
