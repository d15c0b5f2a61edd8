package narration

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FilesystemStorage implements StorageBackend on the local filesystem.
// Keys become paths under basePath; the per-user directory namespace is
// created on first write.
type FilesystemStorage struct {
	basePath string
}

var _ StorageBackend = (*FilesystemStorage)(nil)

// NewFilesystemStorage creates a filesystem storage backend rooted at basePath.
func NewFilesystemStorage(basePath string) (*FilesystemStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FilesystemStorage{basePath: basePath}, nil
}

// Save writes data under key, overwriting any previous artifact.
func (fs *FilesystemStorage) Save(ctx context.Context, data io.Reader, key string) (string, error) {
	fullPath := filepath.Join(fs.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fullPath, nil
}

// Delete removes an artifact. A missing artifact is not an error.
func (fs *FilesystemStorage) Delete(ctx context.Context, location string) error {
	if err := os.Remove(location); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists checks whether an artifact is present.
func (fs *FilesystemStorage) Exists(ctx context.Context, location string) (bool, error) {
	_, err := os.Stat(location)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}
