package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem stores blobs as files under a base directory, keys mapping
// directly to relative file paths. Served publicly via the /uploads static
// route.
type Filesystem struct {
	basePath string
	baseURL  string
}

func NewFilesystem(basePath, baseURL string) (*Filesystem, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage: base path required")
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("storage: create base path: %w", err)
	}

	return &Filesystem{
		basePath: abs,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (f *Filesystem) Put(key string, data []byte) (string, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("storage: create directory: %w", err)
	}

	// Write-then-rename so a crashed upload never leaves a half-written
	// blob behind a live URL.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", fmt.Errorf("storage: write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("storage: rename temp file: %w", err)
	}

	return f.PublicURL(key), nil
}

func (f *Filesystem) PublicURL(key string) string {
	return f.baseURL + "/uploads/" + key
}

func (f *Filesystem) fullPath(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return "", ErrInvalidKey
		}
	}
	return filepath.Join(f.basePath, filepath.FromSlash(key)), nil
}
