package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBackend persists each collection as one file under a base directory.
type DiskvBackend struct {
	d *diskv.Diskv
}

// NewDiskvBackend opens (creating if needed) a diskv store rooted at basePath.
func NewDiskvBackend(basePath string) (*DiskvBackend, error) {
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	d := diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(s string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
	return &DiskvBackend{d: d}, nil
}

func (b *DiskvBackend) Read(key string) ([]byte, error) {
	if !b.d.Has(key) {
		return nil, ErrNotFound
	}
	data, err := b.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", key, err)
	}
	return data, nil
}

func (b *DiskvBackend) Write(key string, data []byte) error {
	if err := b.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}

func (b *DiskvBackend) Close() error {
	return nil
}

// BasePath returns the directory holding the collections.
func (b *DiskvBackend) BasePath() string {
	return filepath.Clean(b.d.BasePath)
}
