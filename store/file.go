/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores state blobs as plain JSON files under a base
// directory. Used by the CLI, where state lives under the user's config
// directory.
type FileBackend struct {
	baseDir string
}

// NewFileBackend returns a FileBackend rooted at baseDir, creating the
// directory if needed.
func NewFileBackend(baseDir string) (*FileBackend, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("store.file: failed to create %v: %w", baseDir,
			err)
	}
	return &FileBackend{baseDir: baseDir}, nil
}

// DefaultBaseDir returns the per-user state directory
// (e.g. ~/.config/pinoscore).
func DefaultBaseDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("store.file: cannot determine config dir: %w",
			err)
	}
	return filepath.Join(configDir, "pinoscore"), nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.baseDir, key+".json")
}

func (b *FileBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store.file: failed to read %v: %w",
			b.path(key), err)
	}
	return data, true, nil
}

// Put writes data to a temporary file and renames it into place so a crash
// mid-write never leaves a truncated blob.
func (b *FileBackend) Put(ctx context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(b.baseDir, key+".tmp*")
	if err != nil {
		return fmt.Errorf("store.file: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store.file: failed to write %v: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store.file: failed to close %v: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, b.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store.file: failed to rename %v: %w", tmpName, err)
	}
	return nil
}

func (b *FileBackend) Delete(ctx context.Context, key string) error {
	err := os.Remove(b.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store.file: failed to remove %v: %w", b.path(key),
			err)
	}
	return nil
}
