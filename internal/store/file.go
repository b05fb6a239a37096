// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/careconnect-tui/internal/util"
)

// FileStore persists each key as a JSON file in a single directory.
type FileStore struct {
	// BaseDir is the directory holding one <key>.json file per key.
	// Default: ~/.careconnect/data/
	BaseDir string
}

// NewFileStore creates a store rooted at the default data directory.
func NewFileStore() (*FileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewFileStoreWithDir(filepath.Join(homeDir, ".careconnect", "data"))
}

// NewFileStoreWithDir creates a store rooted at a custom directory.
func NewFileStoreWithDir(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{BaseDir: baseDir}, nil
}

// filePath returns the on-disk path for a key.
func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.BaseDir, key+".json")
}

// Save writes the blob under key, fully replacing any prior value.
// The write is atomic, so a concurrent reader never sees a partial record.
func (s *FileStore) Save(key string, blob []byte) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if err := util.AtomicWriteFile(s.filePath(key), blob, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Load returns the blob stored under key, or ok=false if nothing is stored.
func (s *FileStore) Load(key string) ([]byte, bool, error) {
	if !validKey(key) {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Clear removes the value under key. Clearing an absent key is not an error.
func (s *FileStore) Clear(key string) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if err := os.Remove(s.filePath(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Keys lists every key currently stored, in directory order.
func (s *FileStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		// Skip in-flight atomic write temp files.
		if strings.HasPrefix(name, ".tmp-") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}
