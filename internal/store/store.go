// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidKey is returned when a key is empty or would escape the
	// data directory.
	ErrInvalidKey = errors.New("invalid store key")

	// ErrWriteFailed is returned (wrapped) when the underlying storage
	// rejected a write. Callers treat this as non-fatal: the in-memory
	// value stays authoritative for the remainder of the process.
	ErrWriteFailed = errors.New("store write failed")
)

// Store is the keyed blob interface all portal persistence goes through.
//
// Save fully overwrites any prior value under the key. Load reports absence
// with ok=false rather than an error; a missing key is a normal condition.
// Clear is idempotent.
type Store interface {
	Save(key string, blob []byte) error
	Load(key string) (blob []byte, ok bool, err error)
	Clear(key string) error
	Keys() ([]string, error)
}

// validKey reports whether key is usable as a storage key. Keys map to file
// names, so path separators and relative traversal are rejected outright.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	if strings.ContainsAny(key, "/\\") {
		return false
	}
	if key == "." || key == ".." {
		return false
	}
	return true
}
