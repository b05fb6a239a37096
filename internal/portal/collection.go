// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"encoding/json"

	"github.com/jeranaias/careconnect-tui/internal/store"
)

// collection binds a record slice to its store key. A missing or malformed
// blob reads as an empty collection; it is never an error that reaches a
// dashboard.
type collection[T any] struct {
	store store.Store
	key   string
}

// load returns the stored records and whether anything usable was stored.
func (c collection[T]) load() ([]T, bool) {
	blob, ok, err := c.store.Load(c.key)
	if err != nil || !ok {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, false
	}
	return items, true
}

// save replaces the stored records wholesale.
func (c collection[T]) save(items []T) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Save(c.key, blob)
}

// loadOrSeed returns the stored records, seeding and persisting the given
// defaults on first use (or after corruption).
func (c collection[T]) loadOrSeed(seed []T) []T {
	if items, ok := c.load(); ok {
		return items
	}
	// Seeding is best-effort; the returned slice is usable either way.
	_ = c.save(seed)
	return seed
}

// single binds one record (not a slice) to its store key.
type single[T any] struct {
	store store.Store
	key   string
}

func (s single[T]) load() (T, bool) {
	var item T
	blob, ok, err := s.store.Load(s.key)
	if err != nil || !ok {
		return item, false
	}
	if err := json.Unmarshal(blob, &item); err != nil {
		var zero T
		return zero, false
	}
	return item, true
}

func (s single[T]) save(item T) error {
	blob, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.store.Save(s.key, blob)
}
