// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides keyed blob persistence for careconnect-tui.
//
// The portal keeps all of its durable state (the current session, dashboard
// collections) as small JSON blobs under fixed, well-known keys. This package
// owns durability but not meaning: it stores and returns opaque bytes and
// never interprets the records it holds.
//
// # Key Types
//
//   - Store: the save/load/clear interface consumers depend on
//   - FileStore: production implementation, one JSON file per key with
//     atomic writes
//   - MemStore: in-memory implementation for tests, with injectable write
//     failure
//   - Watcher: fsnotify-based change notifications, so a second running
//     instance observes writes made by this one
//
// # Storage Location
//
// Blobs are stored in ~/.careconnect/data/ as <key>.json files.
package store
