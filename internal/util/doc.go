// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for careconnect-tui.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file writes (temp file + fsync + rename)
//   - TruncateWidth: display-width-aware string truncation for table cells
//
// Nothing in here knows about sessions or the portal; keep it that way.
package util
