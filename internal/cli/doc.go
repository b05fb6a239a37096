// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command parsing and handlers for careconnect.
//
// Running the binary with no arguments starts the TUI. Everything else is
// a subcommand operating on the same local data the TUI uses:
//
//	careconnect                      Start the portal TUI
//	careconnect login EMAIL --role R Sign in (demo mode, no password)
//	careconnect register EMAIL       Sign up (same transition as login)
//	careconnect logout               End the current session
//	careconnect whoami               Show the current session
//	careconnect status               Show storage and session status
//	careconnect config               Show or change configuration
//	careconnect data                 Inspect stored portal collections
//	careconnect version              Show version information
package cli
