// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app implements the careconnect portal TUI using Bubble Tea.
//
// The application is a single Model with a small router. Public routes
// (landing, sign in, sign up) render unconditionally; the three dashboard
// routes declare which roles may enter them, and every navigation passes
// through the authorization guard before a frame is drawn. While the
// session state is still Unknown a neutral loading frame renders instead,
// so a signed-in user never sees a login flash on startup.
//
// # Key Types
//
//   - Model: the top-level Bubble Tea model
//   - Route: the portal's navigable views
//
// # Usage
//
//	m := app.New(env.Manager, env.Store, cfg)
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package app
