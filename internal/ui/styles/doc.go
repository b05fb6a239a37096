// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the careconnect TUI.
//
// All colors are defined as Lip Gloss AdaptiveColor values so the portal
// renders correctly on both light and dark terminal backgrounds. The Theme
// struct groups every style the views need; construct one with NewTheme,
// which detects the terminal's color profile via termenv.
//
// # Key Types
//
//   - Theme: all configured lipgloss styles for the application
//   - StatusIndicatorSet: ASCII shape indicators for colorblind accessibility
//
// # Usage
//
//	theme := styles.NewTheme()
//	fmt.Println(theme.HeaderTitle.Render("CareConnect"))
//
// Role accents (patient blue, doctor teal, admin purple) come from
// RoleColor and are used by the dashboard headers and badges.
package styles
