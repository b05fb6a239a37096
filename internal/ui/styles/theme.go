// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the careconnect TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderBrand    lipgloss.Style

	// ==========================================================================
	// CARD STYLES (dashboard panels)
	// ==========================================================================

	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	CardLabel    lipgloss.Style
	CardValue    lipgloss.Style
	CardMeta     lipgloss.Style
	CardSelected lipgloss.Style

	// ==========================================================================
	// STATUS BADGE STYLES
	// ==========================================================================

	BadgeActive   lipgloss.Style
	BadgeInactive lipgloss.Style
	BadgeStable   lipgloss.Style
	BadgeWatch    lipgloss.Style

	// ==========================================================================
	// FORM STYLES (login / registration)
	// ==========================================================================

	FormBox         lipgloss.Style
	FormTitle       lipgloss.Style
	FormLabel       lipgloss.Style
	FormHint        lipgloss.Style
	FormError       lipgloss.Style
	RoleOption      lipgloss.Style
	RoleOptionFocus lipgloss.Style

	// ==========================================================================
	// NAVIGATION / TAB STYLES
	// ==========================================================================

	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	SessionBadge lipgloss.Style

	// ==========================================================================
	// NOTICE STYLES
	// ==========================================================================

	NoticeInfo  lipgloss.Style
	NoticeError lipgloss.Style
	Spinner     lipgloss.Style
	LoadingText lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox      lipgloss.Style
	WelcomeLogo     lipgloss.Style
	WelcomeInfo     lipgloss.Style
	WelcomePressKey lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	// Dashboard cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.CardLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.CardValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.CardMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CardSelected = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 2)

	// Status badges
	t.BadgeActive = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.BadgeInactive = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.BadgeStable = lipgloss.NewStyle().
		Foreground(Emerald)

	t.BadgeWatch = lipgloss.NewStyle().
		Foreground(Amber)

	// Login / registration form
	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(1, 4)

	t.FormTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		Align(lipgloss.Center)

	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FormHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.FormError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.RoleOption = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.RoleOptionFocus = lipgloss.NewStyle().
		Background(Teal).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	// Navigation tabs
	t.Tab = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	t.TabActive = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true).
		Underline(true).
		Padding(0, 2)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.SessionBadge = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	// Notices and loading
	t.NoticeInfo = lipgloss.NewStyle().
		Foreground(Blue)

	t.NoticeError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Teal)

	t.LoadingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.WelcomePressKey = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
