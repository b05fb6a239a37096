// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// view.go - Frame rendering for the portal TUI.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/ui/styles"
	"github.com/jeranaias/careconnect-tui/internal/util"
)

// View renders the current frame.
func (m Model) View() string {
	// While the restore is pending nothing role-specific may render:
	// neither the dashboards nor the sign-in form, so a signed-in user
	// never sees a login flash.
	if m.pending {
		return m.viewLoading()
	}

	var body string
	switch m.route {
	case RouteLanding:
		body = m.viewLanding()
	case RouteLogin, RouteRegister:
		body = m.viewForm()
	case RoutePatient:
		body = m.viewPatient()
	case RouteDoctor:
		body = m.viewDoctor()
	case RouteAdmin:
		body = m.viewAdmin()
	}

	sections := []string{m.viewHeader(), body}
	if m.showHelp {
		sections = append(sections, m.viewHelp())
	}
	if m.notice != "" {
		sections = append(sections, m.viewNotice())
	}
	sections = append(sections, m.viewStatusBar())

	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewLoading() string {
	line := fmt.Sprintf("%s %s", m.spin.View(), m.theme.LoadingText.Render("Loading CareConnect..."))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
	}
	return line
}

func (m Model) viewHeader() string {
	brand := m.theme.HeaderBrand.Render("CareConnect")
	sub := m.theme.HeaderSubtitle.Render("Your Health, Our Priority")

	right := ""
	if sess, ok := m.manager.Current(); ok {
		roleStyle := lipgloss.NewStyle().Foreground(styles.RoleColor(string(sess.Role))).Bold(true)
		right = fmt.Sprintf("%s %s", roleStyle.Render(sess.Name), m.theme.CardMeta.Render("("+string(sess.Role)+")"))
	}

	left := brand + "  " + sub
	if right == "" {
		return m.theme.Container.Render(left)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return m.theme.Container.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) viewLanding() string {
	logo := m.theme.WelcomeLogo.Render("C A R E C O N N E C T")
	info := m.theme.WelcomeInfo.Render("Connect with trusted doctors, manage your health records,\nand take control of your wellness journey.")
	keys := fmt.Sprintf("%s %s    %s %s",
		m.theme.ShortcutKey.Render("l"), m.theme.ShortcutDesc.Render("sign in"),
		m.theme.ShortcutKey.Render("r"), m.theme.ShortcutDesc.Render("create account"))
	press := m.theme.WelcomePressKey.Render("q quits")

	box := m.theme.WelcomeBox.Render(lipgloss.JoinVertical(lipgloss.Center, logo, "", info, "", keys, press))
	if m.width > 0 && m.height > 4 {
		return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m Model) viewForm() string {
	title := "Sign In"
	submitLabel := "Enter submits - Ctrl+T switches to sign up"
	if m.form.registering {
		title = "Create Account"
		submitLabel = "Enter submits - Ctrl+T switches to sign in"
	}

	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.theme.FormLabel.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.form.email.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.FormLabel.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.form.name.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.FormLabel.Render("Role"))
	b.WriteString("\n")
	var opts []string
	for i, role := range formRoles {
		label := string(role)
		if i == m.form.roleIdx {
			if m.form.focus == focusRole {
				opts = append(opts, m.theme.RoleOptionFocus.Render(label))
			} else {
				opts = append(opts, m.theme.RoleOption.Underline(true).Render(label))
			}
		} else {
			opts = append(opts, m.theme.RoleOption.Render(label))
		}
	}
	b.WriteString(strings.Join(opts, " "))
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.LoadingText.Render(" Contacting the portal..."))
	} else if m.form.errText != "" {
		b.WriteString(m.theme.FormError.Render(m.form.errText))
	} else {
		b.WriteString(m.theme.FormHint.Render(submitLabel))
	}

	box := m.theme.FormBox.Render(b.String())
	if m.width > 0 && m.height > 4 {
		return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// viewTabs renders a dashboard's section tabs.
func (m Model) viewTabs(tabs []string) string {
	var parts []string
	for i, name := range tabs {
		if i == m.tab {
			parts = append(parts, m.theme.TabActive.Render(name))
		} else {
			parts = append(parts, m.theme.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// viewRows renders a cursor-navigable list of pre-formatted rows.
func (m Model) viewRows(rows []string) string {
	if len(rows) == 0 {
		return m.theme.CardMeta.Render("Nothing here yet.")
	}
	var b strings.Builder
	for i, row := range rows {
		if m.width > 4 {
			row = util.TruncateWidth(row, m.width-4)
		}
		if i == m.cursor {
			b.WriteString(m.theme.CardSelected.Render(row))
		} else {
			b.WriteString(m.theme.Card.Render(row))
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewNotice() string {
	if m.noticeErr {
		return m.theme.Container.Render(styles.RenderWarning(m.notice))
	}
	return m.theme.Container.Render(styles.RenderInfo(m.notice))
}

func (m Model) viewStatusBar() string {
	var parts []string

	state := m.manager.State()
	if state == auth.StateAuthenticated {
		parts = append(parts, m.theme.SessionBadge.Render(styles.StatusIndicators.Active+" signed in"))
	} else {
		parts = append(parts, m.theme.ShortcutDesc.Render(styles.StatusIndicators.Pending+" "+strings.ToLower(state.String())))
	}

	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}

	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.CardTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, group := range m.keys.FullHelp() {
		var line []string
		for _, binding := range group {
			h := binding.Help()
			line = append(line, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
		}
		b.WriteString(strings.Join(line, "   "))
		b.WriteString("\n")
	}
	return m.theme.Card.Render(b.String())
}
