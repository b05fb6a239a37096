// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// admin_view.go - Admin dashboard rendering.
package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var adminTabs = []string{"Overview", "Users", "Doctors"}

// adminRowCount returns the navigable row count for the active section.
func (m Model) adminRowCount() int {
	switch adminTabs[m.tab] {
	case "Users":
		return len(m.admin.Users())
	case "Doctors":
		return len(m.admin.Doctors())
	default:
		return 0
	}
}

func (m Model) viewAdmin() string {
	var body string
	switch adminTabs[m.tab] {
	case "Overview":
		body = m.viewAdminOverview()
	case "Users":
		body = m.viewAdminUsers()
	case "Doctors":
		body = m.viewAdminDoctors()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(adminTabs),
		"",
		m.theme.Container.Render(body),
	)
}

func (m Model) viewAdminOverview() string {
	stats := m.admin.Stats()

	card := m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.CardTitle.Render("Platform Overview"),
		fmt.Sprintf("%s %s", m.theme.CardLabel.Render("Total users:"), m.theme.CardValue.Render(fmt.Sprintf("%d", stats.TotalUsers))),
		fmt.Sprintf("%s %s", m.theme.CardLabel.Render("Doctors:"), m.theme.CardValue.Render(fmt.Sprintf("%d", stats.TotalDoctors))),
		fmt.Sprintf("%s %s", m.theme.CardLabel.Render("Patients:"), m.theme.CardValue.Render(fmt.Sprintf("%d", stats.TotalPatients))),
		fmt.Sprintf("%s %s", m.theme.CardLabel.Render("Active:"), m.theme.CardValue.Render(fmt.Sprintf("%d", stats.ActiveUsers))),
	))

	hint := m.theme.CardMeta.Render("a assign doctor   c moderate content   g generate report")
	return lipgloss.JoinVertical(lipgloss.Left, card, hint)
}

func (m Model) viewAdminUsers() string {
	users := m.admin.Users()
	rows := make([]string, 0, len(users))
	for _, u := range users {
		badge := m.theme.BadgeActive.Render(u.Status)
		if u.Status != "active" {
			badge = m.theme.BadgeInactive.Render(u.Status)
		}
		rows = append(rows, fmt.Sprintf("%s <%s>  %s  joined %s  %s",
			u.Name, u.Email, u.Role, u.JoinDate, badge))
	}

	header := m.theme.CardMeta.Render("Enter toggles status   x deletes")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewRows(rows))
}

func (m Model) viewAdminDoctors() string {
	docs := m.admin.Doctors()
	rows := make([]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, fmt.Sprintf("%s  %s  %d patients  %.1f rating  %s",
			d.Name, d.Specialty, d.Patients, d.Rating, d.Experience))
	}

	header := m.theme.CardMeta.Render("Doctor directory")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewRows(rows))
}
