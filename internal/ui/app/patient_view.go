// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// patient_view.go - Patient dashboard rendering.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/careconnect-tui/internal/portal"
)

var patientTabs = []string{"Overview", "Appointments", "Health Data", "Documents"}

// demoVitals are the canned readings recorded from the Health Data tab.
var demoVitals = portal.Vitals{
	BloodPressure: "120/80",
	HeartRate:     "72 bpm",
	Weight:        "70 kg",
	Temperature:   "98.6 F",
	BloodSugar:    "90 mg/dL",
}

// patientRowCount returns the navigable row count for the active section.
func (m Model) patientRowCount() int {
	switch patientTabs[m.tab] {
	case "Appointments":
		return len(m.patient.Appointments())
	case "Documents":
		return len(m.patient.Documents())
	default:
		return 0
	}
}

func (m Model) viewPatient() string {
	var body string
	switch patientTabs[m.tab] {
	case "Overview":
		body = m.viewPatientOverview()
	case "Appointments":
		body = m.viewPatientAppointments()
	case "Health Data":
		body = m.viewPatientVitals()
	case "Documents":
		body = m.viewPatientDocuments()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(patientTabs),
		"",
		m.theme.Container.Render(body),
	)
}

func (m Model) viewPatientOverview() string {
	vitals := m.patient.Vitals()
	appts := m.patient.Appointments()
	docs := m.patient.Documents()

	stats := m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.CardTitle.Render("At a Glance"),
		fmt.Sprintf("%s %s", m.theme.CardLabel.Render("Upcoming appointments:"), m.theme.CardValue.Render(fmt.Sprintf("%d", len(appts)))),
		fmt.Sprintf("%s %s", m.theme.CardLabel.Render("Documents on file:"), m.theme.CardValue.Render(fmt.Sprintf("%d", len(docs)))),
	))

	vitalsCard := m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.CardTitle.Render("Latest Vitals"),
		m.vitalLine("Blood pressure", vitals.BloodPressure),
		m.vitalLine("Heart rate", vitals.HeartRate),
		m.vitalLine("Blood sugar", vitals.BloodSugar),
	))

	insight := m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.CardTitle.Render("Health Insight"),
		m.theme.CardValue.Render(portal.HealthInsight()),
	))

	hint := m.theme.CardMeta.Render("v video consultation   m messages")

	return lipgloss.JoinVertical(lipgloss.Left, stats, vitalsCard, insight, hint)
}

// vitalLine formats a single labeled vital, showing "-" when unrecorded.
func (m Model) vitalLine(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s", m.theme.CardLabel.Render(label+":"), m.theme.CardValue.Render(value))
}

func (m Model) viewPatientAppointments() string {
	appts := m.patient.Appointments()
	rows := make([]string, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, fmt.Sprintf("%s - %s  %s %s  [%s, %s]",
			a.Doctor, a.Specialty, a.Date, a.Time, a.Status, a.Type))
	}

	header := m.theme.CardMeta.Render("Enter books a new appointment")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewRows(rows))
}

func (m Model) viewPatientVitals() string {
	v := m.patient.Vitals()
	lines := []struct {
		label, value string
	}{
		{"Blood pressure", v.BloodPressure},
		{"Heart rate", v.HeartRate},
		{"Weight", v.Weight},
		{"Temperature", v.Temperature},
		{"Blood sugar", v.BloodSugar},
	}

	var b strings.Builder
	for _, l := range lines {
		val := l.value
		if val == "" {
			val = "-"
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			m.theme.CardLabel.Render(l.label+":"),
			m.theme.CardValue.Render(val)))
	}
	b.WriteString(m.theme.CardMeta.Render("Enter records today's readings"))
	return m.theme.Card.Render(b.String())
}

func (m Model) viewPatientDocuments() string {
	docs := m.patient.Documents()
	rows := make([]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, fmt.Sprintf("%s  %s  %s  %s", d.Name, d.Type, d.Date, d.Size))
	}

	header := m.theme.CardMeta.Render("Enter uploads a document")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewRows(rows))
}
