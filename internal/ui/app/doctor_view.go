// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// doctor_view.go - Doctor dashboard rendering.
package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var doctorTabs = []string{"Patients", "Appointments", "Prescriptions"}

// doctorRowCount returns the navigable row count for the active section.
func (m Model) doctorRowCount() int {
	switch doctorTabs[m.tab] {
	case "Patients":
		return len(m.doctor.Patients())
	case "Appointments":
		return len(m.doctor.Appointments())
	case "Prescriptions":
		return len(m.doctor.Prescriptions())
	default:
		return 0
	}
}

func (m Model) viewDoctor() string {
	var body string
	switch doctorTabs[m.tab] {
	case "Patients":
		body = m.viewDoctorPatients()
	case "Appointments":
		body = m.viewDoctorAppointments()
	case "Prescriptions":
		body = m.viewDoctorPrescriptions()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(doctorTabs),
		"",
		m.theme.Container.Render(body),
	)
}

func (m Model) viewDoctorPatients() string {
	patients := m.doctor.Patients()
	rows := make([]string, 0, len(patients))
	for _, p := range patients {
		status := m.theme.BadgeStable.Render(p.Status)
		if p.Status != "Stable" {
			status = m.theme.BadgeWatch.Render(p.Status)
		}
		rows = append(rows, fmt.Sprintf("%s (%d)  %s  last visit %s  %s",
			p.Name, p.Age, p.Condition, p.LastVisit, status))
	}

	header := m.theme.CardMeta.Render(fmt.Sprintf("%d patient(s) on your roster", len(patients)))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewRows(rows))
}

func (m Model) viewDoctorAppointments() string {
	slots := m.doctor.Appointments()
	rows := make([]string, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, fmt.Sprintf("%s  %s %s  [%s, %s]",
			s.Patient, s.Date, s.Time, s.Status, s.Type))
	}

	header := m.theme.CardMeta.Render("Today's schedule")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewRows(rows))
}

func (m Model) viewDoctorPrescriptions() string {
	scripts := m.doctor.Prescriptions()
	rows := make([]string, 0, len(scripts))
	for _, p := range scripts {
		rows = append(rows, fmt.Sprintf("%s: %s %s, %s (%s)",
			p.Patient, p.Medication, p.Dosage, p.Duration, p.Date))
	}

	header := m.theme.CardMeta.Render("Enter writes a new prescription")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewRows(rows))
}
