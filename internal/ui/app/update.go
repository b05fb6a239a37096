// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// update.go - Message handling for the portal TUI.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/careconnect-tui/internal/actions"
	"github.com/jeranaias/careconnect-tui/internal/auth"
)

// Init schedules the one-time session restore, the spinner tick, and the
// store watcher drain.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		restoreCmd(m.manager),
		m.spin.Tick,
	}
	if cmd := watchStoreCmd(m.watch); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update is the Bubble Tea update loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.pending && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case RestoredMsg:
		m.pending = false
		if msg.State == auth.StateAuthenticated {
			sess, _ := m.manager.Current()
			m.navigate(homeRoute(sess.Role))
			m.setNotice(fmt.Sprintf("Welcome back, %s.", sess.Name), false)
			return m, expireNoticeCmd()
		}
		m.navigate(RouteLanding)
		return m, nil

	case SessionEstablishedMsg:
		m.busy = false
		m.navigate(homeRoute(msg.Session.Role))
		m.setNotice(fmt.Sprintf("Signed in as %s (%s).", msg.Session.Name, msg.Session.Role), false)
		return m, expireNoticeCmd()

	case SessionFailedMsg:
		m.busy = false
		m.form.errText = msg.Err.Error()
		return m, nil

	case SessionClearedMsg:
		m.navigate(RouteLanding)
		m.setNotice("Signed out.", false)
		return m, expireNoticeCmd()

	case StoreChangedMsg:
		cmds := []tea.Cmd{watchStoreCmd(m.watch)}
		if msg.Change.Key == auth.StorageKey {
			m.setNotice("Session changed in another window.", false)
			cmds = append(cmds, expireNoticeCmd())
		}
		return m, tea.Batch(cmds...)

	case ActionResultMsg:
		m.setNotice(msg.Result.Message, msg.Result.NotImplemented())
		return m, expireNoticeCmd()

	case NoticeExpiredMsg:
		m.notice = ""
		m.noticeErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings first. Help stays out of the form routes so "?"
	// can be typed into the text fields.
	inForm := m.route == RouteLogin || m.route == RouteRegister
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case !inForm && key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Logout):
		if m.manager.State() == auth.StateAuthenticated {
			return m, logoutCmd(m.manager)
		}
	}

	if m.pending {
		return m, nil
	}

	switch m.route {
	case RouteLanding:
		return m.handleLandingKey(msg)
	case RouteLogin, RouteRegister:
		return m.handleFormKey(msg)
	case RoutePatient:
		return m.handlePatientKey(msg)
	case RouteDoctor:
		return m.handleDoctorKey(msg)
	case RouteAdmin:
		return m.handleAdminKey(msg)
	}
	return m, nil
}

func (m Model) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Login):
		m.navigate(RouteLogin)
	case key.Matches(msg, m.keys.Register):
		m.navigate(RouteRegister)
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.navigate(RouteLanding)
		return m, nil
	case "ctrl+t":
		// Toggle between sign in and sign up, keeping typed values.
		if m.route == RouteLogin {
			m.route = RouteRegister
		} else {
			m.route = RouteLogin
		}
		m.form.registering = m.route == RouteRegister
		return m, nil
	}

	submitted, cmd := m.form.handleKey(msg)
	if !submitted {
		return m, cmd
	}

	email, name, role := m.form.values()
	m.busy = true
	return m, tea.Batch(
		establishCmd(m.manager, email, role, name),
		m.spin.Tick,
	)
}

// tabCount returns the section count for the active dashboard.
func (m Model) tabCount() int {
	switch m.route {
	case RoutePatient:
		return len(patientTabs)
	case RouteDoctor:
		return len(doctorTabs)
	case RouteAdmin:
		return len(adminTabs)
	default:
		return 1
	}
}

// moveTab advances the dashboard section and resets the cursor.
func (m *Model) moveTab(delta int) {
	n := m.tabCount()
	m.tab = ((m.tab+delta)%n + n) % n
	m.cursor = 0
}

// moveCursor moves the list cursor within [0, max).
func (m *Model) moveCursor(delta, max int) {
	if max <= 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= max {
		m.cursor = max - 1
	}
}

func (m Model) handlePatientKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.moveTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.moveTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, m.patientRowCount())
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, m.patientRowCount())
		return m, nil
	case key.Matches(msg, m.keys.Select):
		switch patientTabs[m.tab] {
		case "Appointments":
			if _, err := m.patient.BookAppointment(); err != nil {
				m.setNotice("Could not save the appointment.", true)
				return m, expireNoticeCmd()
			}
			m.setNotice("Appointment booked with Dr. Sarah Smith.", false)
			return m, expireNoticeCmd()
		case "Health Data":
			if err := m.patient.SaveVitals(demoVitals); err != nil {
				m.setNotice("Could not save the readings.", true)
				return m, expireNoticeCmd()
			}
			m.setNotice("Health readings recorded.", false)
			return m, expireNoticeCmd()
		case "Documents":
			if _, err := m.patient.UploadDocument(); err != nil {
				m.setNotice("Could not save the document.", true)
				return m, expireNoticeCmd()
			}
			m.setNotice("Document uploaded.", false)
			return m, expireNoticeCmd()
		}
		return m, nil
	}

	switch msg.String() {
	case "v":
		return m, dispatchActionCmd(m.dispatcher, actions.ActionVideoConsult)
	case "m":
		return m, dispatchActionCmd(m.dispatcher, actions.ActionMessaging)
	}
	return m, nil
}

func (m Model) handleDoctorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.moveTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.moveTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, m.doctorRowCount())
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, m.doctorRowCount())
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if doctorTabs[m.tab] == "Prescriptions" {
			if _, err := m.doctor.AddPrescription(); err != nil {
				m.setNotice("Could not save the prescription.", true)
				return m, expireNoticeCmd()
			}
			m.setNotice("Prescription added.", false)
			return m, expireNoticeCmd()
		}
		return m, nil
	}

	if msg.String() == "m" {
		return m, dispatchActionCmd(m.dispatcher, actions.ActionMessaging)
	}
	return m, nil
}

func (m Model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.moveTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.moveTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, m.adminRowCount())
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, m.adminRowCount())
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if adminTabs[m.tab] == "Users" {
			users := m.admin.Users()
			if m.cursor < len(users) {
				u, err := m.admin.ToggleUserStatus(users[m.cursor].ID)
				if err != nil {
					m.setNotice("Could not update the user.", true)
					return m, expireNoticeCmd()
				}
				m.setNotice(fmt.Sprintf("%s is now %s.", u.Name, u.Status), false)
				return m, expireNoticeCmd()
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "x":
		if adminTabs[m.tab] == "Users" {
			users := m.admin.Users()
			if m.cursor < len(users) {
				name := users[m.cursor].Name
				if err := m.admin.DeleteUser(users[m.cursor].ID); err != nil {
					m.setNotice("Could not delete the user.", true)
					return m, expireNoticeCmd()
				}
				m.moveCursor(0, m.adminRowCount())
				m.setNotice(fmt.Sprintf("Deleted %s.", name), false)
				return m, expireNoticeCmd()
			}
		}
	case "a":
		return m, dispatchActionCmd(m.dispatcher, actions.ActionAssignDoctor)
	case "c":
		return m, dispatchActionCmd(m.dispatcher, actions.ActionModerateContent)
	case "g":
		return m, dispatchActionCmd(m.dispatcher, actions.ActionGenerateReport)
	}
	return m, nil
}
