// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// model.go - Top-level Bubble Tea model for the careconnect portal.
package app

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/jeranaias/careconnect-tui/internal/actions"
	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/portal"
	"github.com/jeranaias/careconnect-tui/internal/store"
	"github.com/jeranaias/careconnect-tui/internal/ui/styles"
)

// Model is the portal's top-level Bubble Tea model.
type Model struct {
	manager    *auth.Manager
	store      store.Store
	patient    *portal.PatientData
	doctor     *portal.DoctorData
	admin      *portal.AdminData
	dispatcher actions.Dispatcher
	watch      <-chan store.Change

	theme *styles.Theme
	keys  KeyMap

	// Routing. pending is true until the one-time restore reports back;
	// the view renders a neutral loading frame while it is set.
	route   Route
	pending bool

	// Layout
	width  int
	height int

	// Dashboard navigation
	tab    int
	cursor int

	// Sign in / sign up form
	form formModel

	// Transient state
	busy      bool
	notice    string
	noticeErr bool
	showHelp  bool
	spin      spinner.Model
}

// Option configures the model.
type Option func(*Model)

// WithWatch wires an external store-change channel into the model. Changes
// made by another careconnect process surface as status notices.
func WithWatch(ch <-chan store.Change) Option {
	return func(m *Model) { m.watch = ch }
}

// WithDispatcher overrides the quick-action dispatcher.
func WithDispatcher(d actions.Dispatcher) Option {
	return func(m *Model) { m.dispatcher = d }
}

// New creates the portal model. The session is not restored yet; Init
// schedules the restore and the model stays on the loading frame until
// it completes.
func New(manager *auth.Manager, st store.Store, opts ...Option) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		manager:    manager,
		store:      st,
		patient:    portal.NewPatientData(st),
		doctor:     portal.NewDoctorData(st),
		admin:      portal.NewAdminData(st),
		dispatcher: actions.NewStubDispatcher(),
		theme:      styles.NewTheme(),
		keys:       DefaultKeyMap(),
		route:      RouteLanding,
		pending:    true,
		spin:       sp,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.spin.Style = m.theme.Spinner
	return m
}

// navigate requests a route change. Every request passes through the
// authorization guard; the route that actually takes effect may differ.
func (m *Model) navigate(requested Route) {
	sess, _ := m.manager.Current()
	r := resolveRoute(requested, m.manager.State(), sess.Role)
	if r.pending {
		// Restore still in flight; keep the loading frame and remember
		// nothing. The restore handler re-navigates when it lands.
		return
	}
	if r.route != m.route {
		m.tab = 0
		m.cursor = 0
	}
	m.route = r.route
	if m.route == RouteLogin || m.route == RouteRegister {
		m.form = newForm(m.route == RouteRegister)
	}
}

// setNotice replaces the transient status notice.
func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}
