// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/store"
)

func newTestModel(t *testing.T) (Model, *auth.Manager, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore()
	mgr := auth.NewManager(st, auth.Config{SimulatedLatency: 0})
	return New(mgr, st), mgr, st
}

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		name      string
		requested Route
		state     auth.State
		role      auth.Role
		want      Route
		pending   bool
	}{
		{"public landing ignores state", RouteLanding, auth.StateUnknown, "", RouteLanding, false},
		{"public login ignores state", RouteLogin, auth.StateAnonymous, "", RouteLogin, false},
		{"dashboard pending while unknown", RoutePatient, auth.StateUnknown, "", RoutePatient, true},
		{"dashboard redirects anonymous to login", RoutePatient, auth.StateAnonymous, "", RouteLogin, false},
		{"matching role allowed", RoutePatient, auth.StateAuthenticated, auth.RolePatient, RoutePatient, false},
		{"wrong role sent to landing", RouteAdmin, auth.StateAuthenticated, auth.RoleDoctor, RouteLanding, false},
		{"doctor allowed on doctor dashboard", RouteDoctor, auth.StateAuthenticated, auth.RoleDoctor, RouteDoctor, false},
		{"admin allowed on admin dashboard", RouteAdmin, auth.StateAuthenticated, auth.RoleAdmin, RouteAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveRoute(tt.requested, tt.state, tt.role)
			if got.route != tt.want || got.pending != tt.pending {
				t.Errorf("resolveRoute(%v, %v, %q) = (%v, %v), want (%v, %v)",
					tt.requested, tt.state, tt.role, got.route, got.pending, tt.want, tt.pending)
			}
		})
	}
}

func TestHomeRoute(t *testing.T) {
	if homeRoute(auth.RolePatient) != RoutePatient {
		t.Error("patient home mismatch")
	}
	if homeRoute(auth.RoleDoctor) != RouteDoctor {
		t.Error("doctor home mismatch")
	}
	if homeRoute(auth.RoleAdmin) != RouteAdmin {
		t.Error("admin home mismatch")
	}
	if homeRoute("") != RouteLanding {
		t.Error("empty role should land on the landing page")
	}
}

func TestModelStartsPending(t *testing.T) {
	m, _, _ := newTestModel(t)
	if !m.pending {
		t.Error("fresh model should be pending until restore completes")
	}
	view := m.View()
	if !strings.Contains(view, "Loading") {
		t.Errorf("pending view should be the loading frame, got %q", view)
	}
}

func TestRestoreLandsAnonymousOnLanding(t *testing.T) {
	m, mgr, _ := newTestModel(t)

	next, _ := m.Update(RestoredMsg{State: mgr.Restore()})
	got := next.(Model)

	if got.pending {
		t.Error("restore should clear pending")
	}
	if got.route != RouteLanding {
		t.Errorf("route = %v, want landing", got.route)
	}
}

func TestRestoreLandsSessionOnItsDashboard(t *testing.T) {
	st := store.NewMemStore()
	seed := auth.NewManager(st, auth.Config{SimulatedLatency: 0})
	if _, err := seed.EstablishSession("doc@example.com", auth.RoleDoctor, ""); err != nil {
		t.Fatalf("EstablishSession: %v", err)
	}

	mgr := auth.NewManager(st, auth.Config{SimulatedLatency: 0})
	m := New(mgr, st)

	next, _ := m.Update(RestoredMsg{State: mgr.Restore()})
	got := next.(Model)

	if got.route != RouteDoctor {
		t.Errorf("route = %v, want doctor dashboard", got.route)
	}
}

func TestSessionEstablishedNavigatesHome(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	m.pending = false

	sess, err := mgr.EstablishSession("jane@example.com", auth.RolePatient, "")
	if err != nil {
		t.Fatalf("EstablishSession: %v", err)
	}

	next, _ := m.Update(SessionEstablishedMsg{Session: sess})
	got := next.(Model)

	if got.route != RoutePatient {
		t.Errorf("route = %v, want patient dashboard", got.route)
	}
	if got.notice == "" {
		t.Error("expected a welcome notice")
	}
}

func TestSessionClearedReturnsToLanding(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	m.pending = false
	if _, err := mgr.EstablishSession("jane@example.com", auth.RolePatient, ""); err != nil {
		t.Fatalf("EstablishSession: %v", err)
	}
	m.route = RoutePatient

	mgr.ClearSession()
	next, _ := m.Update(SessionClearedMsg{})
	got := next.(Model)

	if got.route != RouteLanding {
		t.Errorf("route = %v, want landing", got.route)
	}
}

func TestNavigateBlocksWrongRole(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	m.pending = false
	if _, err := mgr.EstablishSession("jane@example.com", auth.RolePatient, ""); err != nil {
		t.Fatalf("EstablishSession: %v", err)
	}

	m.navigate(RouteAdmin)
	if m.route != RouteLanding {
		t.Errorf("patient navigating to admin should land on the landing page, got %v", m.route)
	}
}

func TestFormSubmitRequiresEmail(t *testing.T) {
	f := newForm(false)

	submitted, _ := f.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if submitted {
		t.Error("empty email should not submit")
	}
	if f.errText == "" {
		t.Error("expected a validation message")
	}
}

func TestFormRoleCycling(t *testing.T) {
	f := newForm(false)
	f.setFocus(focusRole)

	first := f.role()
	f.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	if f.role() == first {
		t.Error("right arrow should change the selected role")
	}
	f.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	if f.role() != first {
		t.Error("left arrow should cycle back")
	}
}

func TestDashboardViewsRender(t *testing.T) {
	st := store.NewMemStore()
	mgr := auth.NewManager(st, auth.Config{SimulatedLatency: 0})
	if _, err := mgr.EstablishSession("doc@example.com", auth.RoleDoctor, ""); err != nil {
		t.Fatalf("EstablishSession: %v", err)
	}

	m := New(mgr, st)
	m.pending = false
	m.route = RouteDoctor

	view := m.View()
	if !strings.Contains(view, "Patients") {
		t.Errorf("doctor dashboard missing Patients tab:\n%s", view)
	}
	if !strings.Contains(view, "John Doe") {
		t.Errorf("doctor dashboard missing seeded roster:\n%s", view)
	}
}

func TestAdminToggleUserFromKeyboard(t *testing.T) {
	st := store.NewMemStore()
	mgr := auth.NewManager(st, auth.Config{SimulatedLatency: 0})
	if _, err := mgr.EstablishSession("admin@example.com", auth.RoleAdmin, ""); err != nil {
		t.Fatalf("EstablishSession: %v", err)
	}

	m := New(mgr, st)
	m.pending = false
	m.route = RouteAdmin
	m.tab = 1 // Users

	before := m.admin.Users()[0].Status
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(Model)

	after := got.admin.Users()[0].Status
	if before == after {
		t.Errorf("toggling the first user should flip status, still %q", after)
	}
}

func TestPatientRecordsVitalsFromKeyboard(t *testing.T) {
	st := store.NewMemStore()
	mgr := auth.NewManager(st, auth.Config{SimulatedLatency: 0})
	if _, err := mgr.EstablishSession("jane@example.com", auth.RolePatient, ""); err != nil {
		t.Fatalf("EstablishSession: %v", err)
	}

	m := New(mgr, st)
	m.pending = false
	m.route = RoutePatient
	m.tab = 2 // Health Data

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(Model)

	if v := got.patient.Vitals(); v.BloodPressure == "" {
		t.Error("recording readings should persist vitals")
	}
}

func TestRouteString(t *testing.T) {
	names := map[Route]string{
		RouteLanding:  "landing",
		RouteLogin:    "login",
		RouteRegister: "register",
		RoutePatient:  "patient",
		RouteDoctor:   "doctor",
		RouteAdmin:    "admin",
		Route(99):     "unknown",
	}
	for r, want := range names {
		if got := r.String(); got != want {
			t.Errorf("Route(%d).String() = %q, want %q", r, got, want)
		}
	}
}
