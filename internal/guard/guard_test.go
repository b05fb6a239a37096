// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package guard

import (
	"testing"

	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/store"
)

func TestCanEnter_Matrix(t *testing.T) {
	doctorOnly := NewRoleSet(auth.RoleDoctor)

	tests := []struct {
		name        string
		required    RoleSet
		state       auth.State
		sessionRole auth.Role
		want        Decision
	}{
		{"unknown is pending", doctorOnly, auth.StateUnknown, "", Pending},
		{"anonymous redirects to login", doctorOnly, auth.StateAnonymous, "", RedirectToLogin},
		{"matching role allowed", doctorOnly, auth.StateAuthenticated, auth.RoleDoctor, Allow},
		{"wrong role redirects home", doctorOnly, auth.StateAuthenticated, auth.RolePatient, RedirectHome},
		{"admin wrong for doctor view", doctorOnly, auth.StateAuthenticated, auth.RoleAdmin, RedirectHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanEnter(tt.required, tt.state, tt.sessionRole)
			if got != tt.want {
				t.Errorf("CanEnter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanEnter_EveryRoleTimesEveryState(t *testing.T) {
	for _, viewRole := range auth.Roles() {
		required := NewRoleSet(viewRole)

		if got := CanEnter(required, auth.StateUnknown, ""); got != Pending {
			t.Errorf("[%s view] Unknown = %v, want PENDING", viewRole, got)
		}
		if got := CanEnter(required, auth.StateAnonymous, ""); got != RedirectToLogin {
			t.Errorf("[%s view] Anonymous = %v, want REDIRECT_LOGIN", viewRole, got)
		}
		for _, sessRole := range auth.Roles() {
			got := CanEnter(required, auth.StateAuthenticated, sessRole)
			want := RedirectHome
			if sessRole == viewRole {
				want = Allow
			}
			if got != want {
				t.Errorf("[%s view] Authenticated(%s) = %v, want %v", viewRole, sessRole, got, want)
			}
		}
	}
}

func TestCanEnter_MultiRoleSet(t *testing.T) {
	staff := NewRoleSet(auth.RoleDoctor, auth.RoleAdmin)

	if got := CanEnter(staff, auth.StateAuthenticated, auth.RoleAdmin); got != Allow {
		t.Errorf("admin in staff set = %v, want ALLOW", got)
	}
	if got := CanEnter(staff, auth.StateAuthenticated, auth.RolePatient); got != RedirectHome {
		t.Errorf("patient in staff set = %v, want REDIRECT_HOME", got)
	}
}

func TestCheck_ReadsManager(t *testing.T) {
	st := store.NewMemStore()
	m := auth.NewManager(st, auth.Config{})

	required := NewRoleSet(auth.RoleAdmin)

	if got := Check(required, m); got != Pending {
		t.Errorf("before restore = %v, want PENDING", got)
	}

	m.Restore()
	if got := Check(required, m); got != RedirectToLogin {
		t.Errorf("after anonymous restore = %v, want REDIRECT_LOGIN", got)
	}

	if _, err := m.EstablishSession("x@y.com", auth.RoleAdmin, ""); err != nil {
		t.Fatal(err)
	}
	if got := Check(required, m); got != Allow {
		t.Errorf("authenticated admin = %v, want ALLOW", got)
	}

	m.ClearSession()
	if got := Check(required, m); got != RedirectToLogin {
		t.Errorf("after clear = %v, want REDIRECT_LOGIN", got)
	}
}

func TestDecision_String(t *testing.T) {
	tests := []struct {
		d    Decision
		want string
	}{
		{Pending, "PENDING"},
		{Allow, "ALLOW"},
		{RedirectToLogin, "REDIRECT_LOGIN"},
		{RedirectHome, "REDIRECT_HOME"},
		{Decision(42), "INVALID"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Decision(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
