// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package guard

import "github.com/jeranaias/careconnect-tui/internal/auth"

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Pending means restore has not completed; no decision may be made yet.
	Pending Decision = iota

	// Allow permits the protected view to render.
	Allow

	// RedirectToLogin sends an anonymous user to the login view.
	RedirectToLogin

	// RedirectHome sends an authenticated user with the wrong role to the
	// public landing view, not to login.
	RedirectHome
)

// String returns a string representation of the Decision.
func (d Decision) String() string {
	switch d {
	case Pending:
		return "PENDING"
	case Allow:
		return "ALLOW"
	case RedirectToLogin:
		return "REDIRECT_LOGIN"
	case RedirectHome:
		return "REDIRECT_HOME"
	default:
		return "INVALID"
	}
}

// RoleSet is the statically declared set of roles allowed into a view.
type RoleSet []auth.Role

// NewRoleSet builds a role set from its members.
func NewRoleSet(roles ...auth.Role) RoleSet {
	return RoleSet(roles)
}

// Has reports whether the set contains the role.
func (rs RoleSet) Has(role auth.Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

// CanEnter decides whether a view declared for the given roles may render
// under the given session machine state. sessionRole is only consulted when
// state is Authenticated.
func CanEnter(required RoleSet, state auth.State, sessionRole auth.Role) Decision {
	switch state {
	case auth.StateUnknown:
		return Pending
	case auth.StateAnonymous:
		return RedirectToLogin
	case auth.StateAuthenticated:
		if required.Has(sessionRole) {
			return Allow
		}
		return RedirectHome
	default:
		return RedirectToLogin
	}
}

// Check is a convenience wrapper reading the state and session straight
// off the manager.
func Check(required RoleSet, m *auth.Manager) Decision {
	sess, _ := m.Current()
	return CanEnter(required, m.State(), sess.Role)
}
