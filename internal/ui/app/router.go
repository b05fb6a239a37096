// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// router.go - Route table and guard wiring for the portal TUI.
package app

import (
	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/guard"
)

// Route identifies a navigable portal view.
type Route int

const (
	RouteLanding Route = iota
	RouteLogin
	RouteRegister
	RoutePatient
	RouteDoctor
	RouteAdmin
)

// String returns the route name for logging and tests.
func (r Route) String() string {
	switch r {
	case RouteLanding:
		return "landing"
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RoutePatient:
		return "patient"
	case RouteDoctor:
		return "doctor"
	case RouteAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// requiredRoles declares which roles may enter each protected route.
// Routes absent from the table are public.
var requiredRoles = map[Route]guard.RoleSet{
	RoutePatient: guard.NewRoleSet(auth.RolePatient),
	RouteDoctor:  guard.NewRoleSet(auth.RoleDoctor),
	RouteAdmin:   guard.NewRoleSet(auth.RoleAdmin),
}

// homeRoute returns the dashboard route for a role. Anonymous or
// unrecognized sessions land on the public landing page.
func homeRoute(role auth.Role) Route {
	switch role {
	case auth.RolePatient:
		return RoutePatient
	case auth.RoleDoctor:
		return RouteDoctor
	case auth.RoleAdmin:
		return RouteAdmin
	default:
		return RouteLanding
	}
}

// resolved is the outcome of routing a navigation request through the
// authorization guard.
type resolved struct {
	route   Route
	pending bool
}

// resolveRoute applies the guard to a requested route. Public routes pass
// through untouched. For protected routes the guard decision maps to the
// frame that actually renders: Pending keeps the loading frame up,
// RedirectToLogin swaps in the sign-in view, and RedirectHome sends a
// wrong-role session to the public landing page.
func resolveRoute(requested Route, state auth.State, sessionRole auth.Role) resolved {
	required, protected := requiredRoles[requested]
	if !protected {
		return resolved{route: requested}
	}

	switch guard.CanEnter(required, state, sessionRole) {
	case guard.Allow:
		return resolved{route: requested}
	case guard.Pending:
		return resolved{route: requested, pending: true}
	case guard.RedirectHome:
		return resolved{route: RouteLanding}
	default:
		return resolved{route: RouteLogin}
	}
}
