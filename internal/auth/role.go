// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRole is returned when a role value is not one of the three
// enumerated portal roles. No state transition occurs on rejection.
var ErrInvalidRole = errors.New("invalid role")

// Role determines which portal views a session may enter.
type Role string

const (
	// RolePatient is the patient portal role.
	RolePatient Role = "patient"

	// RoleDoctor is the doctor portal role.
	RoleDoctor Role = "doctor"

	// RoleAdmin is the administrator portal role.
	RoleAdmin Role = "admin"
)

// Roles lists every valid role, in display order.
func Roles() []Role {
	return []Role{RolePatient, RoleDoctor, RoleAdmin}
}

// ParseRole converts a user-supplied string into a Role.
// Matching is case-insensitive; anything outside the enumeration is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	default:
		return false
	}
}

// String returns the wire form of the role.
func (r Role) String() string {
	return string(r)
}

// defaultNames holds the fixed per-role display names used when the user
// did not supply one. These mirror the portal's demo accounts.
var defaultNames = map[Role]string{
	RolePatient: "John Doe",
	RoleDoctor:  "Dr. Sarah Smith",
	RoleAdmin:   "Admin User",
}

// avatarPhotoIDs holds the fixed per-role avatar photo identifiers.
var avatarPhotoIDs = map[Role]string{
	RolePatient: "1472099645785-5658abf4ff4e",
	RoleDoctor:  "1559839734-2b71ea197ec2",
	RoleAdmin:   "1507003211169-0a1dd7228f2d",
}

// DefaultName returns the fixed display name for a role.
func (r Role) DefaultName() string {
	return defaultNames[r]
}

// AvatarURL returns the fixed avatar image URL for a role.
func (r Role) AvatarURL() string {
	return "https://images.unsplash.com/photo-" + avatarPhotoIDs[r] + "?w=150&h=150&fit=crop&crop=face"
}
