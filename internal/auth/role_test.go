// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"patient", RolePatient, false},
		{"doctor", RoleDoctor, false},
		{"admin", RoleAdmin, false},
		{"ADMIN", RoleAdmin, false},
		{"  doctor  ", RoleDoctor, false},
		{"nurse", "", true},
		{"", "", true},
		{"administrator", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRole) {
				t.Errorf("ParseRole(%q) error = %v, want ErrInvalidRole", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRole(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range Roles() {
		if !r.Valid() {
			t.Errorf("%v should be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Error("unknown role should not be valid")
	}
	if Role("").Valid() {
		t.Error("empty role should not be valid")
	}
}

func TestRole_Defaults(t *testing.T) {
	tests := []struct {
		role    Role
		name    string
		photoID string
	}{
		{RolePatient, "John Doe", "1472099645785-5658abf4ff4e"},
		{RoleDoctor, "Dr. Sarah Smith", "1559839734-2b71ea197ec2"},
		{RoleAdmin, "Admin User", "1507003211169-0a1dd7228f2d"},
	}

	for _, tt := range tests {
		if got := tt.role.DefaultName(); got != tt.name {
			t.Errorf("%v.DefaultName() = %q, want %q", tt.role, got, tt.name)
		}
		url := tt.role.AvatarURL()
		if !strings.Contains(url, tt.photoID) {
			t.Errorf("%v.AvatarURL() = %q, want photo id %q", tt.role, url, tt.photoID)
		}
		if !strings.HasPrefix(url, "https://images.unsplash.com/photo-") {
			t.Errorf("%v.AvatarURL() = %q, unexpected base URL", tt.role, url)
		}
	}
}
