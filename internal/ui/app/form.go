// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// form.go - Sign in / sign up form state for the portal TUI.
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/careconnect-tui/internal/auth"
)

// Form focus positions, cycled with Tab.
const (
	focusEmail = iota
	focusName
	focusRole
	focusCount
)

// formModel holds the sign-in / sign-up form. Both flows collect the same
// fields and run the same session transition; registering only changes
// the wording.
type formModel struct {
	registering bool
	email       textinput.Model
	name        textinput.Model
	roleIdx     int
	focus       int
	errText     string
}

func newForm(registering bool) formModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Width = 32
	email.Focus()

	name := textinput.New()
	name.Placeholder = "display name (optional)"
	name.CharLimit = 80
	name.Width = 32

	return formModel{
		registering: registering,
		email:       email,
		name:        name,
	}
}

// roles in display order; the index tracks the highlighted option.
var formRoles = auth.Roles()

// role returns the currently selected role.
func (f *formModel) role() auth.Role {
	return formRoles[f.roleIdx]
}

// setFocus moves input focus to the given position.
func (f *formModel) setFocus(pos int) {
	f.focus = pos
	f.email.Blur()
	f.name.Blur()
	switch pos {
	case focusEmail:
		f.email.Focus()
	case focusName:
		f.name.Focus()
	}
}

// cycleFocus advances focus by delta, wrapping.
func (f *formModel) cycleFocus(delta int) {
	f.setFocus(((f.focus+delta)%focusCount + focusCount) % focusCount)
}

// handleKey updates the form for one key press. It reports whether the
// form was submitted; on submission the caller reads email/name/role.
func (f *formModel) handleKey(msg tea.KeyMsg) (submitted bool, cmd tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.cycleFocus(1)
		return false, nil
	case "shift+tab", "up":
		f.cycleFocus(-1)
		return false, nil
	case "left":
		if f.focus == focusRole {
			f.roleIdx = (f.roleIdx - 1 + len(formRoles)) % len(formRoles)
			return false, nil
		}
	case "right":
		if f.focus == focusRole {
			f.roleIdx = (f.roleIdx + 1) % len(formRoles)
			return false, nil
		}
	case "enter":
		if strings.TrimSpace(f.email.Value()) == "" {
			f.errText = "Email is required."
			f.setFocus(focusEmail)
			return false, nil
		}
		f.errText = ""
		return true, nil
	}

	switch f.focus {
	case focusEmail:
		f.email, cmd = f.email.Update(msg)
	case focusName:
		f.name, cmd = f.name.Update(msg)
	}
	return false, cmd
}

// values returns the trimmed form inputs.
func (f *formModel) values() (email, name string, role auth.Role) {
	return strings.TrimSpace(f.email.Value()), strings.TrimSpace(f.name.Value()), f.role()
}
