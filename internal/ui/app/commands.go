// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// commands.go - Bubble Tea command creators for the portal TUI.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/careconnect-tui/internal/actions"
	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/store"
)

// restoreCmd runs the one-time session restore off the UI goroutine.
func restoreCmd(m *auth.Manager) tea.Cmd {
	return func() tea.Msg {
		return RestoredMsg{State: m.Restore()}
	}
}

// establishCmd signs the user in (or up; the transition is the same) with
// the simulated portal latency running off the UI goroutine.
func establishCmd(m *auth.Manager, email string, role auth.Role, name string) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.EstablishSession(email, role, name)
		if err != nil {
			return SessionFailedMsg{Err: err}
		}
		return SessionEstablishedMsg{Session: sess}
	}
}

// logoutCmd clears the session.
func logoutCmd(m *auth.Manager) tea.Cmd {
	return func() tea.Msg {
		m.ClearSession()
		return SessionClearedMsg{}
	}
}

// watchStoreCmd waits for the next external store change. The update loop
// re-issues it after each message, so the watcher channel is drained for
// the lifetime of the program.
func watchStoreCmd(ch <-chan store.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return StoreChangedMsg{Change: change}
	}
}

// dispatchActionCmd invokes a dashboard quick action.
func dispatchActionCmd(d actions.Dispatcher, a actions.Action) tea.Cmd {
	return func() tea.Msg {
		return ActionResultMsg{Result: d.Invoke(a)}
	}
}

// expireNoticeCmd clears the status notice after a short delay.
func expireNoticeCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{}
	})
}
