// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// messages.go - Bubble Tea messages exchanged by the portal TUI.
package app

import (
	"github.com/jeranaias/careconnect-tui/internal/actions"
	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/store"
)

// RestoredMsg reports the one-time session restore result.
type RestoredMsg struct {
	State auth.State
}

// SessionEstablishedMsg reports a completed sign-in or sign-up.
type SessionEstablishedMsg struct {
	Session *auth.Session
}

// SessionFailedMsg reports a rejected sign-in or sign-up attempt.
type SessionFailedMsg struct {
	Err error
}

// SessionClearedMsg reports a completed sign-out.
type SessionClearedMsg struct{}

// StoreChangedMsg reports an external change to a stored record,
// forwarded from the store watcher.
type StoreChangedMsg struct {
	Change store.Change
}

// ActionResultMsg reports the outcome of a dashboard quick action.
type ActionResultMsg struct {
	Result actions.Result
}

// NoticeExpiredMsg clears a transient status notice.
type NoticeExpiredMsg struct{}
