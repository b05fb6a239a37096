// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/careconnect-tui/internal/store"
)

// ErrEmptyEmail is returned when EstablishSession is called without an email.
var ErrEmptyEmail = errors.New("email must not be empty")

// =============================================================================
// SESSION STATE
// =============================================================================

// State is the session machine state.
type State int

const (
	// StateUnknown is the initial state, before Restore has run. No
	// authorization decision may be made while the machine is Unknown.
	StateUnknown State = iota

	// StateAnonymous means no session exists.
	StateAnonymous

	// StateAuthenticated means a session is active.
	StateAuthenticated
)

// String returns a string representation of the State.
func (s State) String() string {
	switch s {
	case StateUnknown:
		return "UNKNOWN"
	case StateAnonymous:
		return "ANONYMOUS"
	case StateAuthenticated:
		return "AUTHENTICATED"
	default:
		return "INVALID"
	}
}

// =============================================================================
// MANAGER
// =============================================================================

// Config holds configuration for the session manager.
type Config struct {
	// SimulatedLatency delays EstablishSession before it completes,
	// standing in for a future real network call. It has no effect on
	// the outcome, only on when the Authenticated state becomes visible.
	SimulatedLatency time.Duration
}

// DefaultConfig returns the default manager configuration.
// The 1s latency matches the original portal's simulated API call.
func DefaultConfig() Config {
	return Config{SimulatedLatency: time.Second}
}

// Manager owns the in-memory session and mirrors it into the store.
//
// It is constructed once at startup and passed by handle to every consumer;
// there is no package-level instance. The store is best-effort: a failed
// write is logged and swallowed, and the in-memory session stays
// authoritative for the remainder of the process.
type Manager struct {
	mu sync.Mutex

	store    store.Store
	latency  time.Duration
	state    State
	session  *Session
	restored bool
}

// NewManager creates a session manager backed by st. The machine starts
// in StateUnknown until Restore runs.
func NewManager(st store.Store, cfg Config) *Manager {
	return &Manager{
		store:   st,
		latency: cfg.SimulatedLatency,
		state:   StateUnknown,
	}
}

// Restore attempts to recover a previously persisted session.
//
// It runs exactly once per process lifetime; later calls are no-ops that
// return the current state. A missing, malformed, or partial record leaves
// the machine Anonymous - restore never fails and never blocks startup.
func (m *Manager) Restore() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.restored {
		return m.state
	}
	m.restored = true

	blob, ok, err := m.store.Load(StorageKey)
	if err != nil || !ok {
		if err != nil {
			logSessionEvent("SESSION_RESTORE_SKIPPED", "none", fmt.Sprintf("error=%v", err))
		}
		m.state = StateAnonymous
		return m.state
	}

	sess, ok := decodeSession(blob)
	if !ok {
		// Corrupt record reads exactly like no record at all.
		logSessionEvent("SESSION_RESTORE_CORRUPT", "none", "treating stored record as absent")
		m.state = StateAnonymous
		return m.state
	}

	m.session = sess
	m.state = StateAuthenticated
	logSessionEvent("SESSION_RESTORED", sess.ID, fmt.Sprintf("role=%s", sess.Role))
	return m.state
}

// EstablishSession creates a brand-new session for email with the given
// role, fully replacing any existing session (last writer wins). It models
// both login and registration; the two differ only in input provenance.
//
// suppliedName is used as the display name when non-empty, otherwise the
// fixed per-role default applies. Only structural validation can fail:
// a non-empty email and a role from the enumeration are required.
func (m *Manager) EstablishSession(email string, role Role, suppliedName string) (*Session, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	// Simulated network latency; outcome-neutral.
	if m.latency > 0 {
		time.Sleep(m.latency)
	}

	name := suppliedName
	if name == "" {
		name = role.DefaultName()
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      role,
		Name:      name,
		AvatarURL: role.AvatarURL(),
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = sess
	m.state = StateAuthenticated
	m.restored = true
	m.persistLocked(sess)

	logSessionEvent("SESSION_ESTABLISHED", sess.ID, fmt.Sprintf("role=%s", sess.Role))
	return m.snapshotLocked(), nil
}

// persistLocked mirrors the session into the store. Persistence is
// best-effort: on failure the in-memory session remains authoritative and
// the error is only logged.
func (m *Manager) persistLocked(sess *Session) {
	blob, err := encodeSession(sess)
	if err == nil {
		err = m.store.Save(StorageKey, blob)
	}
	if err != nil {
		logSessionEvent("SESSION_PERSIST_FAILED", sess.ID, fmt.Sprintf("error=%v", err))
	}
}

// ClearSession ends the current session, removing it from memory and from
// the store. It always succeeds and is idempotent when already Anonymous.
func (m *Manager) ClearSession() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		logSessionEvent("SESSION_CLEARED", m.session.ID, "")
	}
	m.session = nil
	m.state = StateAnonymous
	m.restored = true

	if err := m.store.Clear(StorageKey); err != nil {
		logSessionEvent("SESSION_CLEAR_STORE_FAILED", "none", fmt.Sprintf("error=%v", err))
	}
}

// State returns the current machine state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns a copy of the active session, if any.
func (m *Manager) Current() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

// snapshotLocked returns a copy of the held session for callers.
func (m *Manager) snapshotLocked() *Session {
	cp := *m.session
	return &cp
}

// logSessionEvent logs a session lifecycle event.
func logSessionEvent(eventType, sessionID, details string) {
	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 UTC")
	log.Printf("%s | %s | session=%s %s", timestamp, eventType, sessionID, details)
}
