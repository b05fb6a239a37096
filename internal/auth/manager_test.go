// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jeranaias/careconnect-tui/internal/store"
)

// testConfig removes the simulated latency so tests run instantly.
func testConfig() Config {
	return Config{SimulatedLatency: 0}
}

// =============================================================================
// RESTORE TESTS
// =============================================================================

func TestManager_StartsUnknown(t *testing.T) {
	m := NewManager(store.NewMemStore(), testConfig())

	if m.State() != StateUnknown {
		t.Errorf("initial state = %v, want UNKNOWN", m.State())
	}
}

func TestManager_RestoreEmptyStore(t *testing.T) {
	m := NewManager(store.NewMemStore(), testConfig())

	if got := m.Restore(); got != StateAnonymous {
		t.Errorf("Restore on empty store = %v, want ANONYMOUS", got)
	}
	if _, ok := m.Current(); ok {
		t.Error("no session should exist after anonymous restore")
	}
}

func TestManager_RestoreRunsOnce(t *testing.T) {
	st := store.NewMemStore()
	m := NewManager(st, testConfig())
	m.Restore()

	// A record appearing after the first restore must not be picked up.
	seed := NewManager(st, testConfig())
	if _, err := seed.EstablishSession("late@b.com", RoleAdmin, ""); err != nil {
		t.Fatal(err)
	}

	if got := m.Restore(); got != StateAnonymous {
		t.Errorf("second Restore = %v, want ANONYMOUS (restore runs once)", got)
	}
}

func TestManager_RestoreRoundTrip(t *testing.T) {
	st := store.NewMemStore()

	first := NewManager(st, testConfig())
	first.Restore()
	established, err := first.EstablishSession("a@b.com", RoleDoctor, "")
	if err != nil {
		t.Fatalf("EstablishSession: %v", err)
	}

	// Simulate a fresh process over the same store.
	second := NewManager(st, testConfig())
	if got := second.Restore(); got != StateAuthenticated {
		t.Fatalf("Restore = %v, want AUTHENTICATED", got)
	}

	restored, ok := second.Current()
	if !ok {
		t.Fatal("Current should return the restored session")
	}
	if restored.ID != established.ID {
		t.Errorf("ID = %q, want %q (pure restore preserves id)", restored.ID, established.ID)
	}
	if restored.Email != "a@b.com" {
		t.Errorf("Email = %q, want a@b.com", restored.Email)
	}
	if restored.Role != RoleDoctor {
		t.Errorf("Role = %v, want doctor", restored.Role)
	}
	if restored.Name != "Dr. Sarah Smith" {
		t.Errorf("Name = %q, want role-derived default", restored.Name)
	}
	if restored.AvatarURL != RoleDoctor.AvatarURL() {
		t.Errorf("AvatarURL = %q, want role-derived URL", restored.AvatarURL)
	}
}

func TestManager_RestoreCorruptRecord(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", "{{{"},
		{"missing role", `{"id":"1","email":"a@b.com"}`},
		{"missing email", `{"id":"1","role":"doctor"}`},
		{"missing id", `{"email":"a@b.com","role":"doctor"}`},
		{"invalid role", `{"id":"1","email":"a@b.com","role":"superuser"}`},
		{"empty object", `{}`},
		{"wrong type", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemStore()
			if err := st.Save(StorageKey, []byte(tt.blob)); err != nil {
				t.Fatal(err)
			}

			m := NewManager(st, testConfig())
			if got := m.Restore(); got != StateAnonymous {
				t.Errorf("Restore with corrupt record = %v, want ANONYMOUS", got)
			}
		})
	}
}

func TestManager_RestoreIgnoresExtraFields(t *testing.T) {
	st := store.NewMemStore()
	blob := `{"id":"abc","email":"a@b.com","role":"patient","name":"John Doe",` +
		`"avatarUrl":"https://example.com/x.png","createdAt":"2024-01-01T00:00:00Z",` +
		`"theme":"dark","unknown":{"nested":true}}`
	if err := st.Save(StorageKey, []byte(blob)); err != nil {
		t.Fatal(err)
	}

	m := NewManager(st, testConfig())
	if got := m.Restore(); got != StateAuthenticated {
		t.Fatalf("Restore = %v, want AUTHENTICATED", got)
	}
	sess, _ := m.Current()
	if sess.AvatarURL != "https://example.com/x.png" {
		t.Errorf("stored avatar must survive restore unchanged, got %q", sess.AvatarURL)
	}
}

func TestManager_RestoreNumericID(t *testing.T) {
	// Earlier clients persisted Date.now() style numeric ids.
	st := store.NewMemStore()
	blob := `{"id":1704067200000,"email":"a@b.com","role":"admin"}`
	if err := st.Save(StorageKey, []byte(blob)); err != nil {
		t.Fatal(err)
	}

	m := NewManager(st, testConfig())
	if got := m.Restore(); got != StateAuthenticated {
		t.Fatalf("Restore = %v, want AUTHENTICATED", got)
	}
	sess, _ := m.Current()
	if sess.ID != "1704067200000" {
		t.Errorf("ID = %q, want normalized numeric id", sess.ID)
	}
	if sess.Name != "Admin User" {
		t.Errorf("Name = %q, want role default when record omits it", sess.Name)
	}
}

// =============================================================================
// ESTABLISH TESTS
// =============================================================================

func TestManager_EstablishValidation(t *testing.T) {
	m := NewManager(store.NewMemStore(), testConfig())
	m.Restore()

	if _, err := m.EstablishSession("", RoleDoctor, ""); !errors.Is(err, ErrEmptyEmail) {
		t.Errorf("empty email error = %v, want ErrEmptyEmail", err)
	}
	if _, err := m.EstablishSession("a@b.com", Role("nurse"), ""); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("invalid role error = %v, want ErrInvalidRole", err)
	}

	// No state transition on rejection.
	if m.State() != StateAnonymous {
		t.Errorf("state after rejected establish = %v, want ANONYMOUS", m.State())
	}
}

func TestManager_EstablishDerivesNameAndAvatar(t *testing.T) {
	m := NewManager(store.NewMemStore(), testConfig())
	m.Restore()

	sess, err := m.EstablishSession("p@x.com", RolePatient, "")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Name != "John Doe" {
		t.Errorf("Name = %q, want role default", sess.Name)
	}
	if sess.AvatarURL != "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face" {
		t.Errorf("AvatarURL = %q, want fixed patient avatar", sess.AvatarURL)
	}
	if sess.ID == "" || sess.CreatedAt.IsZero() {
		t.Error("establish must set a fresh id and timestamp")
	}
}

func TestManager_EstablishPrefersSuppliedName(t *testing.T) {
	m := NewManager(store.NewMemStore(), testConfig())
	m.Restore()

	sess, err := m.EstablishSession("p@x.com", RolePatient, "Alice Jones")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Name != "Alice Jones" {
		t.Errorf("Name = %q, want the supplied name", sess.Name)
	}
}

func TestManager_EstablishLastWriterWins(t *testing.T) {
	st := store.NewMemStore()
	m := NewManager(st, testConfig())
	m.Restore()

	if _, err := m.EstablishSession("first@x.com", RolePatient, ""); err != nil {
		t.Fatal(err)
	}
	second, err := m.EstablishSession("second@x.com", RoleAdmin, "")
	if err != nil {
		t.Fatal(err)
	}

	// Memory matches the second call.
	sess, _ := m.Current()
	if sess.Email != "second@x.com" || sess.Role != RoleAdmin {
		t.Errorf("in-memory session = %+v, want the second call's result", sess)
	}

	// Store matches the second call.
	blob, ok, _ := st.Load(StorageKey)
	if !ok {
		t.Fatal("store should hold a record")
	}
	var rec map[string]any
	if err := json.Unmarshal(blob, &rec); err != nil {
		t.Fatal(err)
	}
	if rec["email"] != "second@x.com" || rec["role"] != "admin" || rec["id"] != second.ID {
		t.Errorf("stored record = %v, want the second call's session", rec)
	}
}

func TestManager_EstablishSurvivesWriteFailure(t *testing.T) {
	st := store.NewMemStore()
	st.FailWrites = true

	m := NewManager(st, testConfig())
	m.Restore()

	sess, err := m.EstablishSession("a@b.com", RoleDoctor, "")
	if err != nil {
		t.Fatalf("write failure must not surface from EstablishSession: %v", err)
	}
	if sess == nil || m.State() != StateAuthenticated {
		t.Error("in-memory session must be authoritative despite the failed write")
	}
}

// =============================================================================
// CLEAR TESTS
// =============================================================================

func TestManager_ClearSession(t *testing.T) {
	st := store.NewMemStore()
	m := NewManager(st, testConfig())
	m.Restore()
	if _, err := m.EstablishSession("a@b.com", RoleAdmin, ""); err != nil {
		t.Fatal(err)
	}

	m.ClearSession()

	if m.State() != StateAnonymous {
		t.Errorf("state after clear = %v, want ANONYMOUS", m.State())
	}
	if _, ok, _ := st.Load(StorageKey); ok {
		t.Error("store should be empty after clear")
	}

	// Idempotent: a second clear is a no-op.
	m.ClearSession()
	if m.State() != StateAnonymous {
		t.Errorf("state after second clear = %v, want ANONYMOUS", m.State())
	}
}

// =============================================================================
// END-TO-END SCENARIO
// =============================================================================

func TestManager_EndToEnd(t *testing.T) {
	st := store.NewMemStore()

	// (1) fresh store, restore -> Anonymous
	p1 := NewManager(st, testConfig())
	if got := p1.Restore(); got != StateAnonymous {
		t.Fatalf("step 1: Restore = %v, want ANONYMOUS", got)
	}

	// (2) establish admin session
	if _, err := p1.EstablishSession("x@y.com", RoleAdmin, ""); err != nil {
		t.Fatalf("step 2: %v", err)
	}
	if p1.State() != StateAuthenticated {
		t.Fatal("step 2: state should be AUTHENTICATED")
	}

	// (3) new process instance restores the same session
	p2 := NewManager(st, testConfig())
	if got := p2.Restore(); got != StateAuthenticated {
		t.Fatalf("step 3: Restore = %v, want AUTHENTICATED", got)
	}
	sess, _ := p2.Current()
	if sess.Email != "x@y.com" || sess.Role != RoleAdmin {
		t.Fatalf("step 3: session = %+v, want admin x@y.com", sess)
	}

	// (4) clear -> Anonymous, store empty
	p2.ClearSession()
	if p2.State() != StateAnonymous {
		t.Fatal("step 4: state should be ANONYMOUS")
	}
	if _, ok, _ := st.Load(StorageKey); ok {
		t.Fatal("step 4: store should be empty")
	}

	// (5) subsequent restore in yet another process -> Anonymous
	p3 := NewManager(st, testConfig())
	if got := p3.Restore(); got != StateAnonymous {
		t.Fatalf("step 5: Restore = %v, want ANONYMOUS", got)
	}
}

// =============================================================================
// STATE STRING TESTS
// =============================================================================

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUnknown, "UNKNOWN"},
		{StateAnonymous, "ANONYMOUS"},
		{StateAuthenticated, "AUTHENTICATED"},
		{State(99), "INVALID"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
