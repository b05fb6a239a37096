// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth owns the client-side session lifecycle for careconnect-tui.
//
// There is exactly one session per installation: the record representing
// "who is currently using this terminal". The session is held in memory by
// a Manager and mirrored into the persistent store under a fixed key, so it
// survives process restarts.
//
// # Key Types
//
//   - Role: patient, doctor, or admin - nothing else is ever accepted
//   - Session: the in-memory/persisted identity record
//   - Manager: the state machine (Unknown -> Anonymous | Authenticated)
//
// # Usage
//
// Construct one Manager at startup, restore, then let views drive it:
//
//	mgr := auth.NewManager(st, auth.DefaultConfig())
//	mgr.Restore()
//	sess, err := mgr.EstablishSession("a@b.com", auth.RolePatient, "")
//	mgr.ClearSession()
//
// There is deliberately no credential verification anywhere in this
// package: the portal provides role selection, not authentication. Any
// non-empty email plus a valid role establishes a session.
package auth
