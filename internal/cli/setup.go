// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// setup.go - Shared construction of config, store, and session manager
// for the CLI handlers.
package cli

import (
	"fmt"
	"time"

	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/config"
	"github.com/jeranaias/careconnect-tui/internal/store"
)

// Env bundles everything a handler needs to talk to the local portal state.
type Env struct {
	Config  *config.Config
	Store   *store.FileStore
	Manager *auth.Manager
}

// OpenEnv loads configuration, opens the blob store, and restores the
// session machine. Every handler goes through here so they all see the
// same state the TUI would.
func OpenEnv() (*Env, error) {
	env, err := OpenEnvNoRestore()
	if err != nil {
		return nil, err
	}
	env.Manager.Restore()
	return env, nil
}

// OpenEnvNoRestore builds the environment without running the session
// restore. The TUI uses it so the restore can run inside the program's
// Init instead of blocking startup.
func OpenEnvNoRestore() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	st, err := store.NewFileStoreWithDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	mgr := auth.NewManager(st, auth.Config{
		SimulatedLatency: time.Duration(cfg.Auth.SimulatedLatencyMs) * time.Millisecond,
	})

	return &Env{Config: cfg, Store: st, Manager: mgr}, nil
}
