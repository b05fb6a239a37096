// careconnect TUI - A healthcare portal for your terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/careconnect-tui/internal/cli"
	"github.com/jeranaias/careconnect-tui/internal/store"
	"github.com/jeranaias/careconnect-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdLogin:
		err = cli.HandleLogin(args)
	case cli.CmdRegister:
		err = cli.HandleRegister(args)
	case cli.CmdLogout:
		err = cli.HandleLogout(args)
	case cli.CmdWhoami:
		err = cli.HandleWhoami(args)
	case cli.CmdStatus:
		err = cli.HandleStatus(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdData:
		err = cli.HandleData(args)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.Usage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the portal TUI. The session restore runs inside the
// program's Init, so startup never blocks on storage.
func runTUI(args cli.Args) error {
	env, err := cli.OpenEnvNoRestore()
	if err != nil {
		return err
	}

	var opts []app.Option

	// The watcher surfaces session and record changes made by a second
	// careconnect process against the same data directory.
	if env.Config.Storage.WatchEnabled {
		watcher, werr := store.NewWatcher(env.Store)
		if werr == nil {
			defer watcher.Close()
			opts = append(opts, app.WithWatch(watcher.Changes()))
		}
		// A failed watcher is not fatal; the portal just won't see
		// external changes live.
	}

	m := app.New(env.Manager, env.Store, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("portal exited with an error: %w", err)
	}
	return nil
}
