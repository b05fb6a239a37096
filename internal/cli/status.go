// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - "careconnect status" output.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/careconnect-tui/internal/config"
)

// HandleStatus prints a summary of the local portal state: config
// location, data directory, stored record count, and session state.
func HandleStatus(args Args) error {
	env, err := OpenEnv()
	if err != nil {
		return err
	}

	cfgPath, _ := config.ConfigPath()
	keys, err := env.Store.Keys()
	if err != nil {
		keys = nil
	}
	dataDir := env.Store.BaseDir

	state := env.Manager.State()
	sess, signedIn := env.Manager.Current()

	if args.JSON {
		out := map[string]any{
			"version":      Version,
			"configPath":   cfgPath,
			"dataDir":      dataDir,
			"storedKeys":   len(keys),
			"sessionState": state.String(),
		}
		if signedIn {
			out["email"] = sess.Email
			out["role"] = sess.Role.String()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(TitleStyle.Render("CareConnect Status"))
	fmt.Printf("%s %s\n", LabelStyle.Render("Version"), ValueStyle.Render(Version))
	fmt.Printf("%s %s\n", LabelStyle.Render("Config"), MutedStyle.Render(cfgPath))
	fmt.Printf("%s %s\n", LabelStyle.Render("Data dir"), MutedStyle.Render(dataDir))
	fmt.Printf("%s %s\n", LabelStyle.Render("Stored"), ValueStyle.Render(fmt.Sprintf("%d record(s)", len(keys))))
	if signedIn {
		fmt.Printf("%s %s\n", LabelStyle.Render("Session"),
			SuccessStyle.Render(fmt.Sprintf("%s (%s, %s)", state, sess.Email, sess.Role)))
	} else {
		fmt.Printf("%s %s\n", LabelStyle.Render("Session"), MutedStyle.Render(state.String()))
	}
	return nil
}
