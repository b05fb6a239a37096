// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// data_cmd.go - "careconnect data" subcommands for inspecting the
// local record store.
//
// Subcommands:
//
//	data              list stored keys
//	data show KEY     pretty-print a stored record
//	data clear KEY    remove one record
//	data clear --all  remove every record
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// HandleData dispatches the data subcommands.
func HandleData(args Args) error {
	env, err := OpenEnv()
	if err != nil {
		return err
	}

	switch args.Subcommand {
	case "", "list":
		return dataList(env, args)
	case "show":
		return dataShow(env, args)
	case "clear":
		return dataClear(env, args)
	default:
		return fmt.Errorf("unknown data subcommand %q (expected list, show, or clear)", args.Subcommand)
	}
}

func dataList(env *Env, args Args) error {
	keys, err := env.Store.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		if !args.Quiet {
			fmt.Println(MutedStyle.Render("No stored records."))
		}
		return nil
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}

func dataShow(env *Env, args Args) error {
	p := NewArgParser(args.Raw)
	pos := p.Positional()
	if len(pos) == 0 {
		return fmt.Errorf("usage: careconnect data show KEY")
	}
	key := pos[0]

	blob, ok, err := env.Store.Load(key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no record stored under %q", key)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, blob, "", "  "); err != nil {
		// Not valid JSON; print the raw bytes.
		os.Stdout.Write(blob)
		fmt.Println()
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

func dataClear(env *Env, args Args) error {
	p := NewArgParser(args.Raw)
	if p.BoolFlag("all") {
		keys, err := env.Store.Keys()
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := env.Store.Clear(k); err != nil {
				return err
			}
		}
		if !args.Quiet {
			fmt.Printf("%s %d record(s)\n", SuccessStyle.Render("Cleared"), len(keys))
		}
		return nil
	}

	pos := p.Positional()
	if len(pos) == 0 {
		return fmt.Errorf("usage: careconnect data clear KEY | careconnect data clear --all")
	}
	key := pos[0]
	if err := env.Store.Clear(key); err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Printf("%s %s\n", SuccessStyle.Render("Cleared"), ValueStyle.Render(key))
	}
	return nil
}
