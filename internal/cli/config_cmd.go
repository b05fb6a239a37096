// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - "careconnect config" subcommands.
//
// Subcommands:
//
//	config            show the effective configuration
//	config path       print the config file path
//	config set K V    set a key and save (theme, latency_ms, watch, data_dir)
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/careconnect-tui/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return configShow(args)
	case "path":
		p, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	case "set":
		return configSet(args)
	default:
		return fmt.Errorf("unknown config subcommand %q (expected show, path, or set)", args.Subcommand)
	}
}

func configShow(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	fmt.Printf("%s %s\n", LabelStyle.Render("theme"), ValueStyle.Render(cfg.UI.Theme))
	fmt.Printf("%s %s\n", LabelStyle.Render("latency_ms"), ValueStyle.Render(strconv.Itoa(cfg.Auth.SimulatedLatencyMs)))
	fmt.Printf("%s %s\n", LabelStyle.Render("watch"), ValueStyle.Render(strconv.FormatBool(cfg.Storage.WatchEnabled)))
	dataDir, err := cfg.DataDir()
	if err != nil {
		dataDir = cfg.Storage.DataDir
	}
	fmt.Printf("%s %s\n", LabelStyle.Render("data_dir"), MutedStyle.Render(dataDir))
	return nil
}

func configSet(args Args) error {
	if args.ConfigKey == "" {
		return fmt.Errorf("usage: careconnect config set KEY VALUE")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key := strings.ToLower(args.ConfigKey)
	val := args.ConfigVal
	switch key {
	case "theme":
		cfg.UI.Theme = val
	case "latency_ms":
		ms, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("latency_ms must be an integer: %w", err)
		}
		cfg.Auth.SimulatedLatencyMs = ms
	case "watch":
		on, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("watch must be true or false: %w", err)
		}
		cfg.Storage.WatchEnabled = on
	case "data_dir":
		cfg.Storage.DataDir = val
	default:
		return fmt.Errorf("unknown config key %q (expected theme, latency_ms, watch, or data_dir)", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Printf("%s %s = %s\n", SuccessStyle.Render("Set"), LabelStyle.Render(key), ValueStyle.Render(val))
	}
	return nil
}
