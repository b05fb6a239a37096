// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing and usage text for careconnect.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdRegister
	CmdLogout
	CmdWhoami
	CmdStatus
	CmdConfig
	CmdData
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet bool
	JSON  bool

	// Command-specific
	Email      string
	Role       string
	Name       string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after command extraction)
	Raw []string
}

const usageText = `careconnect - healthcare portal for your terminal

CareConnect is a demo healthcare portal with role-based dashboards for
patients, doctors, and administrators. All data lives locally under
~/.careconnect; there is no server and no real authentication.

Usage:
  careconnect                        Start the portal TUI (default)
  careconnect login EMAIL --role R   Sign in as patient, doctor, or admin
  careconnect register EMAIL         Sign up (alias for login, accepts --name)
  careconnect logout                 End the current session
  careconnect whoami                 Show the current session
  careconnect status, s              Show session and storage status
  careconnect config [show|set|path] Configuration management
  careconnect data [list|show|clear] Inspect stored portal collections
  careconnect version, -v            Show version information
  careconnect help, -h               Show this help

Login/Register:
  careconnect login jane@example.com --role patient
  careconnect register jane@example.com --role doctor --name "Dr. Jane Doe"

  The role must be one of: patient, doctor, admin. There is no password:
  the portal grants whichever role you select. A supplied --name is kept;
  otherwise a fixed per-role display name is used.

Data Commands:
  careconnect data list              List stored keys
  careconnect data show KEY          Print a stored record
  careconnect data clear KEY         Remove a stored record
  careconnect data clear --all       Remove everything, including the session

Global Flags:
  --json        Machine-readable output where supported
  --quiet, -q   Suppress non-essential output
`

// Usage prints the top-level help text.
func Usage() {
	fmt.Print(usageText)
}

// Parse inspects os.Args and returns the command plus parsed arguments.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "login":
		parseSessionArgs(&args, remaining)
		return CmdLogin, args

	case "register", "signup":
		parseSessionArgs(&args, remaining)
		return CmdRegister, args

	case "logout":
		return CmdLogout, args

	case "whoami", "me":
		return CmdWhoami, args

	case "status", "s":
		return CmdStatus, args

	case "config":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args

	case "data":
		if len(remaining) > 0 {
			args.Subcommand = remaining[0]
			args.Raw = remaining[1:]
		}
		return CmdData, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// parseGlobalFlags strips global flags from the argument list.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	var remaining []string

	for _, arg := range argv {
		switch arg {
		case "--json":
			args.JSON = true
		case "--quiet", "-q":
			args.Quiet = true
		default:
			remaining = append(remaining, arg)
		}
	}
	return remaining, args
}

// parseSessionArgs extracts email/role/name for login and register.
// The first positional argument is the email.
func parseSessionArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	if pos := p.Positional(); len(pos) > 0 {
		args.Email = pos[0]
	}
	args.Role = p.Flag("role")
	args.Name = p.Flag("name")
}

// parseConfigArgs extracts the config subcommand and key/value.
func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Subcommand = p.Subcommand()
	pos := p.Positional()
	if len(pos) > 1 {
		args.ConfigKey = pos[1]
	}
	if len(pos) > 2 {
		args.ConfigVal = strings.Join(pos[2:], " ")
	}
}

// HandleVersion prints version information.
func HandleVersion(args Args) {
	if args.JSON {
		fmt.Printf("{\"version\":%q,\"commit\":%q,\"built\":%q}\n", Version, GitCommit, BuildDate)
		return
	}
	fmt.Printf("careconnect %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
