// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth_cmd.go - Session CLI commands for careconnect.
//
// Command: login EMAIL --role ROLE [--name NAME]
// Command: register EMAIL --role ROLE [--name NAME]   (same transition)
// Command: logout
// Command: whoami [--json]
//
// Login and registration are the same state transition with different
// wording; neither verifies a credential. The portal grants whichever
// role is selected - deliberate demo-mode behavior.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/util"
)

// HandleLogin handles the "login" command.
func HandleLogin(args Args) error {
	return establish(args, "Signed in")
}

// HandleRegister handles the "register" command.
func HandleRegister(args Args) error {
	return establish(args, "Account created")
}

// establish runs the shared login/register transition.
func establish(args Args, doneVerb string) error {
	if args.Email == "" {
		return fmt.Errorf("an email is required (usage: careconnect login EMAIL --role ROLE)")
	}

	role, err := auth.ParseRole(args.Role)
	if err != nil {
		return fmt.Errorf("--role must be one of patient, doctor, admin (got %q)", args.Role)
	}

	env, err := OpenEnv()
	if err != nil {
		return err
	}

	if !args.Quiet {
		fmt.Println(MutedStyle.Render("Contacting the portal..."))
	}

	sess, err := env.Manager.EstablishSession(args.Email, role, args.Name)
	if err != nil {
		return err
	}

	if args.Quiet {
		return nil
	}
	fmt.Printf("%s %s\n",
		SuccessStyle.Render(doneVerb+" as"),
		ValueStyle.Render(fmt.Sprintf("%s <%s> (%s)", sess.Name, sess.Email, sess.Role)))
	return nil
}

// HandleLogout handles the "logout" command.
func HandleLogout(args Args) error {
	env, err := OpenEnv()
	if err != nil {
		return err
	}

	_, hadSession := env.Manager.Current()
	env.Manager.ClearSession()

	if args.Quiet {
		return nil
	}
	if hadSession {
		fmt.Println(SuccessStyle.Render("Signed out."))
	} else {
		fmt.Println(MutedStyle.Render("No active session."))
	}
	return nil
}

// HandleWhoami handles the "whoami" command.
func HandleWhoami(args Args) error {
	env, err := OpenEnv()
	if err != nil {
		return err
	}

	sess, ok := env.Manager.Current()
	if !ok {
		if args.JSON {
			fmt.Println(`{"authenticated":false}`)
			return nil
		}
		fmt.Println(MutedStyle.Render("Not signed in."))
		return nil
	}

	if args.JSON {
		out := map[string]any{
			"authenticated": true,
			"id":            sess.ID,
			"email":         sess.Email,
			"role":          sess.Role.String(),
			"name":          sess.Name,
			"avatarUrl":     sess.AvatarURL,
			"createdAt":     sess.CreatedAt.UTC().Format(time.RFC3339),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(TitleStyle.Render("Current Session"))
	fmt.Printf("%s %s\n", LabelStyle.Render("Name"), ValueStyle.Render(sess.Name))
	fmt.Printf("%s %s\n", LabelStyle.Render("Email"), ValueStyle.Render(sess.Email))
	fmt.Printf("%s %s\n", LabelStyle.Render("Role"), ValueStyle.Render(sess.Role.String()))
	if sess.AvatarURL != "" {
		avatar := util.TruncateWidth(sess.AvatarURL, GetTerminalWidth()-16)
		fmt.Printf("%s %s\n", LabelStyle.Render("Avatar"), MutedStyle.Render(avatar))
	}
	if !sess.CreatedAt.IsZero() {
		fmt.Printf("%s %s\n", LabelStyle.Render("Signed in"), MutedStyle.Render(sess.CreatedAt.Local().Format("2006-01-02 15:04")))
	}
	return nil
}
