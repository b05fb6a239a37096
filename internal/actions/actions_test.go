// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package actions

import "testing"

func TestStubDispatcher_AllActionsNotImplemented(t *testing.T) {
	d := NewStubDispatcher()

	all := []Action{
		ActionVideoConsult,
		ActionMessaging,
		ActionAssignDoctor,
		ActionModerateContent,
		ActionGenerateReport,
	}

	for _, a := range all {
		res := d.Invoke(a)
		if !res.NotImplemented() {
			t.Errorf("Invoke(%s) status = %v, want NotImplemented", a, res.Status)
		}
		if res.Action != a {
			t.Errorf("Invoke(%s) echoed action %s", a, res.Action)
		}
		if res.Message == "" {
			t.Errorf("Invoke(%s) should carry a placeholder message", a)
		}
	}
}
