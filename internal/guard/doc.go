// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package guard decides whether a role-gated view may render.
//
// CanEnter is a pure function of the declared role set and the session
// machine state - no I/O, no side effects. Views obey the decision:
//
//   - Pending: restore has not completed; show a neutral loading frame
//     and ask again once it has
//   - Allow: render the protected view
//   - RedirectToLogin: anonymous user, send to the login view
//   - RedirectHome: authenticated but wrong role, send to the public
//     landing view (not to login)
package guard
