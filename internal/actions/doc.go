// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package actions models the portal's placeholder features.
//
// Several dashboard buttons stand for features that do not exist yet
// (video consults, messaging, report generation). Rather than each view
// inventing its own "coming soon" behavior, they invoke a named action
// here and render the NotImplemented result consistently. When a feature
// ships, its action gets a real dispatcher and the views don't change.
package actions
