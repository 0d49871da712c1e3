// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

// Package services adapts GameMatch components to suture.Service so the
// supervisor tree can start, restart, and stop them.
package services
