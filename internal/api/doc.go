// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

/*
Package api exposes the recommendation engine over HTTP.

Routing uses chi with go-chi/cors, go-chi/httprate and Prometheus request
metrics. Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "SELECTION_NOT_AVAILABLE", "message": "..."}}

Endpoints:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/games
	GET  /api/v1/recommendations?game=<name>&n=<count>
	GET  /api/v1/recommendations/{game}?n=<count>
	GET  /api/v1/catalog/status
	POST /api/v1/catalog/reload      (admin token when configured)
	PUT  /api/v1/catalog             (admin token when configured)
	GET  /metrics
*/
package api
