// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

/*
Package supervisor runs the long-lived GameMatch services under suture v4.

The tree has two layers so a failing catalog refresher never takes the API
down, and the API keeps serving the last published snapshot while the data
layer restarts:

	RootSupervisor ("gamematch")
	├── DataSupervisor ("data-layer")
	│   └── CatalogService (interval reloads, file watch, SIGHUP)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog, which writes to the zerolog stream via logging.NewSlogLogger.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(catalogSvc)
	tree.AddAPIService(httpSvc)
	err = tree.Serve(ctx)
*/
package supervisor
