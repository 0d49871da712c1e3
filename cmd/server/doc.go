// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

/*
Package main is the entry point for the GameMatch server.

GameMatch recommends games similar to a selected one by comparing the words
of their names and genres. The server loads a catalog, vectorizes it, and
serves ranked recommendations over HTTP.

# Startup

 1. Configuration: koanf v2 from defaults, an optional YAML file
    (CONFIG_PATH or ./config.yaml) and environment variables
 2. Logging: zerolog, configured from the logging section
 3. Catalog source: JSON/CSV file, DuckDB table, or BadgerDB store
 4. Engine: the first catalog load must succeed or the process exits
 5. Supervisor tree: catalog service in the data layer, HTTP server in
    the API layer

# Signals

	SIGINT, SIGTERM  graceful shutdown
	SIGHUP           reload the catalog

# Example

	CATALOG_PATH=./games.csv HTTP_PORT=8501 ./gamematch
	curl 'localhost:8501/api/v1/recommendations?game=Doom&n=5'
*/
package main
