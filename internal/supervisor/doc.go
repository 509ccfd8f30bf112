// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package supervisor runs Filmgraph's long-lived services under a suture v4
supervisor tree.

# Tree Layout

	RootSupervisor ("filmgraph")
	├── StoreSupervisor ("store-layer")
	│   └── CheckpointService (DuckDB only, when DB_CHECKPOINT_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently. A crashed service is restarted
with suture's backoff; the other layer keeps running.

# Logging

Supervisor events go through sutureslog. main passes the slog logger from
logging.NewSlogLogger, so restarts and panics appear in the zerolog stream
with every other log line.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	server := supervisor.NewHTTPServer(&cfg.Server, router)
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)
*/
package supervisor
