// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package main is the entry point for the Filmgraph server.
//
// Startup order:
//
//  1. Configuration (Koanf v2: defaults, config.yaml, environment)
//  2. Logging (zerolog)
//  3. Fact store (DuckDB, MySQL or in-memory, per DB_DRIVER)
//  4. Engines: catalog, ranking, recommendation, reputation, social, activity log
//  5. Seed fixtures when SEED_FILE is set
//  6. Supervisor tree with the HTTP API and, for DuckDB, periodic checkpoints
//
// SIGINT and SIGTERM cancel the tree; the HTTP server drains in-flight
// requests for up to HTTP_SHUTDOWN_TIMEOUT before the store is closed.
//
// Example:
//
//	DB_DRIVER=memory SEED_FILE=internal/fixtures/testdata/popular.yaml LOG_FORMAT=console ./filmgraph
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/api"
	"github.com/tomtom215/filmgraph/internal/catalog"
	"github.com/tomtom215/filmgraph/internal/config"
	"github.com/tomtom215/filmgraph/internal/fixtures"
	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/ranking"
	"github.com/tomtom215/filmgraph/internal/recommend"
	"github.com/tomtom215/filmgraph/internal/reputation"
	"github.com/tomtom215/filmgraph/internal/social"
	"github.com/tomtom215/filmgraph/internal/supervisor"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)
	logging.Info().
		Str("driver", cfg.Database.Driver).
		Str("addr", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting Filmgraph")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Filmgraph stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	st, checkpointer, err := openStore(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Err(err).Msg("Error closing store")
		}
	}()

	log := activity.New(st)
	svc := api.Services{
		Catalog:    catalog.New(st, log),
		Ranking:    ranking.New(st),
		Recommend:  recommend.NewEngine(st),
		Reputation: reputation.New(st, log, reputation.Config{DefaultLimit: cfg.API.DefaultReviewLimit}),
		Social:     social.New(st, log),
		Activity:   log,
		Store:      st,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.SeedFile != "" {
		if err := applySeed(ctx, cfg.Database.SeedFile, svc); err != nil {
			return err
		}
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	router := api.NewRouter(
		api.NewHandler(svc, cfg.API),
		api.NewChiMiddleware(api.MiddlewareConfigFromAPI(cfg.API)),
	)
	server := supervisor.NewHTTPServer(&cfg.Server, router.SetupChi())
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if checkpointer != nil && cfg.Database.CheckpointInterval > 0 {
		tree.AddStoreService(supervisor.NewCheckpointService(checkpointer, cfg.Database.CheckpointInterval))
		logging.Info().Dur("interval", cfg.Database.CheckpointInterval).Msg("Checkpoint service added")
	}

	err = tree.Serve(ctx)
	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil {
		for _, s := range unstopped {
			logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func applySeed(ctx context.Context, path string, svc api.Services) error {
	seed, err := fixtures.LoadFile(path)
	if err != nil {
		return err
	}
	loader := fixtures.NewLoader(svc.Catalog, svc.Social, svc.Reputation)
	if _, _, err := loader.Apply(ctx, seed); err != nil {
		return err
	}
	return nil
}
