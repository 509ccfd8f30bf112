// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package testinfra starts Docker containers for integration tests with
// testcontainers-go.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// # MySQL
//
// NewMySQLContainer starts a throwaway MySQL server so the relational
// store's MySQL dialect runs the same conformance suite as DuckDB without
// a hand-managed MYSQL_TEST_DSN.
//
// Tests call SkipIfNoDocker first so machines without Docker skip rather
// than fail.
package testinfra
