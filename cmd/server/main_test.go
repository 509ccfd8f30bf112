// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/api"
	"github.com/tomtom215/filmgraph/internal/catalog"
	"github.com/tomtom215/filmgraph/internal/config"
	"github.com/tomtom215/filmgraph/internal/reputation"
	"github.com/tomtom215/filmgraph/internal/social"
	"github.com/tomtom215/filmgraph/internal/store/memory"
)

func TestOpenStoreMemory(t *testing.T) {
	st, cp, err := openStore(&config.DatabaseConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, st)
	assert.Nil(t, cp)
	assert.NoError(t, st.Ping(context.Background()))
}

func TestOpenStoreDuckDBHasCheckpointer(t *testing.T) {
	cfg := config.Default().Database
	cfg.Path = ":memory:"

	st, cp, err := openStore(&cfg)
	require.NoError(t, err)
	defer st.Close()
	assert.NotNil(t, cp)
}

func TestApplySeed(t *testing.T) {
	st := memory.New()
	log := activity.New(st)
	svc := api.Services{
		Catalog:    catalog.New(st, log),
		Reputation: reputation.New(st, log, reputation.Config{}),
		Social:     social.New(st, log),
	}

	path := filepath.Join("..", "..", "internal", "fixtures", "testdata", "reviews.yaml")
	require.NoError(t, applySeed(context.Background(), path, svc))

	users, err := st.ListUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	assert.Error(t, applySeed(context.Background(), "does-not-exist.yaml", svc))
}
