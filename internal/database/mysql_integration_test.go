// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

//go:build integration

package database

import (
	"context"
	"testing"

	"github.com/tomtom215/filmgraph/internal/store/storetest"
	"github.com/tomtom215/filmgraph/internal/testinfra"
)

func TestMySQLConformanceContainer(t *testing.T) {
	testinfra.SkipIfNoDocker(t)
	ctx := context.Background()

	mysql, err := testinfra.NewMySQLContainer(ctx)
	if err != nil {
		t.Fatalf("start mysql: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, mysql)

	storetest.Run(t, mysqlFactory(mysql.DSN))
}
