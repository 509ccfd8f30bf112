// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/filmgraph/internal/config"
)

func TestDialectFor(t *testing.T) {
	d, err := dialectFor("")
	require.NoError(t, err)
	assert.Equal(t, config.DriverDuckDB, d.name)

	d, err = dialectFor(config.DriverMySQL)
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.driverName)
	assert.True(t, d.foreignKeys)

	_, err = dialectFor("sqlite")
	assert.Error(t, err)
}

func TestDialectDDL(t *testing.T) {
	assert.Equal(t, "id BIGINT PRIMARY KEY DEFAULT nextval('films_id_seq')", duckDBDialect.idColumn("films"))
	assert.Contains(t, mySQLDialect.idColumn("films"), "AUTO_INCREMENT")

	assert.Equal(t, "VARCHAR", duckDBDialect.varchar(200))
	assert.Equal(t, "VARCHAR(200)", mySQLDialect.varchar(200))

	assert.Empty(t, duckDBDialect.references("user_id", "users"))
	assert.Contains(t, mySQLDialect.references("user_id", "users"), "REFERENCES users(id) ON DELETE CASCADE")

	assert.Contains(t, duckDBDialect.upsertReaction(), "ON CONFLICT (review_id, user_id)")
	assert.Contains(t, mySQLDialect.upsertReaction(), "ON DUPLICATE KEY UPDATE")
}

func TestSchemaStatements(t *testing.T) {
	for _, d := range []dialect{duckDBDialect, mySQLDialect} {
		db := &DB{dialect: d}
		queries := db.getTableCreationQueries()
		require.Len(t, queries, 12, d.name)
		for _, q := range queries {
			assert.True(t, strings.HasPrefix(q.sql, "CREATE TABLE IF NOT EXISTS "+q.table), q.sql)
		}
	}
}

func TestConnectionString(t *testing.T) {
	t.Run("duckdb creates parent directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		cfg := &config.DatabaseConfig{Path: filepath.Join(dir, "filmgraph.duckdb"), Threads: 3, MaxMemory: "256MB"}

		connStr, err := connectionString(cfg, duckDBDialect)
		require.NoError(t, err)
		assert.Equal(t, cfg.Path+"?threads=3&max_memory=256MB", connStr)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("duckdb in memory", func(t *testing.T) {
		connStr, err := connectionString(&config.DatabaseConfig{Path: ":memory:", Threads: 1}, duckDBDialect)
		require.NoError(t, err)
		assert.Equal(t, ":memory:?threads=1", connStr)
	})

	t.Run("mysql forces parseTime", func(t *testing.T) {
		connStr, err := connectionString(&config.DatabaseConfig{DSN: "app:pw@tcp(db:3306)/filmgraph"}, mySQLDialect)
		require.NoError(t, err)
		assert.Contains(t, connStr, "parseTime=true")
		assert.Contains(t, connStr, "tcp(db:3306)/filmgraph")
	})

	t.Run("mysql rejects malformed dsn", func(t *testing.T) {
		_, err := connectionString(&config.DatabaseConfig{DSN: "not a dsn"}, mySQLDialect)
		assert.Error(t, err)
	})
}
