// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"fmt"

	"github.com/tomtom215/filmgraph/internal/config"
)

const inMemoryPath = ":memory:"

// dialect captures the SQL differences between DuckDB and MySQL. Both use
// "?" placeholders, so queries are otherwise shared.
type dialect struct {
	name       string
	driverName string

	// returning reports INSERT ... RETURNING support. Without it new ids
	// come from LastInsertId.
	returning bool

	// sequences reports ids drawn from CREATE SEQUENCE instead of
	// AUTO_INCREMENT.
	sequences bool

	// foreignKeys adds REFERENCES clauses. DuckDB checks constraints
	// eagerly inside a transaction, so integrity there is enforced by the
	// explicit existence checks every write performs.
	foreignKeys bool

	// serializeWrites queues writers on DB.writeMu.
	serializeWrites bool

	// checkpoint issues CHECKPOINT after schema changes and on close.
	checkpoint bool

	// lockSuffix is appended to SELECTs that read a row about to be updated.
	lockSuffix string

	// tableSuffix is appended to CREATE TABLE statements.
	tableSuffix string
}

var (
	duckDBDialect = dialect{
		name:            config.DriverDuckDB,
		driverName:      "duckdb",
		returning:       true,
		sequences:       true,
		serializeWrites: true,
		checkpoint:      true,
	}

	mySQLDialect = dialect{
		name:        config.DriverMySQL,
		driverName:  "mysql",
		foreignKeys: true,
		lockSuffix:  " FOR UPDATE",
		tableSuffix: " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "", config.DriverDuckDB:
		return duckDBDialect, nil
	case config.DriverMySQL:
		return mySQLDialect, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// idColumn declares the surrogate key of table.
func (d dialect) idColumn(table string) string {
	if d.sequences {
		return fmt.Sprintf("id BIGINT PRIMARY KEY DEFAULT nextval('%s_id_seq')", table)
	}
	return "id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY"
}

// varchar declares a bounded string column. DuckDB ignores the bound.
func (d dialect) varchar(n int) string {
	if d.name == config.DriverMySQL {
		return fmt.Sprintf("VARCHAR(%d)", n)
	}
	return "VARCHAR"
}

// text declares an unbounded string column.
func (d dialect) text() string {
	if d.name == config.DriverMySQL {
		return "TEXT"
	}
	return "VARCHAR"
}

// references returns a trailing foreign key clause, or "" when the dialect
// does not declare foreign keys.
func (d dialect) references(column, table string) string {
	if !d.foreignKeys {
		return ""
	}
	return fmt.Sprintf(",\n\tFOREIGN KEY (%s) REFERENCES %s(id) ON DELETE CASCADE", column, table)
}

// upsertReaction inserts or replaces one (review, user) reaction.
func (d dialect) upsertReaction() string {
	if d.name == config.DriverMySQL {
		return `INSERT INTO review_reactions (review_id, user_id, helpful) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE helpful = VALUES(helpful)`
	}
	return `INSERT INTO review_reactions (review_id, user_id, helpful) VALUES (?, ?, ?)
		ON CONFLICT (review_id, user_id) DO UPDATE SET helpful = EXCLUDED.helpful`
}
