// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"context"
	"fmt"
	"time"
)

// Tables with a surrogate id. DuckDB draws each from its own sequence.
var sequencedTables = []string{"users", "directors", "films", "reviews", "events"}

// schemaContext bounds DDL during startup
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates all tables in dependency order
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if db.dialect.sequences {
		for _, table := range sequencedTables {
			if _, err := db.conn.ExecContext(ctx,
				fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s_id_seq START 1", table)); err != nil {
				return fmt.Errorf("failed to create sequence for %s: %w", table, err)
			}
		}
	}

	for _, q := range db.getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, q.sql); err != nil {
			return fmt.Errorf("failed to create table %s: %w", q.table, err)
		}
	}
	return nil
}

type tableQuery struct {
	table string
	sql   string
}

// getTableCreationQueries returns CREATE TABLE statements. Lookup tables
// (genres, mpa_ratings) have fixed ids and are filled by migrations.
func (db *DB) getTableCreationQueries() []tableQuery {
	d := db.dialect
	create := func(table, body string) tableQuery {
		return tableQuery{
			table: table,
			sql:   fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)%s", table, body, d.tableSuffix),
		}
	}

	return []tableQuery{
		create("users", fmt.Sprintf(`%s,
	email %s NOT NULL,
	login %s NOT NULL,
	name %s NOT NULL,
	birthday DATE`, d.idColumn("users"), d.varchar(255), d.varchar(100), d.varchar(255))),

		create("genres", fmt.Sprintf(`id BIGINT PRIMARY KEY,
	name %s NOT NULL`, d.varchar(100))),

		create("mpa_ratings", fmt.Sprintf(`id BIGINT PRIMARY KEY,
	name %s NOT NULL`, d.varchar(20))),

		create("directors", fmt.Sprintf(`%s,
	name %s NOT NULL`, d.idColumn("directors"), d.varchar(255))),

		create("films", fmt.Sprintf(`%s,
	name %s NOT NULL,
	description %s NOT NULL,
	release_date DATE,
	duration INTEGER NOT NULL,
	mpa_id BIGINT%s`, d.idColumn("films"), d.varchar(255), d.varchar(200),
			d.references("mpa_id", "mpa_ratings"))),

		create("film_genres", fmt.Sprintf(`film_id BIGINT NOT NULL,
	genre_id BIGINT NOT NULL,
	PRIMARY KEY (film_id, genre_id)%s%s`,
			d.references("film_id", "films"), d.references("genre_id", "genres"))),

		create("film_directors", fmt.Sprintf(`film_id BIGINT NOT NULL,
	director_id BIGINT NOT NULL,
	PRIMARY KEY (film_id, director_id)%s%s`,
			d.references("film_id", "films"), d.references("director_id", "directors"))),

		create("likes", fmt.Sprintf(`film_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	PRIMARY KEY (film_id, user_id)%s%s`,
			d.references("film_id", "films"), d.references("user_id", "users"))),

		create("friendships", fmt.Sprintf(`user_id BIGINT NOT NULL,
	friend_id BIGINT NOT NULL,
	PRIMARY KEY (user_id, friend_id)%s%s`,
			d.references("user_id", "users"), d.references("friend_id", "users"))),

		create("reviews", fmt.Sprintf(`%s,
	content %s NOT NULL,
	is_positive BOOLEAN NOT NULL,
	user_id BIGINT NOT NULL,
	film_id BIGINT NOT NULL,
	useful INTEGER NOT NULL DEFAULT 0%s%s`, d.idColumn("reviews"), d.text(),
			d.references("user_id", "users"), d.references("film_id", "films"))),

		create("review_reactions", fmt.Sprintf(`review_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	helpful BOOLEAN NOT NULL,
	PRIMARY KEY (review_id, user_id)%s%s`,
			d.references("review_id", "reviews"), d.references("user_id", "users"))),

		create("events", fmt.Sprintf(`%s,
	created_at_ms BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	event_type %s NOT NULL,
	operation %s NOT NULL,
	entity_id BIGINT NOT NULL%s`, d.idColumn("events"), d.varchar(16), d.varchar(16),
			d.references("user_id", "users"))),
	}
}

// createIndexes creates secondary indexes. MySQL already indexes every
// foreign key column, so only DuckDB needs them.
func (db *DB) createIndexes() error {
	if db.dialect.foreignKeys {
		return nil
	}

	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_likes_user ON likes(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_film_genres_genre ON film_genres(genre_id)",
		"CREATE INDEX IF NOT EXISTS idx_film_directors_director ON film_directors(director_id)",
		"CREATE INDEX IF NOT EXISTS idx_friendships_friend ON friendships(friend_id)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_film ON reviews(film_id)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_reactions_user ON review_reactions(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_events_user ON events(user_id)",
	}

	for _, idx := range indexes {
		if _, err := db.conn.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
