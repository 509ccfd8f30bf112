// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package database implements store.FactStore on a relational database.

DuckDB is the default, embedded backend. MySQL is selected with
database.driver=mysql and a go-sql-driver DSN. Both share the same queries;
the differences (id generation, upsert syntax, foreign keys, row locks)
are isolated in dialect.

# Schema

	users, directors, films, reviews, events   surrogate ids
	genres, mpa_ratings                        fixed ids, seeded by migrations
	film_genres, film_directors                composite keys
	likes (film_id, user_id)                   composite key
	friendships (user_id, friend_id)           directed, composite key
	review_reactions (review_id, user_id)      composite key

Review usefulness is cached in reviews.useful and recomputed from
review_reactions inside the transaction that changes a reaction.

# Integrity

Every write runs in one transaction and checks referenced rows before
mutating. Missing rows surface as store.ErrNotFound; duplicate edges and
driver constraint failures as store.ErrConflict. Deletes cascade
explicitly, children first.

# Concurrency

DuckDB has a single writer per database, so DB serializes its write
transactions. MySQL takes a row lock on the review before changing a
reaction.
*/
package database
