// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package fixtures loads YAML seed files into a fact store.

A seed names every entity with a key and refers to other entities by key:

	users:
	  - {key: ana, email: ana@example.com, login: ana, birthday: 1990-04-01}
	films:
	  - {key: heat, name: Heat, release_date: 1995-12-15, duration: 170, mpa: 4, genres: [4]}
	likes:
	  - {user: ana, film: heat}

Parse checks that keys are unique and references resolve before anything
is written. Loader.Apply then inserts directors, users, films, likes,
friendships, reviews and reactions in that order through the catalog,
social and reputation engines.

The server applies DB seed_file at startup. Tests use the files under
testdata.
*/
package fixtures
