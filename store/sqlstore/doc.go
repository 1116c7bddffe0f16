// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sqlstore implements store.Store over database/sql.

Each logical table maps to a two-column SQL table created on first use:

	CREATE TABLE IF NOT EXISTS candidate_table (
		k TEXT PRIMARY KEY,
		doc TEXT NOT NULL
	)

PutIfAbsent uses INSERT ... ON CONFLICT DO NOTHING and inspects the affected
row count, so the one-vote-per-voter invariant rests on the primary key
constraint rather than a read-then-write sequence.

Tested against sqlite (modernc.org/sqlite, including in-memory databases for
the test suite) and postgres (lib/pq). Both engines accept the $1 placeholder
syntax used throughout.
*/
package sqlstore
