// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg)

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite). Both sit behind database/sql, and every query in
the handlers is written to the dialect both engines share: $1-style
positional parameters, COALESCE, and LOWER(...) LIKE for
case-insensitive matching instead of ILIKE.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The schema text differs per engine only in id generation
(SERIAL vs INTEGER PRIMARY KEY AUTOINCREMENT).

# Tables

  - questions: title, description, category, vote_count
  - answers: question_id, content, vote_count

answers.question_id references a question logically but carries no
foreign key constraint; the handlers check parent existence themselves
and question deletion does not cascade.

# Indexes

  - questions.category
  - answers.question_id
*/
package db
