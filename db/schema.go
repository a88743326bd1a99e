// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/bky3227/skill-checkpoint-server/cliparse"
)

// Open connects to the database selected by cfg.DatabaseType.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	var driver string
	switch cfg.DatabaseType {
	case "postgres":
		driver = "postgres"
	case "sqlite":
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, dbType string) error {
	schema := schemaPostgres
	if dbType == "sqlite" {
		schema = schemaSQLite
	}

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// answers.question_id deliberately carries no foreign key: parent
// existence is enforced by a handler-level pre-check, and deleting a
// question must leave its answers untouched.
const schemaPostgres = `
-- Questions
CREATE TABLE IF NOT EXISTS questions (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    vote_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);

-- Answers
CREATE TABLE IF NOT EXISTS answers (
    id SERIAL PRIMARY KEY,
    question_id INTEGER NOT NULL,
    content TEXT NOT NULL,
    vote_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id);
`

const schemaSQLite = `
-- Questions
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    vote_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);

-- Answers
CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL,
    content TEXT NOT NULL,
    vote_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id);
`
