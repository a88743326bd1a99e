// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Skill Checkpoint Q&A API server.

Skill Checkpoint is a question-and-answer board: clients create, search
and vote on questions, and attach answers with their own up/down votes.

# Starting the Server

The server requires a database URL via environment variable or CLI flag:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 4000 -d "postgres://..." -t postgres

A .env file in the working directory is loaded before flag parsing.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (Postgres) or file path (sqlite)

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): "postgres" or "sqlite" (default: postgres)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, answers)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
