// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabaseURL: Connection string or sqlite file path (required)
  - DatabaseType: "postgres" or "sqlite" (default: postgres)

# CLI Flags

	-p  Server port
	-d  Database URL
	-t  Database type

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so local development can keep
DATABASE_URL out of the shell.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or DATABASE_TYPE
is not one of sqlite/postgres.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg)
	// ...
	mux := router.NewRouter(conn)
*/
package cliparse
