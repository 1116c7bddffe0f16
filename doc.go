// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Campus Vote API server.

Campus Vote is a student election service: candidates register, admins
approve or reject them, students cast exactly one vote each, and live
plurality results are published with percentages and a leader summary.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=elections.db go run main.go

Or with flags:

	go run main.go -p 8080 -b sqlite -d elections.db

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
    (not used with the dynamo backend)

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - STORE_BACKEND (-b): sqlite, postgres, or dynamo (default: sqlite)
  - CANDIDATES_TABLE (--candidates-table): candidate table name
  - VOTES_TABLE (--votes-table): vote table name
  - AWS_REGION (--aws-region): region for the dynamo backend
  - DYNAMO_ENDPOINT (--dynamo-endpoint): endpoint override for local DynamoDB

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (candidates, voting, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - election: Registration, approval, vote casting, and tallying rules
  - store: Document store interface with sqlstore and dynamo drivers
  - metrics: Prometheus counters
  - seed: Sample candidate data for demos
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
