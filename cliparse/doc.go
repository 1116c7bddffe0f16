// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - StoreBackend: sqlite, postgres or dynamo (default: sqlite)
  - DatabaseURL: connection string for the SQL backends (required for them)
  - CandidatesTable / VotesTable: logical table names
    (defaults: candidate_table, vote_table)
  - AWSRegion / DynamoEndpoint: dynamo backend settings; the endpoint
    override points the client at a local DynamoDB container

# CLI Flags

	-p                 Server port
	-b                 Store backend
	-d                 Database URL
	--candidates-table Candidate table name
	--votes-table      Vote table name
	--aws-region       AWS region
	--dynamo-endpoint  DynamoDB endpoint override

# Environment Variables

Flags fall back to environment variables, with a .env overlay loaded from the
working directory first:

	PORT             → -p
	STORE_BACKEND    → -b
	DATABASE_URL     → -d
	CANDIDATES_TABLE → --candidates-table
	VOTES_TABLE      → --votes-table
	AWS_REGION       → --aws-region
	DYNAMO_ENDPOINT  → --dynamo-endpoint

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided for the sqlite and postgres backends
  - the backend name must be one of sqlite, postgres, dynamo
*/
package cliparse
