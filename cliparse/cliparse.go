package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backend names accepted by -b / STORE_BACKEND.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendDynamo   = "dynamo"
)

type Config struct {
	Port            int
	StoreBackend    string
	DatabaseURL     string
	CandidatesTable string
	VotesTable      string
	AWSRegion       string
	DynamoEndpoint  string
}

// ParseFlags validates flags and builds the runtime configuration.
// Precedence: CLI flags, then environment variables (with a .env overlay in
// the working directory), then defaults.
func ParseFlags(args []string) (Config, error) {
	// Best-effort: a missing .env file is not an error.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("campus-vote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreBackend, "b", "", "Store backend (sqlite, postgres or dynamo)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite/postgres backends)")
	fs.StringVar(&cfg.CandidatesTable, "candidates-table", "", "Candidate table name")
	fs.StringVar(&cfg.VotesTable, "votes-table", "", "Vote table name")
	fs.StringVar(&cfg.AWSRegion, "aws-region", "", "AWS region (dynamo backend)")
	fs.StringVar(&cfg.DynamoEndpoint, "dynamo-endpoint", "", "DynamoDB endpoint override (local development)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.StoreBackend == "" {
		cfg.StoreBackend = os.Getenv("STORE_BACKEND")
		if cfg.StoreBackend == "" {
			cfg.StoreBackend = BackendSQLite
		}
	}
	switch cfg.StoreBackend {
	case BackendSQLite, BackendPostgres, BackendDynamo:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q (want sqlite, postgres or dynamo)", cfg.StoreBackend)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.StoreBackend != BackendDynamo {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.CandidatesTable == "" {
		cfg.CandidatesTable = os.Getenv("CANDIDATES_TABLE")
		if cfg.CandidatesTable == "" {
			cfg.CandidatesTable = "candidate_table"
		}
	}
	if cfg.VotesTable == "" {
		cfg.VotesTable = os.Getenv("VOTES_TABLE")
		if cfg.VotesTable == "" {
			cfg.VotesTable = "vote_table"
		}
	}

	if cfg.AWSRegion == "" {
		cfg.AWSRegion = os.Getenv("AWS_REGION")
		if cfg.AWSRegion == "" {
			cfg.AWSRegion = "us-east-1"
		}
	}
	if cfg.DynamoEndpoint == "" {
		cfg.DynamoEndpoint = os.Getenv("DYNAMO_ENDPOINT")
	}

	return cfg, nil
}
