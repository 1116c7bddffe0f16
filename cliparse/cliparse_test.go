// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "elections.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Errorf("expected default backend sqlite, got %s", cfg.StoreBackend)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STORE_BACKEND", "dynamo")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-b", "postgres", "-d", "postgres://test"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StoreBackend != BackendPostgres {
		t.Errorf("CLI should override env: expected postgres, got %s", cfg.StoreBackend)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "elections.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.CandidatesTable != "candidate_table" {
		t.Errorf("expected default candidate table, got %s", cfg.CandidatesTable)
	}
	if cfg.VotesTable != "vote_table" {
		t.Errorf("expected default vote table, got %s", cfg.VotesTable)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("expected default region us-east-1, got %s", cfg.AWSRegion)
	}
}

func TestParseFlags_DatabaseURLRequired(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when database URL is missing")
	}

	// The dynamo backend has no database URL
	cfg, err := ParseFlags([]string{"-b", "dynamo"})
	if err != nil {
		t.Fatalf("dynamo backend should not require a database URL: %v", err)
	}
	if cfg.StoreBackend != BackendDynamo {
		t.Errorf("expected backend dynamo, got %s", cfg.StoreBackend)
	}
}

func TestParseFlags_UnknownBackend(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-b", "mongodb", "-d", "x"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
