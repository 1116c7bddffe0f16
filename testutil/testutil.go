// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/campus-vote/cliparse"
	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/models"
	"github.com/danielhkuo/campus-vote/store"
	"github.com/danielhkuo/campus-vote/store/sqlstore"
	_ "modernc.org/sqlite"
)

// Table names used by every test store.
const (
	TestCandidatesTable = "candidate_table"
	TestVotesTable      = "vote_table"
)

var dbSeq atomic.Int64

// SetupTestStore opens a fresh in-memory SQLite document store. Each call
// gets its own database, so tests never see each other's documents. The pool
// is pinned to a single connection: it keeps the in-memory database alive and
// serializes writers, which shared-cache SQLite otherwise rejects as locked.
func SetupTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	db.SetMaxOpenConns(1)

	st := sqlstore.New(db)
	t.Cleanup(func() { st.Close() })

	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            8080,
		StoreBackend:    cliparse.BackendSQLite,
		DatabaseURL:     ":memory:",
		CandidatesTable: TestCandidatesTable,
		VotesTable:      TestVotesTable,
	}
}

// TestTables returns the logical table pair matching GetTestConfig.
func TestTables() election.Tables {
	return election.Tables{
		Candidates: TestCandidatesTable,
		Votes:      TestVotesTable,
	}
}

// CreateTestCandidate stores a candidate with the given status and returns it.
// status should be "pending", "approved", or "rejected".
func CreateTestCandidate(t *testing.T, st store.Store, name, status string) models.Candidate {
	t.Helper()

	id := election.NewCandidateID()
	candidate := models.Candidate{
		ID:               id,
		Name:             name,
		Email:            fmt.Sprintf("%s@university.edu", id),
		Description:      "Test candidate " + name,
		Platform:         "A platform for " + name,
		StudentID:        "STU_" + id,
		Status:           status,
		RegistrationDate: time.Now().UTC(),
		Metadata: models.CandidateMetadata{
			IPAddress:          "127.0.0.1",
			UserAgent:          "testutil",
			RegistrationSource: models.SourceWeb,
		},
	}
	if status == models.StatusApproved {
		now := time.Now().UTC()
		by := "test-admin"
		candidate.ApprovedDate = &now
		candidate.ApprovedBy = &by
	}

	doc, err := json.Marshal(candidate)
	if err != nil {
		t.Fatalf("Failed to encode test candidate: %v", err)
	}
	if err := st.Put(context.Background(), TestCandidatesTable, candidate.ID, doc); err != nil {
		t.Fatalf("Failed to store test candidate: %v", err)
	}

	return candidate
}

// CreateTestVote records a vote by userID for the given candidate.
func CreateTestVote(t *testing.T, st store.Store, userID string, candidate models.Candidate) models.Vote {
	t.Helper()

	vote := models.Vote{
		UserID:        userID,
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Timestamp:     time.Now().UTC(),
		IPAddress:     "127.0.0.1",
		Metadata: models.VoteMetadata{
			UserAgent:  "testutil",
			VoteSource: models.SourceWeb,
		},
	}

	doc, err := json.Marshal(vote)
	if err != nil {
		t.Fatalf("Failed to encode test vote: %v", err)
	}
	if err := st.PutIfAbsent(context.Background(), TestVotesTable, userID, doc); err != nil {
		t.Fatalf("Failed to store test vote: %v", err)
	}

	return vote
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
