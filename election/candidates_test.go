// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/campus-vote/models"
	"github.com/danielhkuo/campus-vote/store"
	"github.com/danielhkuo/campus-vote/store/sqlstore"
)

var dbSeq atomic.Int64

// setupElection opens a fresh in-memory document store for one test. A
// single pooled connection keeps the database alive and serializes writers.
func setupElection(t *testing.T) (store.Store, Tables) {
	t.Helper()

	dsn := fmt.Sprintf("file:electiontest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	st := sqlstore.New(db)
	t.Cleanup(func() { st.Close() })

	return st, Tables{Candidates: "candidate_table", Votes: "vote_table"}
}

// putCandidate stores a candidate directly, bypassing registration.
func putCandidate(t *testing.T, st store.Store, tables Tables, c models.Candidate) models.Candidate {
	t.Helper()

	if c.ID == "" {
		c.ID = NewCandidateID()
	}
	if c.RegistrationDate.IsZero() {
		c.RegistrationDate = time.Now().UTC()
	}
	doc, err := json.Marshal(c)
	require.NoError(t, err)
	require.NoError(t, st.Put(context.Background(), tables.Candidates, c.ID, doc))
	return c
}

func validRegistration() models.RegisterCandidateRequest {
	return models.RegisterCandidateRequest{
		Name:        "Dana Lee",
		Email:       "dana@university.edu",
		Description: "Student advocate",
		Platform:    "Better dining options",
		Experience:  "2 years in student council",
		StudentID:   "STU100",
		Phone:       "+1-555-0100",
	}
}

func TestRegister(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	candidate, err := mgr.Register(context.Background(), validRegistration(), RegistrationMeta{
		IPAddress: "203.0.113.1",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(candidate.ID, "candidate_"), "id %q should carry the candidate_ prefix", candidate.ID)
	assert.Equal(t, models.StatusPending, candidate.Status)
	assert.Equal(t, "dana@university.edu", candidate.Email)
	assert.False(t, candidate.RegistrationDate.IsZero())
	assert.Nil(t, candidate.ApprovedDate)
	assert.Equal(t, "203.0.113.1", candidate.Metadata.IPAddress)
	assert.Equal(t, models.SourceWeb, candidate.Metadata.RegistrationSource)

	// The candidate must be in the store under its id
	doc, err := st.Get(context.Background(), tables.Candidates, candidate.ID)
	require.NoError(t, err)
	var stored models.Candidate
	require.NoError(t, json.Unmarshal(doc, &stored))
	assert.Equal(t, candidate.ID, stored.ID)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestRegisterNormalizesInput(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	req := validRegistration()
	req.Name = "  Dana Lee  "
	req.Email = "  Dana@University.EDU "

	candidate, err := mgr.Register(context.Background(), req, RegistrationMeta{})
	require.NoError(t, err)

	assert.Equal(t, "Dana Lee", candidate.Name)
	assert.Equal(t, "dana@university.edu", candidate.Email)
}

func TestRegisterMissingFields(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	req := models.RegisterCandidateRequest{
		Name:  "Only Name",
		Email: "   ", // whitespace-only counts as missing
	}

	_, err := mgr.Register(context.Background(), req, RegistrationMeta{})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"email", "description", "platform", "studentId"}, ve.MissingFields)
}

func TestRegisterDuplicates(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)
	ctx := context.Background()

	_, err := mgr.Register(ctx, validRegistration(), RegistrationMeta{})
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		req := validRegistration()
		req.StudentID = "STU200"

		_, err := mgr.Register(ctx, req, RegistrationMeta{})
		var de *DuplicateError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "email", de.Field)
	})

	t.Run("duplicate email case-insensitive", func(t *testing.T) {
		req := validRegistration()
		req.Email = "DANA@university.edu"
		req.StudentID = "STU201"

		_, err := mgr.Register(ctx, req, RegistrationMeta{})
		var de *DuplicateError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "email", de.Field)
	})

	t.Run("duplicate studentId", func(t *testing.T) {
		req := validRegistration()
		req.Email = "other@university.edu"

		_, err := mgr.Register(ctx, req, RegistrationMeta{})
		var de *DuplicateError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "studentId", de.Field)
	})

	t.Run("both collide reports email", func(t *testing.T) {
		_, err := mgr.Register(ctx, validRegistration(), RegistrationMeta{})
		var de *DuplicateError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "email", de.Field)
	})
}

func TestApprove(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)
	ctx := context.Background()

	c := putCandidate(t, st, tables, models.Candidate{Name: "Dana", Status: models.StatusPending})

	approved, err := mgr.Approve(ctx, c.ID, "admin-7", "solid platform")
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin-7", *approved.ApprovedBy)
	require.NotNil(t, approved.ApprovalNotes)
	assert.Equal(t, "solid platform", *approved.ApprovalNotes)
	require.NotNil(t, approved.ApprovedDate)
	assert.WithinDuration(t, time.Now().UTC(), *approved.ApprovedDate, 5*time.Second)
}

func TestApproveDefaultNotes(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	c := putCandidate(t, st, tables, models.Candidate{Name: "Dana", Status: models.StatusPending})

	approved, err := mgr.Approve(context.Background(), c.ID, "admin-7", "")
	require.NoError(t, err)
	require.NotNil(t, approved.ApprovalNotes)
	assert.Equal(t, "Approved by admin", *approved.ApprovalNotes)
}

func TestApproveUnknownCandidate(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	_, err := mgr.Approve(context.Background(), "candidate_missing", "admin-7", "")

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "candidate_missing", nfe.CandidateID)
}

func TestApproveMissingFields(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	_, err := mgr.Approve(context.Background(), "", "", "")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"candidateId", "adminId"}, ve.MissingFields)
}

func TestReject(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	c := putCandidate(t, st, tables, models.Candidate{Name: "Dana", Status: models.StatusPending})

	rejected, err := mgr.Reject(context.Background(), c.ID, "admin-7", "incomplete application")
	require.NoError(t, err)

	assert.Equal(t, models.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectedBy)
	assert.Equal(t, "admin-7", *rejected.RejectedBy)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "incomplete application", *rejected.RejectionReason)
}

func TestRejectRequiresReason(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	c := putCandidate(t, st, tables, models.Candidate{Name: "Dana", Status: models.StatusPending})

	_, err := mgr.Reject(context.Background(), c.ID, "admin-7", "")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"reason"}, ve.MissingFields)
}

// A rejection after an approval flips the status but keeps the approval
// fields as history. Eligibility is decided by status alone.
func TestRejectAfterApproveKeepsHistory(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)
	ctx := context.Background()

	c := putCandidate(t, st, tables, models.Candidate{Name: "Dana", Status: models.StatusPending})

	_, err := mgr.Approve(ctx, c.ID, "admin-1", "")
	require.NoError(t, err)

	rejected, err := mgr.Reject(ctx, c.ID, "admin-2", "policy violation")
	require.NoError(t, err)

	assert.Equal(t, models.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.ApprovedBy)
	assert.Equal(t, "admin-1", *rejected.ApprovedBy)
	require.NotNil(t, rejected.RejectedBy)
	assert.Equal(t, "admin-2", *rejected.RejectedBy)
}

func TestListPendingOrdering(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	now := time.Now().UTC()
	putCandidate(t, st, tables, models.Candidate{ID: "c2", Name: "Second", Status: models.StatusPending, RegistrationDate: now.Add(-1 * time.Hour)})
	putCandidate(t, st, tables, models.Candidate{ID: "c1", Name: "First", Status: models.StatusPending, RegistrationDate: now.Add(-2 * time.Hour)})
	putCandidate(t, st, tables, models.Candidate{ID: "c3", Name: "Third", Status: models.StatusPending, RegistrationDate: now})
	putCandidate(t, st, tables, models.Candidate{ID: "c4", Name: "Done", Status: models.StatusApproved, RegistrationDate: now.Add(-3 * time.Hour)})

	pending, err := mgr.ListPending(context.Background())
	require.NoError(t, err)

	require.Len(t, pending, 3)
	assert.Equal(t, "First", pending[0].Name)
	assert.Equal(t, "Second", pending[1].Name)
	assert.Equal(t, "Third", pending[2].Name)
}

func TestListAllBuckets(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)

	putCandidate(t, st, tables, models.Candidate{ID: "a", Name: "A", Status: models.StatusApproved})
	putCandidate(t, st, tables, models.Candidate{ID: "b", Name: "B", Status: models.StatusPending})
	putCandidate(t, st, tables, models.Candidate{ID: "c", Name: "C", Status: models.StatusRejected})
	// Unknown status counts as pending
	putCandidate(t, st, tables, models.Candidate{ID: "d", Name: "D", Status: "weird"})

	grouped, err := mgr.ListAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, grouped.Candidates.Approved, 1)
	assert.Len(t, grouped.Candidates.Pending, 2)
	assert.Len(t, grouped.Candidates.Rejected, 1)
	assert.Equal(t, models.StatusCounts{Approved: 1, Pending: 2, Rejected: 1}, grouped.Counts)
	assert.Equal(t, 4, grouped.Total)
}

func TestStatsMessage(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)
	ctx := context.Background()

	stats, err := mgr.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Normal processing volume", stats.Message)

	for i := 0; i < 6; i++ {
		putCandidate(t, st, tables, models.Candidate{ID: fmt.Sprintf("p%d", i), Name: "P", Status: models.StatusPending})
	}

	stats, err = mgr.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Stats.Pending)
	assert.Equal(t, "High volume of pending applications", stats.Message)
}

func TestNewCandidateID(t *testing.T) {
	a := NewCandidateID()
	b := NewCandidateID()

	assert.True(t, strings.HasPrefix(a, "candidate_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.Split(a, "_"), 3)
}
