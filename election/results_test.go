// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/campus-vote/models"
)

func castVotes(t *testing.T, svc *VotingService, candidateID string, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		_, err := svc.CastVote(context.Background(), candidateID, fmt.Sprintf("voter_%s_%d", candidateID, i), VoteMeta{})
		require.NoError(t, err)
	}
}

func TestComputeResultsEmpty(t *testing.T) {
	st, tables := setupElection(t)
	tab := NewTabulator(st, tables)

	results, err := tab.ComputeResults(context.Background())
	require.NoError(t, err)

	assert.Empty(t, results.Results)
	assert.Equal(t, 0, results.TotalVotes)
	assert.Equal(t, 0, results.TotalCandidates)
	assert.Equal(t, NoVotesLeader, results.Summary.Leader)
	assert.Equal(t, 0, results.Summary.LeaderVotes)
}

// Approved candidates appear with zero votes; the leader stays the sentinel
// until the first vote lands.
func TestComputeResultsNoVotesYet(t *testing.T) {
	st, tables := setupElection(t)
	tab := NewTabulator(st, tables)

	putCandidate(t, st, tables, models.Candidate{ID: "a", Name: "A", Status: models.StatusApproved})
	putCandidate(t, st, tables, models.Candidate{ID: "b", Name: "B", Status: models.StatusApproved})

	results, err := tab.ComputeResults(context.Background())
	require.NoError(t, err)

	require.Len(t, results.Results, 2)
	for _, r := range results.Results {
		assert.Equal(t, 0, r.Votes)
		assert.Equal(t, "0.0", r.Percentage)
	}
	assert.Equal(t, 2, results.TotalCandidates)
	assert.Equal(t, NoVotesLeader, results.Summary.Leader)
}

func TestComputeResults(t *testing.T) {
	st, tables := setupElection(t)
	svc := NewVotingService(st, tables)
	tab := NewTabulator(st, tables)

	putCandidate(t, st, tables, models.Candidate{ID: "a", Name: "Alice", Status: models.StatusApproved, Description: "desc-a", Platform: "plat-a"})
	putCandidate(t, st, tables, models.Candidate{ID: "b", Name: "Bob", Status: models.StatusApproved})
	putCandidate(t, st, tables, models.Candidate{ID: "c", Name: "Charlie", Status: models.StatusApproved})
	// Non-approved candidates never appear in results
	putCandidate(t, st, tables, models.Candidate{ID: "p", Name: "Pending", Status: models.StatusPending})

	castVotes(t, svc, "a", 2)
	castVotes(t, svc, "b", 1)

	results, err := tab.ComputeResults(context.Background())
	require.NoError(t, err)

	require.Len(t, results.Results, 3)
	assert.Equal(t, 3, results.TotalVotes)
	assert.Equal(t, 3, results.TotalCandidates)

	// Descending by votes, zero-vote candidate last
	assert.Equal(t, "Alice", results.Results[0].Candidate)
	assert.Equal(t, 2, results.Results[0].Votes)
	assert.Equal(t, "66.7", results.Results[0].Percentage)
	assert.Equal(t, "desc-a", results.Results[0].Description)
	assert.Equal(t, "plat-a", results.Results[0].Platform)

	assert.Equal(t, "Bob", results.Results[1].Candidate)
	assert.Equal(t, "33.3", results.Results[1].Percentage)

	assert.Equal(t, "Charlie", results.Results[2].Candidate)
	assert.Equal(t, 0, results.Results[2].Votes)
	assert.Equal(t, "0.0", results.Results[2].Percentage)

	assert.Equal(t, "Alice", results.Summary.Leader)
	assert.Equal(t, 2, results.Summary.LeaderVotes)
}

// A vote for a candidate who was approved at cast time but rejected later
// still counts toward totalVotes, but the candidate line disappears from the
// results. The remaining percentages are still computed against all votes.
func TestComputeResultsVoteForLaterRejectedCandidate(t *testing.T) {
	st, tables := setupElection(t)
	mgr := NewCandidateManager(st, tables)
	svc := NewVotingService(st, tables)
	tab := NewTabulator(st, tables)
	ctx := context.Background()

	putCandidate(t, st, tables, models.Candidate{ID: "a", Name: "Alice", Status: models.StatusApproved})
	putCandidate(t, st, tables, models.Candidate{ID: "b", Name: "Bob", Status: models.StatusApproved})

	castVotes(t, svc, "a", 1)
	castVotes(t, svc, "b", 1)

	_, err := mgr.Reject(ctx, "b", "admin-1", "withdrawn")
	require.NoError(t, err)

	results, err := tab.ComputeResults(ctx)
	require.NoError(t, err)

	require.Len(t, results.Results, 1)
	assert.Equal(t, "Alice", results.Results[0].Candidate)
	assert.Equal(t, 2, results.TotalVotes)
	assert.Equal(t, "50.0", results.Results[0].Percentage)
}

func TestComputeResultsTieKeepsStableOrder(t *testing.T) {
	st, tables := setupElection(t)
	svc := NewVotingService(st, tables)
	tab := NewTabulator(st, tables)

	putCandidate(t, st, tables, models.Candidate{ID: "a", Name: "Alice", Status: models.StatusApproved})
	putCandidate(t, st, tables, models.Candidate{ID: "b", Name: "Bob", Status: models.StatusApproved})

	castVotes(t, svc, "a", 1)
	castVotes(t, svc, "b", 1)

	results, err := tab.ComputeResults(context.Background())
	require.NoError(t, err)

	require.Len(t, results.Results, 2)
	assert.Equal(t, results.Results[0].Votes, results.Results[1].Votes)
	// The leader is whichever tied candidate sorted first
	assert.Equal(t, results.Results[0].Candidate, results.Summary.Leader)
	assert.Equal(t, 1, results.Summary.LeaderVotes)
}
