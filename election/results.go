// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/danielhkuo/campus-vote/models"
	"github.com/danielhkuo/campus-vote/store"
)

// Tabulator aggregates the vote store into ranked per-candidate results.
type Tabulator struct {
	store  store.Store
	tables Tables
}

func NewTabulator(st store.Store, tables Tables) *Tabulator {
	return &Tabulator{store: st, tables: tables}
}

// NoVotesLeader is the summary sentinel reported while the vote store is empty.
const NoVotesLeader = "No votes yet"

// ComputeResults is a pure function of current store contents: it reads the
// full vote set and the approved candidates and produces ranked results. Safe
// to poll on an interval for a live-results view.
//
// Every approved candidate appears, including those with zero votes. The sort
// is stable descending by votes; tied candidates keep their enumeration order,
// no further tie-break is applied.
func (t *Tabulator) ComputeResults(ctx context.Context) (*models.ResultsResponse, error) {
	voteDocs, err := t.store.Scan(ctx, t.tables.Votes)
	if err != nil {
		return nil, err
	}
	votes := make([]models.Vote, 0, len(voteDocs))
	for _, doc := range voteDocs {
		var v models.Vote
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("failed to decode vote document: %w", err)
		}
		votes = append(votes, v)
	}

	candidates, err := scanCandidates(ctx, t.store, t.tables.Candidates)
	if err != nil {
		return nil, err
	}
	approved := []models.Candidate{}
	for _, c := range candidates {
		if c.Status == models.StatusApproved {
			approved = append(approved, c)
		}
	}

	counts := map[string]int{}
	for _, v := range votes {
		counts[v.CandidateID]++
	}

	totalVotes := len(votes)
	results := make([]models.CandidateResult, 0, len(approved))
	for _, c := range approved {
		n := counts[c.ID]
		percentage := "0.0"
		if totalVotes > 0 {
			percentage = fmt.Sprintf("%.1f", float64(n)/float64(totalVotes)*100)
		}
		results = append(results, models.CandidateResult{
			CandidateID: c.ID,
			Candidate:   c.Name,
			Description: c.Description,
			Platform:    c.Platform,
			Votes:       n,
			Percentage:  percentage,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Votes > results[j].Votes
	})

	summary := models.ResultsSummary{Leader: NoVotesLeader, LeaderVotes: 0}
	if totalVotes > 0 && len(results) > 0 {
		summary = models.ResultsSummary{
			Leader:      results[0].Candidate,
			LeaderVotes: results[0].Votes,
		}
	}

	return &models.ResultsResponse{
		Results:         results,
		TotalVotes:      totalVotes,
		TotalCandidates: len(approved),
		Summary:         summary,
	}, nil
}
