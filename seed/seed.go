// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/campus-vote/models"
	"github.com/danielhkuo/campus-vote/store"
)

// SampleCandidates returns the demo candidates used to exercise a fresh
// deployment. They are created pre-approved so the ballot is non-empty.
func SampleCandidates() []models.Candidate {
	now := time.Now().UTC()
	admin := "system-admin"

	base := models.CandidateMetadata{
		IPAddress:          "127.0.0.1",
		UserAgent:          "System Initialization",
		RegistrationSource: models.SourceSystem,
	}

	candidates := []models.Candidate{
		{
			ID:          "1",
			Name:        "Alice Johnson",
			Email:       "alice@university.edu",
			Description: "Experienced leader with a vision for positive change and student advocacy.",
			Platform:    "Focus on student welfare, campus improvements, and academic excellence.",
			Experience:  "3 years in student government, President of Debate Society",
			StudentID:   "STU001",
			Phone:       "+1-555-0101",
		},
		{
			ID:          "2",
			Name:        "Bob Smith",
			Email:       "bob@university.edu",
			Description: "Fresh perspective with innovative ideas for modern student needs.",
			Platform:    "Technology integration, sustainability initiatives, and inclusive policies.",
			Experience:  "2 years in debate club, Tech committee member",
			StudentID:   "STU002",
			Phone:       "+1-555-0102",
		},
		{
			ID:          "3",
			Name:        "Charlie Davis",
			Email:       "charlie@university.edu",
			Description: "Innovation focused leader with proven track record in student organizations.",
			Platform:    "Career development, mental health support, and campus diversity.",
			Experience:  "4 years in various student organizations, Former student body treasurer",
			StudentID:   "STU003",
			Phone:       "+1-555-0103",
		},
	}

	for i := range candidates {
		candidates[i].Status = models.StatusApproved
		candidates[i].RegistrationDate = now
		candidates[i].ApprovedDate = &now
		candidates[i].ApprovedBy = &admin
		candidates[i].Metadata = base
	}
	return candidates
}

// Initialize inserts the sample candidates with conditional puts, skipping
// any that already exist so repeated calls never clobber live data.
func Initialize(ctx context.Context, st store.Store, table string) (created, skipped int, err error) {
	for _, c := range SampleCandidates() {
		doc, err := json.Marshal(c)
		if err != nil {
			return created, skipped, fmt.Errorf("failed to encode sample candidate %s: %w", c.ID, err)
		}

		err = st.PutIfAbsent(ctx, table, c.ID, doc)
		if errors.Is(err, store.ErrAlreadyExists) {
			skipped++
			continue
		}
		if err != nil {
			return created, skipped, err
		}
		created++
		slog.Info("sample candidate initialized", "candidate_id", c.ID, "name", c.Name)
	}
	return created, skipped, nil
}
