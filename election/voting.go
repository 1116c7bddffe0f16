// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

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

// VoteMeta is an audit snapshot captured with a vote. Non-authoritative.
type VoteMeta struct {
	IPAddress string
	UserAgent string
}

// VoteReceipt is what a voter gets back after a successful cast. VoteID is a
// reference string, not a lookup key; votes are keyed by userId alone.
type VoteReceipt struct {
	CandidateName string
	Timestamp     time.Time
	VoteID        string
}

// VotingService validates and records a single vote per voter against an
// approved candidate.
type VotingService struct {
	store  store.Store
	tables Tables
}

func NewVotingService(st store.Store, tables Tables) *VotingService {
	return &VotingService{store: st, tables: tables}
}

// ListApprovedCandidates returns the only candidate list voters may choose
// from: candidates whose status is approved.
func (s *VotingService) ListApprovedCandidates(ctx context.Context) ([]models.Candidate, error) {
	candidates, err := scanCandidates(ctx, s.store, s.tables.Candidates)
	if err != nil {
		return nil, err
	}

	approved := []models.Candidate{}
	for _, c := range candidates {
		if c.Status == models.StatusApproved {
			approved = append(approved, c)
		}
	}
	return approved, nil
}

// CastVote records userID's vote for candidateID. A voter moves from
// has-not-voted to has-voted exactly once; the conditional insert on userId
// decides any race, so two concurrent casts can never both land.
func (s *VotingService) CastVote(ctx context.Context, candidateID, userID string, meta VoteMeta) (*VoteReceipt, error) {
	missing := []string{}
	if candidateID == "" {
		missing = append(missing, "candidateId")
	}
	if userID == "" {
		missing = append(missing, "userId")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	// Early check for an existing vote. This is a courtesy fast path; the
	// PutIfAbsent below is what actually enforces the invariant.
	if prior, err := s.lookupVote(ctx, userID); err != nil {
		return nil, err
	} else if prior != nil {
		return nil, &AlreadyVotedError{Previous: *prior}
	}

	doc, err := s.store.Get(ctx, s.tables.Candidates, candidateID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{CandidateID: candidateID}
	}
	if err != nil {
		return nil, err
	}
	candidate, err := decodeCandidate(doc)
	if err != nil {
		return nil, err
	}
	if candidate.Status != models.StatusApproved {
		return nil, &NotApprovedError{CandidateID: candidateID, Status: candidate.Status}
	}

	vote := models.Vote{
		UserID:        userID,
		CandidateID:   candidateID,
		CandidateName: candidate.Name,
		Timestamp:     time.Now().UTC(),
		IPAddress:     meta.IPAddress,
		Metadata: models.VoteMetadata{
			UserAgent:  meta.UserAgent,
			VoteSource: models.SourceWeb,
		},
	}
	voteDoc, err := json.Marshal(vote)
	if err != nil {
		return nil, fmt.Errorf("failed to encode vote: %w", err)
	}

	err = s.store.PutIfAbsent(ctx, s.tables.Votes, userID, voteDoc)
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost the race to a concurrent cast from the same voter; disclose
		// the vote that won.
		prior, lookupErr := s.lookupVote(ctx, userID)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if prior == nil {
			return nil, fmt.Errorf("vote for %s exists but could not be read back", userID)
		}
		return nil, &AlreadyVotedError{Previous: *prior}
	}
	if err != nil {
		return nil, err
	}

	slog.Info("vote cast", "user_id", userID, "candidate_id", candidateID, "candidate_name", candidate.Name)
	return &VoteReceipt{
		CandidateName: candidate.Name,
		Timestamp:     vote.Timestamp,
		VoteID:        userID + "_" + candidateID,
	}, nil
}

// VoteStatus reports whether userID has voted and, if so, for whom. A store
// failure is returned as an error, never coerced into hasVoted=false.
func (s *VotingService) VoteStatus(ctx context.Context, userID string) (*models.VoteStatusResponse, error) {
	if userID == "" {
		return nil, &ValidationError{MissingFields: []string{"userId"}}
	}

	prior, err := s.lookupVote(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return &models.VoteStatusResponse{HasVoted: false, Vote: nil}, nil
	}
	return &models.VoteStatusResponse{HasVoted: true, Vote: prior}, nil
}

// lookupVote returns the voter's prior vote, nil when none exists.
func (s *VotingService) lookupVote(ctx context.Context, userID string) (*models.VoteInfo, error) {
	doc, err := s.store.Get(ctx, s.tables.Votes, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var vote models.Vote
	if err := json.Unmarshal(doc, &vote); err != nil {
		return nil, fmt.Errorf("failed to decode vote document: %w", err)
	}
	return &models.VoteInfo{
		CandidateID:   vote.CandidateID,
		CandidateName: vote.CandidateName,
		Timestamp:     vote.Timestamp,
	}, nil
}
