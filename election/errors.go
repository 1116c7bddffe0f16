// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/campus-vote/models"
)

// ValidationError reports missing or malformed input. MissingFields lists
// every absent required field, not just the first.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.MissingFields, ", ")
}

// DuplicateError reports a registration conflict on a unique field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a candidate with this %s already exists", e.Field)
}

// NotFoundError reports an unknown candidate id.
type NotFoundError struct {
	CandidateID string
}

func (e *NotFoundError) Error() string {
	return "candidate not found: " + e.CandidateID
}

// AlreadyVotedError reports that the voter already has a vote on record. The
// prior vote is carried so it can be disclosed back to the voter.
type AlreadyVotedError struct {
	Previous models.VoteInfo
}

func (e *AlreadyVotedError) Error() string {
	return "user has already voted for " + e.Previous.CandidateName
}

// NotApprovedError reports a vote against a candidate whose status is not
// approved, carrying the current status.
type NotApprovedError struct {
	CandidateID string
	Status      string
}

func (e *NotApprovedError) Error() string {
	return fmt.Sprintf("candidate %s is not approved for voting (status: %s)", e.CandidateID, e.Status)
}
