// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterCandidateRequest: name, email, description, platform, studentId (+ optional experience, phone)
  - ApproveCandidateRequest: candidateId, adminId, notes
  - RejectCandidateRequest: candidateId, adminId, reason
  - CastVoteRequest: candidateId, userId

# Response Types

Types for JSON responses:

  - RegisterCandidateResponse: candidateId, status, next steps
  - CandidateListResponse: approved candidates + count
  - PendingCandidatesResponse: review queue + count
  - GroupedCandidatesResponse: candidates bucketed by status
  - DecisionResponse: updated candidate after approve/reject
  - CastVoteResponse: candidateName, timestamp, voteId
  - VoteStatusResponse: hasVoted + prior vote (or null)
  - ResultsResponse: ranked results, totals, leader summary
  - ErrorResponse: error, message, plus structured detail
    (missingFields, duplicateField, previousVote, candidateStatus)

# Domain Types

Internal data structures:

  - Candidate: registered candidate with lifecycle metadata
  - Vote: a voter's immutable choice record, keyed by userId
  - CandidateResult: per-candidate tally entry with percentage

# Constants

Status values:

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

A candidate is created as pending, moved to approved or rejected by an admin
decision, and only approved candidates are eligible to receive votes.
*/
package models
