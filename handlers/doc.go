// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the election API.

# Handler Types

Each handler is a struct with its service dependencies injected:

  - CandidateHandler: registration and the admin approve/reject workflow
  - VotingHandler: approved-candidate listing, vote casting, vote status
  - ResultsHandler: live tally retrieval
  - AdminHandler: health, admin stats, sample-data seeding

Handlers are created via constructor functions:

	candidateHandler := handlers.NewCandidateHandler(mgr, ms)

# Candidate Lifecycle

	POST /candidates          → Register (always lands as pending)
	GET  /candidates/pending  → ListPending (oldest first)
	GET  /candidates/all      → ListAll (grouped by status)
	POST /candidates/approve  → Approve
	POST /candidates/reject   → Reject (reason required)

# Voting Flow

	GET  /candidates          → ListCandidates (approved only)
	POST /vote                → CastVote (one vote per userId, ever)
	GET  /vote-status?userId= → VoteStatus

# Results

	GET /results → GetResults (pure read, pollable)

# Error Mapping

Service errors carry structured detail and map to status codes in one place
(respondError): validation and business-rule conflicts are 400 with
missingFields / previousVote / candidateStatus detail, an unknown candidate is
404 on the admin endpoints and 400 on /vote, and anything else is a 500.
*/
package handlers
