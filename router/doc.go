// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the election API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg, ms)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Candidate lifecycle:

	GET  /candidates          - Approved candidates (the ballot)
	POST /candidates          - Register a candidate (lands as pending)
	GET  /candidates/pending  - Admin review queue, oldest first
	GET  /candidates/all      - All candidates grouped by status
	POST /candidates/approve  - Approve a pending candidate
	POST /candidates/reject   - Reject with a mandatory reason

Voting:

	POST /vote                - Cast the caller's single vote
	GET  /vote-status?userId= - Has this voter voted, and for whom

Results and administration:

	GET  /results     - Ranked tally with percentages and leader
	GET  /admin/stats - Per-status candidate counts
	POST /init        - Seed sample candidates (skip-if-exists)

# Handler Initialization

The router builds the election services over the injected store handle and
wires them into handler instances:

	mgr := election.NewCandidateManager(st, tables)
	svc := election.NewVotingService(st, tables)
	tab := election.NewTabulator(st, tables)

There is deliberately a single implementation of each service behind the
route table; every endpoint above dispatches into one of the three.
*/
package router
