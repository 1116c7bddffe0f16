// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the election core: candidate lifecycle, vote
casting, and results tabulation. All three services are thin on top of a
store.Store handle injected at construction.

# Services

  - CandidateManager: registration with field validation and email/studentId
    uniqueness, admin approve/reject decisions, pending queue, grouped listing
  - VotingService: approved-candidate listing, one-vote-per-voter casting,
    vote status lookup
  - Tabulator: pure tally of the vote store into ranked results

# Candidate Lifecycle

Candidates are created pending and moved exactly once (re-decisions allowed)
by an admin:

	pending → approved   (visible to voters)
	pending → rejected   (never votable)

An approve or reject records who decided and when; it does not erase the
metadata of a prior opposite decision. The status field alone decides
eligibility.

# Vote Integrity

A voter's state machine is HasNotVoted → HasVoted, one-way. The vote record is
keyed by userId and written with the store's atomic insert-if-absent, so even
N concurrent casts from one voter produce exactly one record; the losers
receive AlreadyVotedError with the winning vote disclosed.

# Error Taxonomy

ValidationError, DuplicateError, NotFoundError, AlreadyVotedError, and
NotApprovedError are client-correctable conditions carrying structured detail
for the HTTP layer. Anything else that comes out of these services is a store
failure and maps to a 500.
*/
package election
