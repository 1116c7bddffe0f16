// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/metrics"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/models"
)

type VotingHandler struct {
	svc *election.VotingService
	ms  *metrics.MetricService
}

func NewVotingHandler(svc *election.VotingService, ms *metrics.MetricService) *VotingHandler {
	return &VotingHandler{svc: svc, ms: ms}
}

// ListCandidates handles GET /candidates
// Returns only approved candidates: the ballot voters choose from.
func (h *VotingHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	approved, err := h.svc.ListApprovedCandidates(r.Context())
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to retrieve candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateListResponse{
		Candidates: approved,
		Count:      len(approved),
	})
}

// CastVote handles POST /vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	meta := election.VoteMeta{
		IPAddress: middleware.GetClientIP(r),
		UserAgent: r.UserAgent(),
	}

	receipt, err := h.svc.CastVote(r.Context(), req.CandidateID, req.UserID, meta)
	if err != nil {
		if isVoteRejection(err) {
			h.ms.Inc(metrics.MetricVotesRejected)
		}
		// An unknown candidate id arrived in the request body, so it is a
		// client error here, not a missing resource.
		respondError(w, err, http.StatusBadRequest, "Failed to cast vote")
		return
	}

	h.ms.Inc(metrics.MetricVotesCast)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Message:       "Vote cast successfully",
		CandidateName: receipt.CandidateName,
		Timestamp:     receipt.Timestamp,
		VoteID:        receipt.VoteID,
	})
}

// VoteStatus handles GET /vote-status?userId=
// A store failure is a 500; it is never reported as hasVoted=false.
func (h *VotingHandler) VoteStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	status, err := h.svc.VoteStatus(r.Context(), userID)
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to get vote status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// isVoteRejection reports whether err is a business-rule rejection of a vote
// attempt rather than a system fault.
func isVoteRejection(err error) bool {
	var ave *election.AlreadyVotedError
	var nfe *election.NotFoundError
	var nae *election.NotApprovedError
	return errors.As(err, &ave) || errors.As(err, &nfe) || errors.As(err, &nae)
}
