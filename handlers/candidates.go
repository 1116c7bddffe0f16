// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/metrics"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/models"
)

type CandidateHandler struct {
	mgr *election.CandidateManager
	ms  *metrics.MetricService
}

func NewCandidateHandler(mgr *election.CandidateManager, ms *metrics.MetricService) *CandidateHandler {
	return &CandidateHandler{mgr: mgr, ms: ms}
}

// Register handles POST /candidates
func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	meta := election.RegistrationMeta{
		IPAddress: middleware.GetClientIP(r),
		UserAgent: r.UserAgent(),
		Source:    models.SourceWeb,
	}

	candidate, err := h.mgr.Register(r.Context(), req, meta)
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to register candidate")
		return
	}

	h.ms.Inc(metrics.MetricCandidatesRegistered)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterCandidateResponse{
		Message:     "Candidate registration submitted successfully",
		CandidateID: candidate.ID,
		Status:      candidate.Status,
		NextSteps: []string{
			"Your application is under review",
			"You will be notified via email about the approval status",
			"The review process typically takes 2-3 business days",
		},
	})
}

// ListPending handles GET /candidates/pending
func (h *CandidateHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.mgr.ListPending(r.Context())
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to retrieve pending candidates")
		return
	}

	message := "No candidates pending approval"
	if len(pending) > 0 {
		message = fmt.Sprintf("%d candidates awaiting review", len(pending))
	}

	middleware.JSONResponse(w, http.StatusOK, models.PendingCandidatesResponse{
		PendingCandidates: pending,
		Count:             len(pending),
		Message:           message,
	})
}

// ListAll handles GET /candidates/all
func (h *CandidateHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.mgr.ListAll(r.Context())
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to retrieve candidates")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, grouped)
}

// Approve handles POST /candidates/approve
func (h *CandidateHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req models.ApproveCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, err := h.mgr.Approve(r.Context(), req.CandidateID, req.AdminID, req.Notes)
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to approve candidate")
		return
	}

	h.ms.Inc(metrics.MetricCandidatesApproved)

	middleware.JSONResponse(w, http.StatusOK, models.DecisionResponse{
		Message:   "Candidate approved successfully",
		Candidate: *candidate,
		Action:    "approved",
	})
}

// Reject handles POST /candidates/reject
func (h *CandidateHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req models.RejectCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, err := h.mgr.Reject(r.Context(), req.CandidateID, req.AdminID, req.Reason)
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to reject candidate")
		return
	}

	h.ms.Inc(metrics.MetricCandidatesRejected)

	middleware.JSONResponse(w, http.StatusOK, models.DecisionResponse{
		Message:   "Candidate rejected",
		Candidate: *candidate,
		Action:    "rejected",
	})
}
