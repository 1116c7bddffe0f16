// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/models"
)

// respondError maps a service error onto an HTTP response with structured
// detail. notFoundStatus varies by endpoint: admin decisions report an
// unknown candidate as 404, vote casting reports it as 400 (the id arrived in
// a request body, not a path). Anything unclassified is a store failure and
// becomes a 500 with the fallback message.
func respondError(w http.ResponseWriter, err error, notFoundStatus int, fallback string) {
	var ve *election.ValidationError
	var de *election.DuplicateError
	var nfe *election.NotFoundError
	var ave *election.AlreadyVotedError
	var nae *election.NotApprovedError

	switch {
	case errors.As(err, &ve):
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:         "Missing required fields",
			MissingFields: ve.MissingFields,
		})
	case errors.As(err, &de):
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:          fmt.Sprintf("A candidate with this %s already exists", de.Field),
			DuplicateField: de.Field,
		})
	case errors.As(err, &nfe):
		middleware.JSONResponse(w, notFoundStatus, models.ErrorResponse{
			Error:       "Candidate not found",
			CandidateID: nfe.CandidateID,
		})
	case errors.As(err, &ave):
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:        "User has already voted",
			PreviousVote: &ave.Previous,
		})
	case errors.As(err, &nae):
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:           "Candidate is not approved for voting",
			CandidateID:     nae.CandidateID,
			CandidateStatus: nae.Status,
		})
	default:
		slog.Error(fallback, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}
