// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/middleware"
)

type ResultsHandler struct {
	tab *election.Tabulator
}

func NewResultsHandler(tab *election.Tabulator) *ResultsHandler {
	return &ResultsHandler{tab: tab}
}

// GetResults handles GET /results
// Tallying is a pure read of the stores, so this endpoint is safe to poll
// for a live results view.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.tab.ComputeResults(r.Context())
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to get election results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
