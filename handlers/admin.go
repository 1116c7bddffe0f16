// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/campus-vote/cliparse"
	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/seed"
	"github.com/danielhkuo/campus-vote/store"
)

type AdminHandler struct {
	store store.Store
	mgr   *election.CandidateManager
	cfg   cliparse.Config
}

func NewAdminHandler(st store.Store, mgr *election.CandidateManager, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, mgr: mgr, cfg: cfg}
}

// Health handles GET /health
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"environment": map[string]string{
			"storeBackend":    h.cfg.StoreBackend,
			"candidatesTable": h.cfg.CandidatesTable,
			"votesTable":      h.cfg.VotesTable,
		},
		"message": "Elections API is running successfully",
	})
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.mgr.Stats(r.Context())
	if err != nil {
		respondError(w, err, http.StatusNotFound, "Failed to get admin statistics")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stats)
}

// Init handles POST /init
// Seeds the sample candidates, skipping any that already exist.
func (h *AdminHandler) Init(w http.ResponseWriter, r *http.Request) {
	created, skipped, err := seed.Initialize(r.Context(), h.store, h.cfg.CandidatesTable)
	if err != nil {
		slog.Error("failed to initialize sample candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to initialize sample candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"message": "Sample candidates initialization completed",
		"created": created,
		"skipped": skipped,
	})
}
