// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/campus-vote/cliparse"
	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/handlers"
	"github.com/danielhkuo/campus-vote/metrics"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/store"
)

func NewRouter(st store.Store, cfg cliparse.Config, ms *metrics.MetricService) *http.ServeMux {
	mux := http.NewServeMux()

	tables := election.Tables{
		Candidates: cfg.CandidatesTable,
		Votes:      cfg.VotesTable,
	}

	// Initialize services and handlers
	mgr := election.NewCandidateManager(st, tables)
	svc := election.NewVotingService(st, tables)
	tab := election.NewTabulator(st, tables)

	candidateHandler := handlers.NewCandidateHandler(mgr, ms)
	votingHandler := handlers.NewVotingHandler(svc, ms)
	resultsHandler := handlers.NewResultsHandler(tab)
	adminHandler := handlers.NewAdminHandler(st, mgr, cfg)

	// Health check
	mux.HandleFunc("GET /health", adminHandler.Health)

	// Candidate lifecycle
	mux.HandleFunc("GET /candidates", middleware.WithLogging(votingHandler.ListCandidates))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.Register))
	mux.HandleFunc("GET /candidates/pending", middleware.WithLogging(candidateHandler.ListPending))
	mux.HandleFunc("GET /candidates/all", middleware.WithLogging(candidateHandler.ListAll))
	mux.HandleFunc("POST /candidates/approve", middleware.WithLogging(candidateHandler.Approve))
	mux.HandleFunc("POST /candidates/reject", middleware.WithLogging(candidateHandler.Reject))

	// Voting
	mux.HandleFunc("POST /vote", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /vote-status", middleware.WithLogging(votingHandler.VoteStatus))

	// Results
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))

	// Administration
	mux.HandleFunc("GET /admin/stats", middleware.WithLogging(adminHandler.Stats))
	mux.HandleFunc("POST /init", middleware.WithLogging(adminHandler.Init))

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", ms.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("campus-vote API v1"))
	})

	return mux
}
