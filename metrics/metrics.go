// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Lifecycle
	MetricCandidatesRegistered = "candidates_registered_total"
	MetricCandidatesApproved   = "candidates_approved_total"
	MetricCandidatesRejected   = "candidates_rejected_total"
	// Voting
	MetricVotesCast     = "votes_cast_total"
	MetricVotesRejected = "votes_rejected_total"
)

// MetricService owns the process counters and the scrape endpoint. It uses a
// private registry so multiple instances (one per test) never collide.
type MetricService struct {
	registry *prometheus.Registry
	counters map[string]prometheus.Counter
}

func NewMetricService() *MetricService {
	ms := &MetricService{
		registry: prometheus.NewRegistry(),
		counters: make(map[string]prometheus.Counter),
	}

	for name, help := range map[string]string{
		MetricCandidatesRegistered: "Candidate registrations accepted",
		MetricCandidatesApproved:   "Candidates approved by an admin",
		MetricCandidatesRejected:   "Candidates rejected by an admin",
		MetricVotesCast:            "Votes recorded in the vote store",
		MetricVotesRejected:        "Vote attempts rejected (already voted, invalid candidate)",
	} {
		c := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
		ms.counters[name] = c
		ms.registry.MustRegister(c)
	}
	return ms
}

// Inc increments the named counter. Unknown names are ignored.
func (ms *MetricService) Inc(name string) {
	if c, ok := ms.counters[name]; ok {
		c.Inc()
	}
}

// Handler returns the scrape endpoint for this service's registry.
func (ms *MetricService) Handler() http.Handler {
	return promhttp.HandlerFor(ms.registry, promhttp.HandlerOpts{})
}
