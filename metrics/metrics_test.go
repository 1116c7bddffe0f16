// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIncAndScrape(t *testing.T) {
	ms := NewMetricService()

	ms.Inc(MetricVotesCast)
	ms.Inc(MetricVotesCast)
	ms.Inc(MetricCandidatesApproved)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	ms.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, MetricVotesCast+" 2") {
		t.Errorf("Expected %s to be 2, scrape output:\n%s", MetricVotesCast, body)
	}
	if !strings.Contains(body, MetricCandidatesApproved+" 1") {
		t.Errorf("Expected %s to be 1", MetricCandidatesApproved)
	}
	// Untouched counters still appear at zero
	if !strings.Contains(body, MetricVotesRejected+" 0") {
		t.Errorf("Expected %s to be 0", MetricVotesRejected)
	}
}

func TestIncUnknownNameIsIgnored(t *testing.T) {
	ms := NewMetricService()

	// Must not panic
	ms.Inc("no_such_counter_total")
}

// Each service owns a private registry, so two instances never collide the
// way duplicate registrations on the default registry would.
func TestInstancesAreIsolated(t *testing.T) {
	a := NewMetricService()
	b := NewMetricService()

	a.Inc(MetricVotesCast)

	w := httptest.NewRecorder()
	b.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(w.Body.String(), MetricVotesCast+" 0") {
		t.Error("Expected second instance to be unaffected by the first")
	}
}
