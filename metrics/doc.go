// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes prometheus counters for the election API.

A MetricService is created once at startup, passed to the handlers, and
scraped via GET /metrics. Counters are registered on a private registry so
tests can create throwaway instances.

Counter names are declared as constants (MetricVotesCast et al.) and
incremented through MetricService.Inc.
*/
package metrics
