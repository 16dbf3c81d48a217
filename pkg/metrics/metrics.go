// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes for rate table lookups.
const (
	RateOutcomeCache    = "cache"
	RateOutcomeLive     = "live"
	RateOutcomeFallback = "fallback"
)

// RateLookups counts rate table lookups by outcome.
var RateLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "warikan_rate_lookups_total",
		Help: "Rate table lookups by outcome (cache, live, fallback).",
	},
	[]string{"outcome"},
)

// HTTPRequests counts handled HTTP requests by route and status.
var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "warikan_http_requests_total",
		Help: "Handled HTTP requests by method, route and status code.",
	},
	[]string{"method", "route", "status"},
)

// HTTPDuration observes request latency per route.
var HTTPDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "warikan_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
