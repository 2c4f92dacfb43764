// Package metrics holds the console's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageRequests counts rendered page requests by route and status class.
	PageRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "konzola_page_requests_total",
		Help: "Page requests served by the console.",
	}, []string{"route", "status"})

	// BackendRequestDuration observes round trips to the remote inventory API.
	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "konzola_backend_request_duration_seconds",
		Help:    "Duration of requests to the remote inventory API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// BackendRequestErrors counts failed round trips to the remote API.
	BackendRequestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "konzola_backend_request_errors_total",
		Help: "Failed requests to the remote inventory API.",
	}, []string{"operation"})
)
