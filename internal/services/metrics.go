package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobby_upstream_requests_total",
			Help: "Calls made to the remote job API by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)
	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobby_upstream_request_duration_seconds",
			Help:    "Duration of calls made to the remote job API.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)
)

const (
	endpointLogin = "login"
	endpointJobs  = "jobs"

	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)
