package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewBackendRequestsTotal returns a Prometheus counter for backend API calls issued by the portal
func NewBackendRequestsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "Total number of backend API requests issued by the portal",
	})
}

// NewAuthFailuresTotal returns a Prometheus counter for 401 responses that invalidated the session
func NewAuthFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auth_failures_total",
		Help: "Total number of 401 responses that invalidated the session",
	})
}

// NewRateLimitedTotal returns a Prometheus counter for throttled login attempts
func NewRateLimitedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "login_rate_limited_total",
		Help: "Total number of login attempts rejected by the rate limiter",
	})
}

// NewTransitionsTotal returns a Prometheus counter for status-transition submissions
func NewTransitionsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shipment_transitions_total",
		Help: "Total number of shipment status-transition submissions",
	})
}
