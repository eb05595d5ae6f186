// Package metrics declares the Prometheus collectors of the inscriber.
// Collectors are registered on the default registry and exposed by `inscriber serve`.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inscriber"

var (
	// OutboundRequests counts requests sent to the inscription API.
	OutboundRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "httpclient",
		Name:      "requests_total",
		Help:      "Outbound HTTP requests by operation, method and status class.",
	}, []string{"operation", "method", "status"})

	OutboundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "httpclient",
		Name:      "request_duration_seconds",
		Help:      "Outbound HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "method"})

	// AuthHeaderStripped counts requests sent without their expired bearer token.
	AuthHeaderStripped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "httpclient",
		Name:      "auth_header_stripped_total",
		Help:      "Requests whose authorization header was removed because the token was expired or undecodable.",
	})

	// StateTransitions counts orchestrator state changes.
	StateTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orchestrator",
		Name:      "state_transitions_total",
		Help:      "Orchestrator state transitions by flow and target state.",
	}, []string{"flow", "state"})

	// PollTicks counts payment-status polls by result.
	PollTicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orchestrator",
		Name:      "poll_ticks_total",
		Help:      "Payment status polls by flow and result.",
	}, []string{"flow", "result"})

	// ProxyRequests counts requests handled by the proxy server.
	ProxyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "proxy",
		Name:      "requests_total",
		Help:      "Proxy requests by route and response status.",
	}, []string{"route", "status"})
)

// StatusClass groups an HTTP status code into 1xx..5xx. Zero means the request never got a response.
func StatusClass(code int) string {
	if code <= 0 {
		return "error"
	}
	return strconv.Itoa(code/100) + "xx"
}
