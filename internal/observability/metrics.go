// Package observability exposes Prometheus metrics for outbound Jira traffic
// and the optional HTTP listener that serves them.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StatusTransportError labels requests that never produced an HTTP status.
const StatusTransportError = "transport_error"

var (
	jiraRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jira_api_requests_total",
			Help: "Total number of requests sent to the Jira REST API",
		},
		[]string{"method", "status"},
	)

	jiraRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jira_api_request_duration_seconds",
			Help:    "Duration of Jira REST API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	jiraRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "jira_api_requests_in_flight",
			Help: "Number of Jira REST API requests currently waiting for a response",
		},
	)

	toolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcp_tool_calls_total",
			Help: "Total number of MCP tool invocations",
		},
		[]string{"tool", "outcome"},
	)
)

// TrackJiraRequest marks a request as in flight and returns a function that
// records its outcome. Pass status 0 when the request failed before a response.
func TrackJiraRequest(method string) func(status int) {
	start := time.Now()
	jiraRequestsInFlight.Inc()
	return func(status int) {
		jiraRequestsInFlight.Dec()
		jiraRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		label := StatusTransportError
		if status > 0 {
			label = strconv.Itoa(status)
		}
		jiraRequestsTotal.WithLabelValues(method, label).Inc()
	}
}

// RecordToolCall counts one tool invocation. Outcome is "ok", "descriptor" or "error".
func RecordToolCall(tool, outcome string) {
	toolCallsTotal.WithLabelValues(tool, outcome).Inc()
}
