package observability

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackJiraRequest(t *testing.T) {
	before200 := testutil.ToFloat64(jiraRequestsTotal.WithLabelValues("GET", "200"))
	beforeTransport := testutil.ToFloat64(jiraRequestsTotal.WithLabelValues("PUT", StatusTransportError))

	done := TrackJiraRequest("GET")
	assert.Equal(t, 1.0, testutil.ToFloat64(jiraRequestsInFlight))
	done(200)
	assert.Equal(t, 0.0, testutil.ToFloat64(jiraRequestsInFlight))

	TrackJiraRequest("PUT")(0)

	assert.Equal(t, before200+1, testutil.ToFloat64(jiraRequestsTotal.WithLabelValues("GET", "200")))
	assert.Equal(t, beforeTransport+1, testutil.ToFloat64(jiraRequestsTotal.WithLabelValues("PUT", StatusTransportError)))
}

func TestRecordToolCall(t *testing.T) {
	before := testutil.ToFloat64(toolCallsTotal.WithLabelValues("get_issue", "descriptor"))
	RecordToolCall("get_issue", "descriptor")
	assert.Equal(t, before+1, testutil.ToFloat64(toolCallsTotal.WithLabelValues("get_issue", "descriptor")))
}

func TestMetricsServer(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	server := StartMetricsServer(addr)
	t.Cleanup(func() { _ = ShutdownMetricsServer(server) })

	RecordToolCall("get_projects", "ok")

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/metrics")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "mcp_tool_calls_total")

	health, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)

	assert.NoError(t, ShutdownMetricsServer(nil))
}
