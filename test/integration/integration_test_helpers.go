//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	keyring "github.com/zalando/go-keyring"

	"github.com/karolswdev/jira-mcp/cmd"
	"github.com/karolswdev/jira-mcp/internal/config"
)

// recordedRequest is one request received by the mock Jira server.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// jiraRecorder collects the requests the mock Jira server receives.
type jiraRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *jiraRecorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
}

func (r *jiraRecorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.requests...)
}

// mockJiraServer creates an httptest server standing in for Jira Cloud. The
// handler sees the request after its body has been recorded.
func mockJiraServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *jiraRecorder) {
	t.Helper()
	rec := &jiraRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.add(recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)})
		r.Body = io.NopCloser(bytes.NewReader(body))
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, rec
}

// writeJSON answers with a JSON document.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// setupTestEnvironment points the configuration at a temporary directory and
// the mock Jira server, and replaces the OS keyring with an in-memory one.
// The API token is expected to come from 'config set-key'.
func setupTestEnvironment(t *testing.T, jiraURL string) string {
	t.Helper()
	tempDir := t.TempDir()

	keyring.MockInit()

	t.Setenv(config.ConfigDirEnvVar, tempDir)
	t.Setenv("JIRA_BASE_URL", jiraURL+"/rest/api/3/")
	t.Setenv("JIRA_USER", "bot@example.com")
	t.Setenv("JIRA_API_KEY", "")
	t.Setenv("REQUESTS_TIMEOUT", "5")
	t.Setenv("JIRA_RATE_LIMIT", "")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FILE", "")
	t.Setenv("METRICS_ADDR", "")

	return tempDir
}

// executeCommand runs the jira-mcp root command with given arguments in-process.
// It captures stdout and stderr.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	var outBuf, errBuf bytes.Buffer

	rootCmd := cmd.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	execErr := rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), execErr
}
