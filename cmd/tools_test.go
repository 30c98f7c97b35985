package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/karolswdev/jira-mcp/internal/config"
	"github.com/karolswdev/jira-mcp/internal/jira"
	"github.com/karolswdev/jira-mcp/internal/tools"
)

// mockProvider wires mocks for config loading and the Jira API into a Provider.
func mockProvider(t *testing.T, api tools.JiraAPI) (*Provider, *MockConfigProvider) {
	t.Helper()
	cfgProvider := new(MockConfigProvider)
	cfg := testAppConfig()
	cfgProvider.On("LoadConfig").Return(cfg, nil)
	cfgProvider.On("GetAPIKey", cfg).Return("token", nil)
	return &Provider{
		Config:  cfgProvider,
		Keyring: new(MockKeyringClient),
		Jira: func(c *config.AppConfig) (tools.JiraAPI, error) {
			assert.Equal(t, "token", c.JiraAPIKey)
			return api, nil
		},
	}, cfgProvider
}

func TestToolsList(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, toolsListRunE(&out, "text"))

		lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
		assert.Len(t, lines, len(tools.Definitions(nil)))
		assert.Contains(t, out.String(), "get_projects")
		assert.Regexp(t, `create_issue\s+description issuetype project_key title assignee_id\?`, out.String())
		assert.Contains(t, out.String(), "max_results?")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, toolsListRunE(&out, "json"))

		var summaries []tools.Summary
		require.NoError(t, json.Unmarshal(out.Bytes(), &summaries))
		require.NotEmpty(t, summaries)
		assert.Equal(t, "get_projects", summaries[0].Name)
		assert.True(t, summaries[0].ReadOnly)
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, toolsListRunE(&out, "yaml"))

		var summaries []map[string]any
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &summaries))
		assert.Len(t, summaries, len(tools.Definitions(nil)))
	})

	t.Run("unsupported", func(t *testing.T) {
		var out bytes.Buffer
		assert.ErrorContains(t, toolsListRunE(&out, "csv"), "unsupported output format")
	})
}

func TestToolsCall(t *testing.T) {
	issue := &jira.Result{Data: map[string]any{"key": "PROJ-1", "fields": map[string]any{"summary": "Broken build"}}}

	t.Run("prints the JSON result", func(t *testing.T) {
		api := new(tools.MockJiraAPI)
		api.On("GetIssue", mock.Anything, "PROJ-1", mock.Anything).Return(issue, nil)
		provider, cfgProvider := mockProvider(t, api)
		var out bytes.Buffer

		err := toolsCallRunE(provider, &cobra.Command{}, &out, "get_issue", `{"issue_key":"PROJ-1"}`, "json")

		require.NoError(t, err)
		assert.JSONEq(t, `{"key":"PROJ-1","fields":{"summary":"Broken build"}}`, out.String())
		api.AssertExpectations(t)
		cfgProvider.AssertExpectations(t)
	})

	t.Run("yaml output", func(t *testing.T) {
		api := new(tools.MockJiraAPI)
		api.On("GetIssue", mock.Anything, "PROJ-1", mock.Anything).Return(issue, nil)
		provider, _ := mockProvider(t, api)
		var out bytes.Buffer

		err := toolsCallRunE(provider, &cobra.Command{}, &out, "get_issue", `{"issue_key":"PROJ-1"}`, "yaml")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "key: PROJ-1")
		assert.Contains(t, out.String(), "summary: Broken build")
	})

	t.Run("descriptor is not a command failure", func(t *testing.T) {
		api := new(tools.MockJiraAPI)
		notFound := &jira.Result{Descriptor: &jira.ErrorDescriptor{StatusCode: 404, Text: "gone", Reason: "Not Found"}}
		api.On("DeleteIssue", mock.Anything, "PROJ-9").Return(notFound, nil)
		provider, _ := mockProvider(t, api)
		var out bytes.Buffer

		err := toolsCallRunE(provider, &cobra.Command{}, &out, "delete_issue", `{"issue_key":"PROJ-9"}`, "text")

		require.NoError(t, err)
		assert.JSONEq(t, `{"successful":false,"status_code":404,"text":"gone","reason":"Not Found"}`, out.String())
	})

	t.Run("transport failure", func(t *testing.T) {
		api := new(tools.MockJiraAPI)
		api.On("ListProjects", mock.Anything).Return(nil, errors.New("connection refused"))
		provider, _ := mockProvider(t, api)
		var out bytes.Buffer

		err := toolsCallRunE(provider, &cobra.Command{}, &out, "get_projects", "", "text")

		assert.ErrorIs(t, err, ErrToolFailed)
		assert.Contains(t, out.String(), "connection refused")
	})

	t.Run("missing argument", func(t *testing.T) {
		api := new(tools.MockJiraAPI)
		provider, _ := mockProvider(t, api)
		var out bytes.Buffer

		err := toolsCallRunE(provider, &cobra.Command{}, &out, "get_issue", `{}`, "text")

		assert.ErrorIs(t, err, ErrToolFailed)
		assert.Contains(t, out.String(), "issue_key")
		api.AssertNotCalled(t, "GetIssue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown tool fails before loading config", func(t *testing.T) {
		cfgProvider := new(MockConfigProvider)
		provider := &Provider{Config: cfgProvider}
		var out bytes.Buffer

		err := toolsCallRunE(provider, &cobra.Command{}, &out, "no_such_tool", "", "text")

		assert.ErrorIs(t, err, tools.ErrUnknownTool)
		cfgProvider.AssertNotCalled(t, "LoadConfig")
	})

	t.Run("arguments must be a JSON object", func(t *testing.T) {
		var out bytes.Buffer
		err := toolsCallRunE(&Provider{}, &cobra.Command{}, &out, "get_issue", `["PROJ-1"]`, "text")
		assert.ErrorContains(t, err, "--args must be a JSON object")
	})

	t.Run("invalid configuration", func(t *testing.T) {
		cfgProvider := new(MockConfigProvider)
		cfg := testAppConfig()
		cfg.JiraBaseURL = ""
		cfgProvider.On("LoadConfig").Return(cfg, nil)
		cfgProvider.On("GetAPIKey", cfg).Return("token", nil)
		provider := &Provider{Config: cfgProvider}
		var out bytes.Buffer

		err := toolsCallRunE(provider, &cobra.Command{}, &out, "get_projects", "", "text")

		assert.ErrorIs(t, err, config.ErrBaseURLMissing)
	})
}
