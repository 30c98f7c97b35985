package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	keyring "github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/karolswdev/jira-mcp/internal/config"
)

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		JiraBaseURL:     "https://example.atlassian.net/rest/api/3/",
		JiraUser:        "bot@example.com",
		RequestsTimeout: 30,
		LogLevel:        "INFO",
	}
}

func TestConfigShowCmd_Success(t *testing.T) {
	mockProvider := new(MockConfigProvider)
	mockKeyring := new(MockKeyringClient)
	var out bytes.Buffer

	mockProvider.On("LoadConfig").Return(testAppConfig(), nil)
	mockKeyring.On("Get", config.KeyringServiceName, config.KeyringUserName).Return("secret-token", nil)

	err := configShowRunE(mockProvider, mockKeyring, &out, "text")

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Current jira-mcp Configuration:")
	assert.Contains(t, out.String(), "  Jira Base URL:    https://example.atlassian.net/rest/api/3/")
	assert.Contains(t, out.String(), "  Jira User:        bot@example.com")
	assert.Contains(t, out.String(), "  Requests Timeout: 30s")
	assert.Contains(t, out.String(), "  Rate Limit:       unlimited")
	assert.Contains(t, out.String(), "  Log File:         (stderr)")
	assert.Contains(t, out.String(), "  Metrics Address:  (not set)")
	assert.Contains(t, out.String(), "  Jira API Key:     Set (in OS keychain")
	assert.NotContains(t, out.String(), "secret-token")
	mockProvider.AssertExpectations(t)
	mockKeyring.AssertExpectations(t)
}

func TestConfigShowCmd_KeyFromEnvironment(t *testing.T) {
	mockProvider := new(MockConfigProvider)
	mockKeyring := new(MockKeyringClient)
	var out bytes.Buffer

	cfg := testAppConfig()
	cfg.JiraAPIKey = "env-token"
	cfg.RateLimit = 2.5
	mockProvider.On("LoadConfig").Return(cfg, nil)

	err := configShowRunE(mockProvider, mockKeyring, &out, "")

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "  Rate Limit:       2.5 req/s")
	assert.Contains(t, out.String(), "  Jira API Key:     Set (from environment or config file)")
	assert.NotContains(t, out.String(), "env-token")
	mockKeyring.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestConfigShowCmd_ConfigLoadError(t *testing.T) {
	mockProvider := new(MockConfigProvider)
	mockKeyring := new(MockKeyringClient)
	var out bytes.Buffer

	expectedErr := errors.New("failed to read config file")
	mockProvider.On("LoadConfig").Return((*config.AppConfig)(nil), expectedErr)

	err := configShowRunE(mockProvider, mockKeyring, &out, "text")

	assert.ErrorIs(t, err, expectedErr)
	assert.Contains(t, err.Error(), "error loading configuration:")
	assert.Empty(t, out.String())
	mockKeyring.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestConfigShowCmd_KeyringNotFound(t *testing.T) {
	mockProvider := new(MockConfigProvider)
	mockKeyring := new(MockKeyringClient)
	var out bytes.Buffer

	mockProvider.On("LoadConfig").Return(testAppConfig(), nil)
	mockKeyring.On("Get", config.KeyringServiceName, config.KeyringUserName).Return("", keyring.ErrNotFound)

	err := configShowRunE(mockProvider, mockKeyring, &out, "text")

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "  Jira API Key:     Not Set (use 'jira-mcp config set-key' to set)")
	mockKeyring.AssertExpectations(t)
}

func TestConfigShowCmd_KeyringOtherError(t *testing.T) {
	mockProvider := new(MockConfigProvider)
	mockKeyring := new(MockKeyringClient)
	var out bytes.Buffer

	mockProvider.On("LoadConfig").Return(testAppConfig(), nil)
	mockKeyring.On("Get", config.KeyringServiceName, config.KeyringUserName).Return("", errors.New("keyring daemon unavailable"))

	err := configShowRunE(mockProvider, mockKeyring, &out, "text")

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "  Jira API Key:     Status Unknown (error checking keychain: keyring daemon unavailable)")
}

func TestConfigShowCmd_StructuredOutput(t *testing.T) {
	t.Run("json never includes the token", func(t *testing.T) {
		mockProvider := new(MockConfigProvider)
		var out bytes.Buffer
		cfg := testAppConfig()
		cfg.JiraAPIKey = "env-token"
		mockProvider.On("LoadConfig").Return(cfg, nil)

		require.NoError(t, configShowRunE(mockProvider, new(MockKeyringClient), &out, "json"))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "bot@example.com", decoded["jira_user"])
		assert.EqualValues(t, 30, decoded["requests_timeout"])
		assert.NotContains(t, out.String(), "env-token")
	})

	t.Run("yaml", func(t *testing.T) {
		mockProvider := new(MockConfigProvider)
		var out bytes.Buffer
		mockProvider.On("LoadConfig").Return(testAppConfig(), nil)

		require.NoError(t, configShowRunE(mockProvider, new(MockKeyringClient), &out, "yaml"))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "https://example.atlassian.net/rest/api/3/", decoded["jira_base_url"])
	})

	t.Run("unsupported format", func(t *testing.T) {
		mockProvider := new(MockConfigProvider)
		var out bytes.Buffer
		mockProvider.On("LoadConfig").Return(testAppConfig(), nil)

		err := configShowRunE(mockProvider, new(MockKeyringClient), &out, "xml")
		assert.ErrorContains(t, err, "unsupported output format")
	})
}
