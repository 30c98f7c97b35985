package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/karolswdev/jira-mcp/internal/config"
)

func TestConfigSetKeyCmd_Success(t *testing.T) {
	mockKeyring := new(MockKeyringClient)
	var out bytes.Buffer

	apiKey := "test-api-token-123"
	mockKeyring.On("Set", "jira-mcp", "jira_api_key", apiKey).Return(nil)

	err := configSetKeyRun(mockKeyring, &out, apiKey)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "API key stored successfully.")
	mockKeyring.AssertExpectations(t)
}

func TestConfigSetKeyCmd_KeyringError(t *testing.T) {
	mockKeyring := new(MockKeyringClient)
	var out bytes.Buffer

	apiKey := "test-api-token-123"
	expectedErr := errors.New("failed to access keyring")
	mockKeyring.On("Set", config.KeyringServiceName, config.KeyringUserName, apiKey).Return(expectedErr)

	err := configSetKeyRun(mockKeyring, &out, apiKey)

	assert.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.ErrorIs(t, err, config.ErrKeyringSet)
	assert.Empty(t, out.String())
	mockKeyring.AssertExpectations(t)
}

func TestConfigSetKeyCmd_EmptyKey(t *testing.T) {
	mockKeyring := new(MockKeyringClient)
	var out bytes.Buffer

	err := configSetKeyRun(mockKeyring, &out, "")

	assert.EqualError(t, err, "API key cannot be empty")
	assert.Empty(t, out.String())
	mockKeyring.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}
