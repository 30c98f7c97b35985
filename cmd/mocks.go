package cmd

// This file contains mock implementations used across different test files
// within the cmd package, but which need to be accessible from outside
// _test.go files (e.g., for integration tests).

import (
	"github.com/stretchr/testify/mock"

	"github.com/karolswdev/jira-mcp/internal/config"
)

// --- Mock ConfigProvider ---

// MockConfigProvider is a mock implementation of ConfigProvider.
type MockConfigProvider struct {
	mock.Mock
}

// LoadConfig matches ConfigProvider interface
func (m *MockConfigProvider) LoadConfig() (*config.AppConfig, error) {
	args := m.Called()
	cfg, _ := args.Get(0).(*config.AppConfig)
	return cfg, args.Error(1)
}

// GetAPIKey matches ConfigProvider interface
func (m *MockConfigProvider) GetAPIKey(cfg *config.AppConfig) (string, error) {
	args := m.Called(cfg)
	return args.String(0), args.Error(1)
}

// CreateDefaultConfigFiles matches ConfigProvider interface
func (m *MockConfigProvider) CreateDefaultConfigFiles(configDir string) error {
	args := m.Called(configDir)
	return args.Error(0)
}

// EnsureConfigDir matches ConfigProvider interface
func (m *MockConfigProvider) EnsureConfigDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// --- Mock KeyringClient ---

// MockKeyringClient is a mock implementation of KeyringClient.
type MockKeyringClient struct {
	mock.Mock
}

// Set matches KeyringClient interface
func (m *MockKeyringClient) Set(service, user, password string) error {
	args := m.Called(service, user, password)
	return args.Error(0)
}

// Get matches KeyringClient interface
func (m *MockKeyringClient) Get(service, user string) (string, error) {
	args := m.Called(service, user)
	return args.String(0), args.Error(1)
}
