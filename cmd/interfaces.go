package cmd

import (
	"github.com/karolswdev/jira-mcp/internal/config"
	"github.com/karolswdev/jira-mcp/internal/tools"
)

// ConfigProvider defines an interface for components that load the server
// configuration and resolve the Jira API token. It also includes methods for
// managing the configuration directory and default files. This abstraction
// allows for easier testing by mocking configuration loading behavior.
type ConfigProvider interface {
	LoadConfig() (*config.AppConfig, error)
	GetAPIKey(cfg *config.AppConfig) (string, error)
	CreateDefaultConfigFiles(configDir string) error
	EnsureConfigDir() (string, error)
}

// JiraFactory builds the Jira API the tools call from a validated configuration.
type JiraFactory func(cfg *config.AppConfig) (tools.JiraAPI, error)

// KeyringClient defines an interface for components that interact with the
// operating system's secure credential store (keychain/keyring).
type KeyringClient interface {
	Set(service, user, password string) error
	Get(service, user string) (string, error)
}
