package cmd

import (
	"fmt"

	keyring "github.com/zalando/go-keyring"

	"github.com/karolswdev/jira-mcp/internal/config"
	"github.com/karolswdev/jira-mcp/internal/jira"
	"github.com/karolswdev/jira-mcp/internal/tools"
)

// --- Concrete Implementations of Shared Interfaces ---

// DefaultConfigProvider implements the ConfigProvider interface using the config package.
type DefaultConfigProvider struct{}

func (p *DefaultConfigProvider) LoadConfig() (*config.AppConfig, error) {
	return config.LoadConfig("")
}

func (p *DefaultConfigProvider) GetAPIKey(cfg *config.AppConfig) (string, error) {
	return config.GetAPIKey(cfg)
}

// CreateDefaultConfigFiles writes the default config.yaml. An empty configDir
// selects the default directory.
func (p *DefaultConfigProvider) CreateDefaultConfigFiles(configDir string) error {
	return config.CreateDefaultConfigFiles(configDir)
}

func (p *DefaultConfigProvider) EnsureConfigDir() (string, error) {
	return config.EnsureConfigDir("")
}

// newJiraClient is the production JiraFactory.
func newJiraClient(cfg *config.AppConfig) (tools.JiraAPI, error) {
	client, err := jira.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Jira client: %w", err)
	}
	Log.Debug().Str("base_url", client.BaseURL.String()).Msg("Jira client created successfully.")
	return client, nil
}

// defaultKeyringClient implements the KeyringClient interface using the OS keyring.
type defaultKeyringClient struct{}

func (k *defaultKeyringClient) Set(service, user, password string) error {
	return keyring.Set(service, user, password)
}

func (k *defaultKeyringClient) Get(service, user string) (string, error) {
	return keyring.Get(service, user)
}

// --- Central Provider ---

// Provider serves as a central dependency injection container, aggregating
// the services the commands need. Tests replace individual fields with mocks.
type Provider struct {
	Config  ConfigProvider
	Keyring KeyringClient
	Jira    JiraFactory
}

// GetProvider returns a Provider wired to the real config package, OS keyring
// and Jira client. Nothing is loaded until a command asks for it, so config
// commands keep working with an incomplete configuration.
func GetProvider() *Provider {
	return &Provider{
		Config:  &DefaultConfigProvider{},
		Keyring: &defaultKeyringClient{},
		Jira:    newJiraClient,
	}
}

// providerOverride lets integration tests inject a Provider into NewRootCmd.
var providerOverride *Provider

// SetProviderForTesting replaces the Provider used by commands until reset with nil.
func SetProviderForTesting(p *Provider) {
	providerOverride = p
}

func currentProvider() *Provider {
	if providerOverride != nil {
		return providerOverride
	}
	return GetProvider()
}

// loadJira loads the configuration, resolves the API token and builds the
// Jira API. The returned config carries the resolved token.
func loadJira(p *Provider) (tools.JiraAPI, *config.AppConfig, error) {
	cfg, err := p.Config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	apiKey, err := p.Config.GetAPIKey(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve Jira API key: %w", err)
	}
	cfg.JiraAPIKey = apiKey

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	api, err := p.Jira(cfg)
	if err != nil {
		return nil, nil, err
	}
	return api, cfg, nil
}
