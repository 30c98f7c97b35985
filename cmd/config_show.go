package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	keyring "github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/karolswdev/jira-mcp/internal/config"
)

// newConfigShowCmd builds the show command
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current jira-mcp configuration",
		Long: `Displays the currently loaded configuration values
from .env, the config file and environment variables. The API token itself is never printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := currentProvider()
			format, _ := cmd.Flags().GetString("output")
			return configShowRunE(provider.Config, provider.Keyring, cmd.OutOrStdout(), format)
		},
	}
}

// configShowRunE contains the core logic for the 'config show' command.
func configShowRunE(cfgProvider ConfigProvider, keyringClient KeyringClient, writer io.Writer, format string) error {
	cfg, err := cfgProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		fmt.Fprintln(writer, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		fmt.Fprint(writer, string(data))
		return nil
	case "text", "":
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	fmt.Fprintln(writer, "Current jira-mcp Configuration:")
	fmt.Fprintf(writer, "  Jira Base URL:    %s\n", valueOrUnset(cfg.JiraBaseURL))
	fmt.Fprintf(writer, "  Jira User:        %s\n", valueOrUnset(cfg.JiraUser))
	fmt.Fprintf(writer, "  Requests Timeout: %ds\n", cfg.RequestsTimeout)
	if cfg.RateLimit > 0 {
		fmt.Fprintf(writer, "  Rate Limit:       %g req/s\n", cfg.RateLimit)
	} else {
		fmt.Fprintln(writer, "  Rate Limit:       unlimited")
	}
	fmt.Fprintf(writer, "  Log Level:        %s\n", cfg.LogLevel)
	if cfg.LogFile != "" {
		fmt.Fprintf(writer, "  Log File:         %s\n", cfg.LogFile)
	} else {
		fmt.Fprintln(writer, "  Log File:         (stderr)")
	}
	fmt.Fprintf(writer, "  Metrics Address:  %s\n", valueOrUnset(cfg.MetricsAddr))
	fmt.Fprintf(writer, "  Jira API Key:     %s\n", apiKeyStatus(cfg, keyringClient))

	return nil
}

// apiKeyStatus reports where the token would come from, never the token itself.
func apiKeyStatus(cfg *config.AppConfig, keyringClient KeyringClient) string {
	if cfg.JiraAPIKey != "" {
		return "Set (from environment or config file)"
	}
	_, err := keyringClient.Get(config.KeyringServiceName, config.KeyringUserName)
	switch {
	case err == nil:
		return "Set (in OS keychain; use 'jira-mcp config set-key' to change)"
	case errors.Is(err, keyring.ErrNotFound):
		return "Not Set (use 'jira-mcp config set-key' to set)"
	default:
		return fmt.Sprintf("Status Unknown (error checking keychain: %v)", err)
	}
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
