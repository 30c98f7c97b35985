package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/karolswdev/jira-mcp/internal/config"
)

// newConfigSetKeyCmd builds the set-key command
func newConfigSetKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [api-token]",
		Short: "Stores the Jira API token securely in the OS keychain",
		Long: `Stores the Jira API token securely in the operating system's keychain or keyring.
This keeps the token out of config files and shell history of long-running setups.
The token is associated with the service 'jira-mcp' and user 'jira_api_key'.
JIRA_API_KEY in the environment, .env or config.yaml still takes precedence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return configSetKeyRun(currentProvider().Keyring, cmd.OutOrStdout(), args[0])
		},
	}
}

// configSetKeyRun contains the core logic for the set-key command.
func configSetKeyRun(kc KeyringClient, writer io.Writer, apiKey string) error {
	if apiKey == "" {
		return errors.New("API key cannot be empty")
	}

	log.Info().Msgf("Attempting to store API key in keychain for service '%s'...", config.KeyringServiceName)

	if err := kc.Set(config.KeyringServiceName, config.KeyringUserName, apiKey); err != nil {
		log.Error().Err(err).Msg("Failed to store API key in keychain")
		return fmt.Errorf("%w: %w", config.ErrKeyringSet, err)
	}

	log.Info().Msg("API key stored successfully in keychain.")
	fmt.Fprintln(writer, "API key stored successfully.")
	return nil
}
