package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newConfigInitCmd builds the init command
func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize jira-mcp configuration",
		Long: `Creates the configuration directory and a commented config.yaml if they don't exist.
Existing files are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configInitRunE(currentProvider().Config, cmd.OutOrStdout())
		},
	}
}

// configInitRunE contains the core logic for the config init command.
func configInitRunE(configProvider ConfigProvider, writer io.Writer) error {
	log.Info().Msg("Initializing configuration...")
	if err := configProvider.CreateDefaultConfigFiles(""); err != nil {
		log.Error().Err(err).Msg("Failed to initialize configuration files")
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	log.Info().Msg("Configuration initialization complete.")
	fmt.Fprintln(writer, "Configuration directory and default files ensured.")
	return nil
}
