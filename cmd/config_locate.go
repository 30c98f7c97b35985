package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/karolswdev/jira-mcp/internal/config"
)

// configLocateRunE contains the core logic for the config locate command.
func configLocateRunE(cfgProvider ConfigProvider, out io.Writer) error {
	configDir, err := cfgProvider.EnsureConfigDir()
	if err != nil {
		return fmt.Errorf("error ensuring config directory: %w", err)
	}

	fmt.Fprintf(out, "Configuration directory: %s\n", configDir)
	fmt.Fprintln(out, "Configuration sources (later entries win):")
	fmt.Fprintf(out, "- %s\n", filepath.Join(configDir, config.DefaultConfigFileName))
	fmt.Fprintf(out, "- %s (working directory)\n", config.DotEnvFileName)
	fmt.Fprintln(out, "- environment variables (JIRA_BASE_URL, JIRA_USER, JIRA_API_KEY, ...)")

	return nil
}

// newConfigLocateCmd builds the locate command
func newConfigLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Locate jira-mcp configuration files",
		Long: `Displays the configuration directory and the files jira-mcp reads its settings from.
Set JIRA_MCP_CONFIG_DIR to use a different directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configLocateRunE(currentProvider().Config, cmd.OutOrStdout())
		},
	}
}
