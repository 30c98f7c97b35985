package cmd

import (
	"github.com/spf13/cobra"
)

// newConfigCmd builds the config command group with its subcommands.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jira-mcp configuration",
		Long: `Provides commands to show, locate, and manage the jira-mcp configuration file
and the Jira API token stored in the OS keychain.
This command itself does not perform any action but serves as a parent for subcommands.`,
	}
	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigLocateCmd())
	configCmd.AddCommand(newConfigSetKeyCmd())
	return configCmd
}
