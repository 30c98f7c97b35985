package cmd

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/karolswdev/jira-mcp/internal/config"
	"github.com/karolswdev/jira-mcp/internal/observability"
	"github.com/karolswdev/jira-mcp/internal/tools"
)

// serveStdio runs the MCP server on stdin/stdout until stdin closes or the
// process is signalled. Tests replace it.
var serveStdio = func(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// newServeCmd builds the serve command
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the Jira tools over MCP stdio",
		Long: `Loads the configuration, connects the Jira client and serves every Jira tool
to an MCP client over stdin/stdout. This is also what jira-mcp does when run
without a subcommand. Set METRICS_ADDR to expose Prometheus metrics.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	return serveRunE(currentProvider(), cmd)
}

// serveRunE contains the core logic for the serve command.
func serveRunE(provider *Provider, cmd *cobra.Command) error {
	api, cfg, err := loadJira(provider)
	if err != nil {
		return err
	}
	if err := applyLogConfig(cmd, cfg); err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		metricsServer := observability.StartMetricsServer(cfg.MetricsAddr)
		defer func() {
			if err := observability.ShutdownMetricsServer(metricsServer); err != nil {
				Log.Warn().Err(err).Msg("Failed to stop metrics server")
			}
		}()
	}

	s := tools.NewServer(version, tools.Definitions(api))
	Log.Info().
		Str("base_url", cfg.JiraBaseURL).
		Str("user", cfg.JiraUser).
		Dur("timeout", cfg.Timeout()).
		Msg("Serving Jira tools over stdio")

	if err := serveStdio(s); err != nil {
		return fmt.Errorf("MCP server stopped: %w", err)
	}
	return nil
}

// applyLogConfig reconfigures the logger with the level and file from the
// loaded configuration. An explicit --log-level flag still wins.
func applyLogConfig(cmd *cobra.Command, cfg *config.AppConfig) error {
	return configureLogger(effectiveLogLevel(cmd, cfg.LogLevel), cfg.LogFile)
}
