package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/karolswdev/jira-mcp/internal/config"
)

// version is set during build time (e.g., via ldflags)
// Default is "dev" for local development.
var version = "dev"

// LogDir is the directory LOG_FILE is written to, relative to the working directory.
const LogDir = "logs"

var (
	// Log is the globally configured zerolog logger instance used throughout the cmd package.
	Log zerolog.Logger

	// logFile is the currently open LOG_FILE, closed when the logger is reconfigured.
	logFile *os.File
)

// parseLevel accepts zerolog level names and the Python style names the
// server has always documented (WARNING, CRITICAL).
func parseLevel(levelStr string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "warning":
		return zerolog.WarnLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr)))
}

// configureLogger sets up the global zerolog logger. Logs go to stderr, or to
// logs/<fileName> when fileName is set; stdout belongs to the MCP transport.
func configureLogger(levelStr, fileName string) error {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	if fileName != "" {
		if err := os.MkdirAll(LogDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(LogDir, fileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		if logFile != nil {
			_ = logFile.Close()
		}
		logFile = f
		out = zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
	}
	log.Logger = log.Output(out).With().Timestamp().Logger()

	level, err := parseLevel(levelStr)
	if err != nil {
		log.Warn().Msgf("Invalid log level '%s', defaulting to 'info'", levelStr)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	Log = log.Logger
	Log.Debug().Msgf("Log level set to '%s'", level.String())
	return nil
}

// effectiveLogLevel picks the --log-level flag when given, then LOG_LEVEL, then the default.
func effectiveLogLevel(cmd *cobra.Command, configured string) string {
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		return f.Value.String()
	}
	if configured != "" {
		return configured
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return env
	}
	return config.DefaultLogLevel
}

// persistentPreRunLogic contains the logic for PersistentPreRunE, reusable by NewRootCmd.
// The logger is configured from flags and the environment here and refined once
// the configuration file has been read.
func persistentPreRunLogic(cmd *cobra.Command, args []string) error {
	showVersion, _ := cmd.Flags().GetBool("version")
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		os.Exit(0)
	}
	return configureLogger(effectiveLogLevel(cmd, ""), os.Getenv("LOG_FILE"))
}

const rootShort = "Jira Cloud tools for MCP clients"

const rootLong = `jira-mcp exposes the Jira Cloud REST API as tools on a Model Context Protocol
server. Run without a subcommand (or with 'serve') to serve the tools over stdio.
Configure it with JIRA_BASE_URL, JIRA_USER and JIRA_API_KEY, a .env file, or
'jira-mcp config init'.`

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute is the main entry point for the Cobra CLI application.
// It is typically called directly from main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if Log.GetLevel() == zerolog.Disabled {
			_ = configureLogger("info", "")
		}
		Log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command with a fresh command tree. Every call
// builds its own subcommands, so flags parsed by one tree never leak into another.
func NewRootCmd() *cobra.Command {
	newCmd := &cobra.Command{
		Use:               "jira-mcp",
		Short:             rootShort,
		Long:              rootLong,
		PersistentPreRunE: persistentPreRunLogic,
		RunE:              runServe,
		SilenceUsage:      true,
	}

	newCmd.PersistentFlags().String("log-level", "info", "Set log level (debug, info, warning, error, critical)")
	newCmd.PersistentFlags().Bool("version", false, "Show application version")
	newCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text|json|yaml)")

	newCmd.AddCommand(newConfigCmd())
	newCmd.AddCommand(newServeCmd())
	newCmd.AddCommand(newToolsCmd())
	newCmd.AddCommand(newCompletionCmd())

	return newCmd
}

// newCompletionCmd builds the completion command
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(jira-mcp completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ jira-mcp completion zsh > "${fpath[1]}/_jira-mcp"

Fish:
  $ jira-mcp completion fish | source

PowerShell:
  PS> jira-mcp completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell type %q", args[0])
			}
		},
	}
}
