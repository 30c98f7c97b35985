package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/karolswdev/jira-mcp/internal/tools"
)

// ErrToolFailed is returned by 'tools call' when the tool reports an error result.
var ErrToolFailed = errors.New("tool call failed")

// newToolsCmd builds the tools command group with its list and call subcommands.
func newToolsCmd() *cobra.Command {
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "List or call the Jira tools without an MCP client",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered Jira tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return toolsListRunE(cmd.OutOrStdout(), format)
		},
	}

	callCmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Call one Jira tool and print its result",
		Long: `Calls a Jira tool in-process, exactly as an MCP client would, and prints the
result. Arguments are passed as a JSON object, for example:

  jira-mcp tools call get_issue --args '{"issue_key":"PROJ-1"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			rawArgs, _ := cmd.Flags().GetString("args")
			return toolsCallRunE(currentProvider(), cmd, cmd.OutOrStdout(), args[0], rawArgs, format)
		},
	}
	callCmd.Flags().String("args", "", "Tool arguments as a JSON object")

	toolsCmd.AddCommand(listCmd)
	toolsCmd.AddCommand(callCmd)
	return toolsCmd
}

// toolsListRunE prints every tool. text prints one line per tool, json and yaml
// print the tool summaries including their arguments.
func toolsListRunE(out io.Writer, format string) error {
	summaries := tools.Summaries(tools.Definitions(nil))

	switch format {
	case "json":
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal tools: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(summaries)
		if err != nil {
			return fmt.Errorf("failed to marshal tools: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "text", "":
		for _, s := range summaries {
			names := make([]string, 0, len(s.Arguments))
			for _, arg := range s.Arguments {
				name := arg.Name
				if !arg.Required {
					name += "?"
				}
				names = append(names, name)
			}
			fmt.Fprintf(out, "%-28s %s\n", s.Name, strings.Join(names, " "))
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}

// toolsCallRunE contains the core logic for 'tools call'.
func toolsCallRunE(provider *Provider, cmd *cobra.Command, out io.Writer, name, rawArgs, format string) error {
	var args map[string]any
	if strings.TrimSpace(rawArgs) != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return fmt.Errorf("--args must be a JSON object: %w", err)
		}
	}
	if _, ok := tools.Find(tools.Definitions(nil), name); !ok {
		return fmt.Errorf("%w: %s", tools.ErrUnknownTool, name)
	}

	api, cfg, err := loadJira(provider)
	if err != nil {
		return err
	}
	if err := applyLogConfig(cmd, cfg); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := tools.Call(ctx, tools.Definitions(api), name, args)
	if err != nil {
		return err
	}
	text := tools.ResultText(res)

	if err := writeToolOutput(out, text, format); err != nil {
		return err
	}
	if res.IsError {
		return fmt.Errorf("%w: %s", ErrToolFailed, name)
	}
	return nil
}

// writeToolOutput prints a tool result. Results are JSON text; yaml converts
// them, falling back to the raw text when they do not parse.
func writeToolOutput(out io.Writer, text, format string) error {
	switch format {
	case "yaml":
		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			fmt.Fprintln(out, text)
			return nil
		}
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "json", "text", "":
		fmt.Fprintln(out, text)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}
