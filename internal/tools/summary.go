package tools

import (
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Summary is a flat description of a tool for command line listings.
type Summary struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	ReadOnly    bool              `json:"read_only" yaml:"read_only"`
	Arguments   []ArgumentSummary `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// ArgumentSummary describes one tool argument.
type ArgumentSummary struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Summaries describes every tool in defs. Arguments are listed required first, then by name.
func Summaries(defs []server.ServerTool) []Summary {
	out := make([]Summary, 0, len(defs))
	for _, def := range defs {
		out = append(out, summarize(def.Tool))
	}
	return out
}

func summarize(tool mcp.Tool) Summary {
	required := make(map[string]bool, len(tool.InputSchema.Required))
	for _, name := range tool.InputSchema.Required {
		required[name] = true
	}

	args := make([]ArgumentSummary, 0, len(tool.InputSchema.Properties))
	for name, raw := range tool.InputSchema.Properties {
		arg := ArgumentSummary{Name: name, Required: required[name]}
		if prop, ok := raw.(map[string]any); ok {
			arg.Type, _ = prop["type"].(string)
			arg.Description, _ = prop["description"].(string)
		}
		args = append(args, arg)
	}
	sort.Slice(args, func(i, j int) bool {
		if args[i].Required != args[j].Required {
			return args[i].Required
		}
		return args[i].Name < args[j].Name
	})

	readOnly := tool.Annotations.ReadOnlyHint != nil && *tool.Annotations.ReadOnlyHint
	return Summary{
		Name:        tool.Name,
		Description: tool.Description,
		ReadOnly:    readOnly,
		Arguments:   args,
	}
}
