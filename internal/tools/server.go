package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// ServerName is the name the server reports to MCP clients.
const ServerName = "Jira API - MCP Server"

// Instructions is sent to MCP clients when they connect.
const Instructions = `This server provides tools to interact with the Jira Cloud REST API.
Use them to read Jira projects, issues, users, priorities, labels and statuses, and to create, update, link, assign, comment on and delete issues.
Results are the JSON returned by Jira. A failed call returns an object with successful, status_code, text and reason.
Before change_issue_priority, change_issue_reporter or assign_issue, fetch the allowed values with get_priorities or get_project_users.`

// NewServer creates an MCP server with every tool in defs registered.
func NewServer(version string, defs []server.ServerTool) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(Instructions),
		server.WithRecovery(),
	)
	s.AddTools(defs...)
	log.Debug().Int("tools", len(defs)).Msg("Registered Jira tools")
	return s
}

// Find returns the tool registered under name.
func Find(defs []server.ServerTool, name string) (server.ServerTool, bool) {
	for _, def := range defs {
		if def.Tool.Name == name {
			return def, true
		}
	}
	return server.ServerTool{}, false
}

// Call invokes the named tool in-process with the given arguments.
func Call(ctx context.Context, defs []server.ServerTool, name string, args map[string]any) (*mcp.CallToolResult, error) {
	def, ok := Find(defs, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return def.Handler(ctx, req)
}

// ResultText returns the concatenated text content of a tool result.
func ResultText(res *mcp.CallToolResult) string {
	var text string
	for _, c := range res.Content {
		if tc, ok := mcp.AsTextContent(c); ok {
			text += tc.Text
		}
	}
	return text
}
