package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/karolswdev/jira-mcp/internal/jira"
	"github.com/karolswdev/jira-mcp/internal/observability"
)

// Outcomes recorded per tool call.
const (
	OutcomeOK         = "ok"
	OutcomeDescriptor = "descriptor"
	OutcomeError      = "error"
)

// render turns a Jira result into tool output. Payloads and descriptors are
// both returned as JSON text; only transport failures become tool errors.
func render(tool string, res *jira.Result, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		observability.RecordToolCall(tool, OutcomeError)
		log.Error().Err(err).Str("tool", tool).Msg("Tool call failed")
		return mcp.NewToolResultErrorFromErr("Jira request failed", err), nil
	}

	data, mErr := jira.Marshal(res)
	if mErr != nil {
		observability.RecordToolCall(tool, OutcomeError)
		return mcp.NewToolResultErrorFromErr("Failed to encode Jira response", mErr), nil
	}

	outcome := OutcomeOK
	if !res.OK() {
		outcome = OutcomeDescriptor
	}
	observability.RecordToolCall(tool, outcome)
	log.Debug().Str("tool", tool).Str("outcome", outcome).Msg("Tool call completed")
	return mcp.NewToolResultText(string(data)), nil
}

// argumentError reports a bad argument without calling Jira.
func argumentError(tool string, err error) (*mcp.CallToolResult, error) {
	observability.RecordToolCall(tool, OutcomeError)
	log.Warn().Err(err).Str("tool", tool).Msg("Rejected tool arguments")
	return mcp.NewToolResultError(err.Error()), nil
}
