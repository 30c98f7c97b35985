package jira

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Edit actions understood by the Jira update operations.
const (
	ActionSet    = "set"
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Texts of the descriptor returned when a priority is not offered by the instance.
const (
	unsupportedPriorityText   = "Not supported priority. Use get_priorities() to get the allowed priorities."
	unsupportedPriorityReason = "Priority was checked against get_priorities() and it was not part of them."
)

// EditIssue updates a single field of an issue. With an action the body is
// {"update": {field: [{action: value}]}}, without one it is {"update": {field: value}}.
func (c *Client) EditIssue(ctx context.Context, issueKey, field string, value any, action string) (*Result, error) {
	var update any = value
	if action != "" {
		update = []map[string]any{{action: value}}
	}

	return c.Execute(ctx, Request{
		Method:   MethodPut,
		Endpoint: issueEndpoint(issueKey),
		Headers:  jsonHeaders(),
		Body:     map[string]any{"update": map[string]any{field: update}},
	})
}

// ChangeIssueTitle sets the summary of an issue.
func (c *Client) ChangeIssueTitle(ctx context.Context, issueKey, title string) (*Result, error) {
	return c.EditIssue(ctx, issueKey, "summary", title, ActionSet)
}

// ChangeIssueDescription replaces the description of an issue with plain text.
func (c *Client) ChangeIssueDescription(ctx context.Context, issueKey, description string) (*Result, error) {
	return c.EditIssue(ctx, issueKey, "description", NewDocument(description), ActionSet)
}

// ChangeIssueReporter sets the reporter. user should be an object returned by ProjectUsers.
func (c *Client) ChangeIssueReporter(ctx context.Context, issueKey string, user map[string]any) (*Result, error) {
	return c.EditIssue(ctx, issueKey, "reporter", user, ActionSet)
}

// ChangeIssuePriority sets the priority of an issue. The priority must equal one
// of the objects returned by ListPriorities; otherwise a 406 descriptor is
// returned and the issue is left untouched. If the priorities cannot be listed,
// that result is returned instead.
func (c *Client) ChangeIssuePriority(ctx context.Context, issueKey string, priority map[string]any) (*Result, error) {
	priorities, err := c.ListPriorities(ctx)
	if err != nil {
		return nil, err
	}
	if priorities.Descriptor != nil {
		return priorities, nil
	}

	found, err := containsValue(priorities.Data, priority)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestMarshal, err)
	}
	if !found {
		log.Warn().Str("issue", issueKey).Interface("priority", priority).Msg("Rejected priority not offered by Jira")
		return descriptorResult(false, 406, unsupportedPriorityText, unsupportedPriorityReason), nil
	}

	return c.EditIssue(ctx, issueKey, "priority", priority, ActionSet)
}

// ChangeIssueEnvironment replaces the environment field of an issue with plain text.
func (c *Client) ChangeIssueEnvironment(ctx context.Context, issueKey, environment string) (*Result, error) {
	return c.EditIssue(ctx, issueKey, "environment", NewDocument(environment), ActionSet)
}

// AddIssueLabels adds labels, keeping the ones already on the issue.
func (c *Client) AddIssueLabels(ctx context.Context, issueKey string, labels []string) (*Result, error) {
	return c.EditIssue(ctx, issueKey, "labels", labelOps(ActionAdd, labels), "")
}

// ChangeIssueLabels replaces all labels of an issue.
func (c *Client) ChangeIssueLabels(ctx context.Context, issueKey string, labels []string) (*Result, error) {
	if labels == nil {
		labels = []string{}
	}
	return c.EditIssue(ctx, issueKey, "labels", labels, ActionSet)
}

// RemoveIssueLabels removes labels from an issue.
func (c *Client) RemoveIssueLabels(ctx context.Context, issueKey string, labels []string) (*Result, error) {
	return c.EditIssue(ctx, issueKey, "labels", labelOps(ActionRemove, labels), "")
}

// UpdateIssueDueDate sets the due date (YYYY-MM-DD) of an issue.
func (c *Client) UpdateIssueDueDate(ctx context.Context, issueKey, dueDate string) (*Result, error) {
	return c.EditIssue(ctx, issueKey, "duedate", dueDate, ActionSet)
}

// ChangeIssueParent moves an issue under the parent with the given key.
// The parent has to be set through "fields"; Jira accepts but ignores it in "update".
func (c *Client) ChangeIssueParent(ctx context.Context, issueKey, parentKey string) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodPut,
		Endpoint: issueEndpoint(issueKey),
		Headers:  jsonHeaders(),
		Body:     map[string]any{"fields": map[string]any{"parent": keyRef{Key: parentKey}}},
	})
}

// labelOps builds one {action: label} operation per label.
func labelOps(action string, labels []string) []map[string]string {
	ops := make([]map[string]string, 0, len(labels))
	for _, label := range labels {
		ops = append(ops, map[string]string{action: label})
	}
	return ops
}
