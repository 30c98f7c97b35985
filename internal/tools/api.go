// Package tools exposes the Jira client as MCP tools: one tool per Jira
// capability, with argument decoding and result rendering.
package tools

import (
	"context"

	"github.com/karolswdev/jira-mcp/internal/jira"
)

// JiraAPI is the set of Jira operations the tools call. *jira.Client implements it.
type JiraAPI interface {
	ListProjects(ctx context.Context) (*jira.Result, error)
	ListPriorities(ctx context.Context) (*jira.Result, error)
	ListLabels(ctx context.Context, maxResults int) (*jira.Result, error)
	ListIssueStatuses(ctx context.Context) (*jira.Result, error)
	CurrentUser(ctx context.Context) (*jira.Result, error)
	ListIssueFields(ctx context.Context) (*jira.Result, error)

	ProjectUsers(ctx context.Context, projectKeys string) (*jira.Result, error)
	ProjectIssues(ctx context.Context, projectKey string) (*jira.Result, error)
	ProjectIssueTypes(ctx context.Context, projectKey string, maxResults int) (*jira.Result, error)

	IssueCreationMetadata(ctx context.Context, projectKey, issueTypeID string, maxResults int) (*jira.Result, error)
	CreateIssue(ctx context.Context, in jira.IssueInput) (*jira.Result, error)
	GetIssue(ctx context.Context, issueKey string, params map[string]string) (*jira.Result, error)
	DeleteIssue(ctx context.Context, issueKey string) (*jira.Result, error)
	AssignIssue(ctx context.Context, issueKey string, user map[string]any) (*jira.Result, error)
	CommentIssue(ctx context.Context, issueKey, comment string) (*jira.Result, error)

	EditIssue(ctx context.Context, issueKey, field string, value any, action string) (*jira.Result, error)
	ChangeIssueTitle(ctx context.Context, issueKey, title string) (*jira.Result, error)
	ChangeIssueDescription(ctx context.Context, issueKey, description string) (*jira.Result, error)
	ChangeIssueReporter(ctx context.Context, issueKey string, user map[string]any) (*jira.Result, error)
	ChangeIssuePriority(ctx context.Context, issueKey string, priority map[string]any) (*jira.Result, error)
	ChangeIssueEnvironment(ctx context.Context, issueKey, environment string) (*jira.Result, error)
	AddIssueLabels(ctx context.Context, issueKey string, labels []string) (*jira.Result, error)
	ChangeIssueLabels(ctx context.Context, issueKey string, labels []string) (*jira.Result, error)
	RemoveIssueLabels(ctx context.Context, issueKey string, labels []string) (*jira.Result, error)
	UpdateIssueDueDate(ctx context.Context, issueKey, dueDate string) (*jira.Result, error)
	ChangeIssueParent(ctx context.Context, issueKey, parentKey string) (*jira.Result, error)

	ListIssueLinkTypes(ctx context.Context) (*jira.Result, error)
	LinkIssues(ctx context.Context, in jira.LinkInput) (*jira.Result, error)
	DeleteIssueLink(ctx context.Context, linkID string) (*jira.Result, error)
}

var _ JiraAPI = (*jira.Client)(nil)
