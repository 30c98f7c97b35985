package tools

// This file holds a mock JiraAPI shared by the tools, cmd and integration
// tests, so it lives outside a _test.go file.

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/karolswdev/jira-mcp/internal/jira"
)

// MockJiraAPI is a testify mock implementing JiraAPI.
type MockJiraAPI struct {
	mock.Mock
}

var _ JiraAPI = (*MockJiraAPI)(nil)

// result converts the mocked return values, allowing a nil *jira.Result.
func (m *MockJiraAPI) result(args mock.Arguments) (*jira.Result, error) {
	res, _ := args.Get(0).(*jira.Result)
	return res, args.Error(1)
}

func (m *MockJiraAPI) ListProjects(ctx context.Context) (*jira.Result, error) {
	return m.result(m.Called(ctx))
}

func (m *MockJiraAPI) ListPriorities(ctx context.Context) (*jira.Result, error) {
	return m.result(m.Called(ctx))
}

func (m *MockJiraAPI) ListLabels(ctx context.Context, maxResults int) (*jira.Result, error) {
	return m.result(m.Called(ctx, maxResults))
}

func (m *MockJiraAPI) ListIssueStatuses(ctx context.Context) (*jira.Result, error) {
	return m.result(m.Called(ctx))
}

func (m *MockJiraAPI) CurrentUser(ctx context.Context) (*jira.Result, error) {
	return m.result(m.Called(ctx))
}

func (m *MockJiraAPI) ListIssueFields(ctx context.Context) (*jira.Result, error) {
	return m.result(m.Called(ctx))
}

func (m *MockJiraAPI) ProjectUsers(ctx context.Context, projectKeys string) (*jira.Result, error) {
	return m.result(m.Called(ctx, projectKeys))
}

func (m *MockJiraAPI) ProjectIssues(ctx context.Context, projectKey string) (*jira.Result, error) {
	return m.result(m.Called(ctx, projectKey))
}

func (m *MockJiraAPI) ProjectIssueTypes(ctx context.Context, projectKey string, maxResults int) (*jira.Result, error) {
	return m.result(m.Called(ctx, projectKey, maxResults))
}

func (m *MockJiraAPI) IssueCreationMetadata(ctx context.Context, projectKey, issueTypeID string, maxResults int) (*jira.Result, error) {
	return m.result(m.Called(ctx, projectKey, issueTypeID, maxResults))
}

func (m *MockJiraAPI) CreateIssue(ctx context.Context, in jira.IssueInput) (*jira.Result, error) {
	return m.result(m.Called(ctx, in))
}

func (m *MockJiraAPI) GetIssue(ctx context.Context, issueKey string, params map[string]string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, params))
}

func (m *MockJiraAPI) DeleteIssue(ctx context.Context, issueKey string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey))
}

func (m *MockJiraAPI) AssignIssue(ctx context.Context, issueKey string, user map[string]any) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, user))
}

func (m *MockJiraAPI) CommentIssue(ctx context.Context, issueKey, comment string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, comment))
}

func (m *MockJiraAPI) EditIssue(ctx context.Context, issueKey, field string, value any, action string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, field, value, action))
}

func (m *MockJiraAPI) ChangeIssueTitle(ctx context.Context, issueKey, title string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, title))
}

func (m *MockJiraAPI) ChangeIssueDescription(ctx context.Context, issueKey, description string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, description))
}

func (m *MockJiraAPI) ChangeIssueReporter(ctx context.Context, issueKey string, user map[string]any) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, user))
}

func (m *MockJiraAPI) ChangeIssuePriority(ctx context.Context, issueKey string, priority map[string]any) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, priority))
}

func (m *MockJiraAPI) ChangeIssueEnvironment(ctx context.Context, issueKey, environment string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, environment))
}

func (m *MockJiraAPI) AddIssueLabels(ctx context.Context, issueKey string, labels []string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, labels))
}

func (m *MockJiraAPI) ChangeIssueLabels(ctx context.Context, issueKey string, labels []string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, labels))
}

func (m *MockJiraAPI) RemoveIssueLabels(ctx context.Context, issueKey string, labels []string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, labels))
}

func (m *MockJiraAPI) UpdateIssueDueDate(ctx context.Context, issueKey, dueDate string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, dueDate))
}

func (m *MockJiraAPI) ChangeIssueParent(ctx context.Context, issueKey, parentKey string) (*jira.Result, error) {
	return m.result(m.Called(ctx, issueKey, parentKey))
}

func (m *MockJiraAPI) ListIssueLinkTypes(ctx context.Context) (*jira.Result, error) {
	return m.result(m.Called(ctx))
}

func (m *MockJiraAPI) LinkIssues(ctx context.Context, in jira.LinkInput) (*jira.Result, error) {
	return m.result(m.Called(ctx, in))
}

func (m *MockJiraAPI) DeleteIssueLink(ctx context.Context, linkID string) (*jira.Result, error) {
	return m.result(m.Called(ctx, linkID))
}
