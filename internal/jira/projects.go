package jira

import (
	"context"
	"net/url"
	"strconv"
)

// Default page sizes used when a caller passes a non-positive maxResults.
const (
	DefaultLabelsMaxResults     = 50
	DefaultIssueTypesMaxResults = 50
	DefaultMetadataMaxResults   = 100
)

// ListProjects returns all projects visible to the authenticated user.
func (c *Client) ListProjects(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, Request{Method: MethodGet, Endpoint: "project"})
}

// ListPriorities returns the priorities defined in the Jira instance.
func (c *Client) ListPriorities(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, Request{Method: MethodGet, Endpoint: "priority"})
}

// ListLabels returns up to maxResults labels.
func (c *Client) ListLabels(ctx context.Context, maxResults int) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodGet,
		Endpoint: "label",
		Params:   maxResultsParam(maxResults, DefaultLabelsMaxResults),
	})
}

// ListIssueStatuses returns every issue status defined in the Jira instance.
func (c *Client) ListIssueStatuses(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, Request{Method: MethodGet, Endpoint: "status"})
}

// CurrentUser returns the user the API token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, Request{Method: MethodGet, Endpoint: "myself"})
}

// ListIssueFields returns the system and custom fields an issue can carry.
func (c *Client) ListIssueFields(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, Request{Method: MethodGet, Endpoint: "field"})
}

// ProjectUsers returns the users assignable to issues in the given projects.
// projectKeys is passed through as-is, so several keys may be comma separated.
func (c *Client) ProjectUsers(ctx context.Context, projectKeys string) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodGet,
		Endpoint: "user/assignable/multiProjectSearch",
		Params:   map[string]string{"projectKeys": projectKeys},
	})
}

// ProjectIssues returns the issue picker suggestions for a project.
func (c *Client) ProjectIssues(ctx context.Context, projectKey string) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodGet,
		Endpoint: "issue/picker",
		Params:   map[string]string{"currentProjectId": projectKey},
	})
}

// ProjectIssueTypes returns the issue types that can be created in a project.
func (c *Client) ProjectIssueTypes(ctx context.Context, projectKey string, maxResults int) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodGet,
		Endpoint: "issue/createmeta/" + url.PathEscape(projectKey) + "/issuetypes",
		Params:   maxResultsParam(maxResults, DefaultIssueTypesMaxResults),
	})
}

func maxResultsParam(maxResults, fallback int) map[string]string {
	if maxResults <= 0 {
		maxResults = fallback
	}
	return map[string]string{"maxResults": strconv.Itoa(maxResults)}
}
