package jira

import (
	"context"
	"net/url"
)

// IssueCreationMetadata returns the fields required to create an issue of the
// given type in a project.
func (c *Client) IssueCreationMetadata(ctx context.Context, projectKey, issueTypeID string, maxResults int) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodGet,
		Endpoint: "issue/createmeta/" + url.PathEscape(projectKey) + "/issuetypes/" + url.PathEscape(issueTypeID),
		Params:   maxResultsParam(maxResults, DefaultMetadataMaxResults),
	})
}

// CreateIssue creates an issue. The description is sent as an ADF document and
// optional fields are only included when set.
func (c *Client) CreateIssue(ctx context.Context, in IssueInput) (*Result, error) {
	fields := createIssueFields{
		Project:     keyRef{Key: in.ProjectKey},
		Summary:     in.Summary,
		IssueType:   nameRef{Name: in.IssueType},
		Description: NewDocument(in.Description),
		DueDate:     in.DueDate,
	}
	if in.AssigneeID != "" {
		fields.Assignee = &idRef{ID: in.AssigneeID}
	}
	if len(in.Labels) > 0 {
		fields.Labels = in.Labels
	}
	if in.PriorityID != "" {
		fields.Priority = &idRef{ID: in.PriorityID}
	}
	if in.ReporterID != "" {
		fields.Reporter = &idRef{ID: in.ReporterID}
	}

	return c.Execute(ctx, Request{
		Method:   MethodPost,
		Endpoint: "issue",
		Headers:  jsonHeaders(),
		Body:     createIssueRequest{Fields: fields},
	})
}

// GetIssue returns an issue. params (fields, expand, properties, ...) are
// passed through as query parameters.
func (c *Client) GetIssue(ctx context.Context, issueKey string, params map[string]string) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodGet,
		Endpoint: issueEndpoint(issueKey),
		Params:   params,
	})
}

// DeleteIssue deletes an issue.
func (c *Client) DeleteIssue(ctx context.Context, issueKey string) (*Result, error) {
	return c.Execute(ctx, Request{Method: MethodDelete, Endpoint: issueEndpoint(issueKey)})
}

// AssignIssue assigns an issue. user is sent unchanged as the request body,
// typically an object returned by ProjectUsers.
func (c *Client) AssignIssue(ctx context.Context, issueKey string, user map[string]any) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodPut,
		Endpoint: issueEndpoint(issueKey) + "/assignee",
		Headers:  jsonHeaders(),
		Body:     user,
	})
}

// CommentIssue adds a plain text comment to an issue.
func (c *Client) CommentIssue(ctx context.Context, issueKey, comment string) (*Result, error) {
	return c.Execute(ctx, Request{
		Method:   MethodPost,
		Endpoint: issueEndpoint(issueKey) + "/comment",
		Headers:  jsonHeaders(),
		Body:     commentRequest{Body: NewDocument(comment)},
	})
}

func issueEndpoint(issueKey string) string {
	return "issue/" + url.PathEscape(issueKey)
}
