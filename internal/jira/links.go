package jira

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"
)

// ListIssueLinkTypes returns the link types (Blocks, Relates, ...) of the instance.
func (c *Client) ListIssueLinkTypes(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, Request{Method: MethodGet, Endpoint: "issueLinkType"})
}

// LinkIssues links two issues. An inward comment travels with the link request;
// an outward comment is posted to the outward issue after the link succeeded.
// When that comment fails its result is returned, otherwise the link result is.
func (c *Client) LinkIssues(ctx context.Context, in LinkInput) (*Result, error) {
	body := linkIssuesRequest{
		Type:         nameRef{Name: in.LinkType},
		InwardIssue:  keyRef{Key: in.InwardIssue},
		OutwardIssue: keyRef{Key: in.OutwardIssue},
	}
	if in.InwardComment != "" {
		body.Comment = &linkComment{Body: NewDocument(in.InwardComment)}
	}

	linked, err := c.Execute(ctx, Request{
		Method:   MethodPost,
		Endpoint: "issueLink",
		Headers:  jsonHeaders(),
		Body:     body,
	})
	if err != nil || !linked.OK() || in.OutwardComment == "" {
		return linked, err
	}

	commented, err := c.CommentIssue(ctx, in.OutwardIssue, in.OutwardComment)
	if err != nil {
		return nil, err
	}
	if !commented.OK() {
		log.Warn().Str("issue", in.OutwardIssue).Msg("Issues were linked but the outward comment failed")
		return commented, nil
	}
	return linked, nil
}

// DeleteIssueLink removes an issue link by id.
func (c *Client) DeleteIssueLink(ctx context.Context, linkID string) (*Result, error) {
	return c.Execute(ctx, Request{Method: MethodDelete, Endpoint: "issueLink/" + url.PathEscape(linkID)})
}
