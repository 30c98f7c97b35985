package jira

// IssueInput holds the fields used to create an issue. Optional fields are
// left out of the request body when empty. DueDate is YYYY-MM-DD.
type IssueInput struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueType   string
	DueDate     string
	AssigneeID  string
	Labels      []string
	PriorityID  string
	ReporterID  string
}

// LinkInput describes a link between two issues. InwardComment is attached to
// the link request itself; OutwardComment is posted to the outward issue once
// the link exists.
type LinkInput struct {
	InwardIssue    string
	OutwardIssue   string
	LinkType       string
	InwardComment  string
	OutwardComment string
}

type keyRef struct {
	Key string `json:"key"`
}

type idRef struct {
	ID string `json:"id"`
}

type nameRef struct {
	Name string `json:"name"`
}

// createIssueFields is the "fields" object of a create issue request. Field
// order follows the order Jira documents them in.
type createIssueFields struct {
	Project     keyRef   `json:"project"`
	Summary     string   `json:"summary"`
	IssueType   nameRef  `json:"issuetype"`
	Description Document `json:"description"`
	DueDate     string   `json:"duedate,omitempty"`
	Assignee    *idRef   `json:"assignee,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Priority    *idRef   `json:"priority,omitempty"`
	Reporter    *idRef   `json:"reporter,omitempty"`
}

type createIssueRequest struct {
	Fields createIssueFields `json:"fields"`
}

type commentRequest struct {
	Body Document `json:"body"`
}

type linkComment struct {
	Body Document `json:"body"`
}

type linkIssuesRequest struct {
	Type         nameRef      `json:"type"`
	InwardIssue  keyRef       `json:"inwardIssue"`
	OutwardIssue keyRef       `json:"outwardIssue"`
	Comment      *linkComment `json:"comment,omitempty"`
}
