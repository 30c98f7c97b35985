package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/karolswdev/jira-mcp/internal/jira"
)

// toolset binds tool handlers to a Jira API.
type toolset struct {
	api JiraAPI
}

// Definitions returns every Jira tool with its handler, in a stable order.
// api is only used when a handler runs, so a nil api is enough to list the tools.
func Definitions(api JiraAPI) []server.ServerTool {
	t := &toolset{api: api}
	return []server.ServerTool{
		// Instance metadata
		{Tool: readOnly("get_projects", "List all Jira projects visible to the user."), Handler: t.noArgs(JiraAPI.ListProjects)},
		{Tool: readOnly("get_priorities", "List the issue priorities of the Jira instance. Use the returned objects with change_issue_priority."), Handler: t.noArgs(JiraAPI.ListPriorities)},
		{Tool: readOnly("get_labels", "List the labels used in the Jira instance.",
			mcp.WithNumber("max_results", mcp.Description("Maximum number of labels to return."), mcp.DefaultNumber(jira.DefaultLabelsMaxResults)),
		), Handler: t.getLabels},
		{Tool: readOnly("get_issue_statuses", "List every issue status defined in the Jira instance."), Handler: t.noArgs(JiraAPI.ListIssueStatuses)},
		{Tool: readOnly("get_current_user", "Get the user the server is authenticated as."), Handler: t.noArgs(JiraAPI.CurrentUser)},
		{Tool: readOnly("get_issue_fields", "List the system and custom fields an issue can contain."), Handler: t.noArgs(JiraAPI.ListIssueFields)},

		// Projects
		{Tool: readOnly("get_project_users", "List the users that can be assigned to issues of the given projects.",
			mcp.WithString("project_keys", mcp.Required(), mcp.Description("Project key, or several keys separated by commas.")),
		), Handler: t.getProjectUsers},
		{Tool: readOnly("get_project_issues", "Suggest issues of a project through the issue picker.",
			projectKeyArg(),
		), Handler: t.getProjectIssues},
		{Tool: readOnly("get_project_issue_types", "List the issue types that can be created in a project.",
			projectKeyArg(),
			mcp.WithNumber("max_results", mcp.Description("Maximum number of issue types to return."), mcp.DefaultNumber(jira.DefaultIssueTypesMaxResults)),
		), Handler: t.getProjectIssueTypes},

		// Issues
		{Tool: readOnly("get_issue_creation_metadata", "List the fields needed to create an issue of a given type in a project.",
			projectKeyArg(),
			mcp.WithString("issue_type_id", mcp.Required(), mcp.Description("ID of the issue type, as returned by get_project_issue_types.")),
			mcp.WithNumber("max_results", mcp.Description("Maximum number of fields to return."), mcp.DefaultNumber(jira.DefaultMetadataMaxResults)),
		), Handler: t.getIssueCreationMetadata},
		{Tool: mcp.NewTool("create_issue",
			mcp.WithDescription("Create a new issue."),
			projectKeyArg(),
			mcp.WithString("title", mcp.Required(), mcp.Description("Summary of the issue.")),
			mcp.WithString("description", mcp.Required(), mcp.Description("Plain text description of the issue.")),
			mcp.WithString("issuetype", mcp.Required(), mcp.Description("Name of the issue type, e.g. Task or Bug.")),
			mcp.WithString("duedate", mcp.Description("Due date in YYYY-MM-DD format.")),
			mcp.WithString("assignee_id", mcp.Description("Account ID of the assignee.")),
			mcp.WithArray("labels", mcp.WithStringItems(), mcp.Description("Labels to put on the issue.")),
			mcp.WithString("priority_id", mcp.Description("ID of the priority.")),
			mcp.WithString("reporter_id", mcp.Description("Account ID of the reporter.")),
		), Handler: t.createIssue},
		{Tool: readOnly("get_issue", "Get an issue by key.",
			issueKeyArg(),
			mcp.WithObject("params", mcp.Description("Optional query parameters such as fields, expand or properties.")),
		), Handler: t.getIssue},
		{Tool: mcp.NewTool("edit_issue",
			mcp.WithDescription("Update one field of an issue. With an action the update is [{action: value}], otherwise value is sent as is."),
			issueKeyArg(),
			mcp.WithString("value_key", mcp.Required(), mcp.Description("Field to update, e.g. summary or labels.")),
			anyValueArg("value_to_update", "New value or list of operations for the field."),
			mcp.WithString("action", mcp.Description("Update action such as set, add or remove.")),
		), Handler: t.editIssue},
		{Tool: issueTool("change_issue_title", "Change the summary of an issue.",
			mcp.WithString("new_title", mcp.Required(), mcp.Description("New summary.")),
		), Handler: t.issueString("new_title", JiraAPI.ChangeIssueTitle)},
		{Tool: issueTool("change_issue_description", "Replace the description of an issue.",
			mcp.WithString("new_description", mcp.Required(), mcp.Description("New plain text description.")),
		), Handler: t.issueString("new_description", JiraAPI.ChangeIssueDescription)},
		{Tool: issueTool("change_issue_reporter", "Change the reporter of an issue.",
			mcp.WithObject("user", mcp.Required(), mcp.Description("User object as returned by get_project_users.")),
		), Handler: t.issueObject("user", JiraAPI.ChangeIssueReporter)},
		{Tool: issueTool("change_issue_priority", "Change the priority of an issue. The priority must be one of the objects returned by get_priorities.",
			mcp.WithObject("new_priority", mcp.Required(), mcp.Description("Priority object as returned by get_priorities.")),
		), Handler: t.issueObject("new_priority", JiraAPI.ChangeIssuePriority)},
		{Tool: issueTool("change_issue_environment", "Replace the environment field of an issue.",
			mcp.WithString("new_environment", mcp.Required(), mcp.Description("New plain text environment.")),
		), Handler: t.issueString("new_environment", JiraAPI.ChangeIssueEnvironment)},
		{Tool: issueTool("add_issue_labels", "Add labels to an issue, keeping the existing ones.",
			mcp.WithArray("new_labels", mcp.Required(), mcp.WithStringItems(), mcp.Description("Labels to add.")),
		), Handler: t.issueLabels("new_labels", JiraAPI.AddIssueLabels)},
		{Tool: issueTool("change_issue_labels", "Replace all labels of an issue.",
			mcp.WithArray("new_labels", mcp.Required(), mcp.WithStringItems(), mcp.Description("The complete new set of labels.")),
		), Handler: t.issueLabels("new_labels", JiraAPI.ChangeIssueLabels)},
		{Tool: issueTool("remove_issue_labels", "Remove labels from an issue.",
			mcp.WithArray("labels", mcp.Required(), mcp.WithStringItems(), mcp.Description("Labels to remove.")),
		), Handler: t.issueLabels("labels", JiraAPI.RemoveIssueLabels)},
		{Tool: issueTool("update_issue_duedate", "Change the due date of an issue.",
			mcp.WithString("new_duedate", mcp.Required(), mcp.Description("New due date in YYYY-MM-DD format.")),
		), Handler: t.issueString("new_duedate", JiraAPI.UpdateIssueDueDate)},
		{Tool: issueTool("change_issue_parent", "Move an issue under a parent issue.",
			mcp.WithString("parent", mcp.Required(), mcp.Description("Key of the parent issue.")),
		), Handler: t.issueString("parent", JiraAPI.ChangeIssueParent)},

		// Links
		{Tool: readOnly("get_issue_link_types", "List the issue link types, e.g. Blocks or Relates."), Handler: t.noArgs(JiraAPI.ListIssueLinkTypes)},
		{Tool: mcp.NewTool("link_issues",
			mcp.WithDescription("Link two issues. The inward comment is added with the link; the outward comment is posted to the outward issue afterwards."),
			mcp.WithString("inward_issue", mcp.Required(), mcp.Description("Key of the inward issue.")),
			mcp.WithString("outward_issue", mcp.Required(), mcp.Description("Key of the outward issue.")),
			mcp.WithString("link_type", mcp.Required(), mcp.Description("Name of the link type, as returned by get_issue_link_types.")),
			mcp.WithString("inward_comment", mcp.Description("Comment added to the inward issue together with the link.")),
			mcp.WithString("outward_comment", mcp.Description("Comment posted to the outward issue once the link exists.")),
		), Handler: t.linkIssues},
		{Tool: destructive("delete_issues_link", "Delete an issue link.",
			mcp.WithString("link_id", mcp.Required(), mcp.Description("ID of the issue link.")),
		), Handler: t.deleteIssueLink},

		// Issue lifecycle
		{Tool: destructive("delete_issue", "Delete an issue.", issueKeyArg()), Handler: t.deleteIssue},
		{Tool: issueTool("assign_issue", "Assign an issue to a user.",
			mcp.WithObject("user", mcp.Required(), mcp.Description("User object as returned by get_project_users.")),
		), Handler: t.issueObject("user", JiraAPI.AssignIssue)},
		{Tool: issueTool("comment_issue", "Add a plain text comment to an issue.",
			mcp.WithString("comment", mcp.Required(), mcp.Description("Text of the comment.")),
		), Handler: t.issueString("comment", JiraAPI.CommentIssue)},
	}
}

func readOnly(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	opts = append([]mcp.ToolOption{mcp.WithDescription(description), mcp.WithReadOnlyHintAnnotation(true)}, opts...)
	return mcp.NewTool(name, opts...)
}

func destructive(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	opts = append([]mcp.ToolOption{mcp.WithDescription(description), mcp.WithDestructiveHintAnnotation(true)}, opts...)
	return mcp.NewTool(name, opts...)
}

// issueTool declares a tool whose first argument is issue_key.
func issueTool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	opts = append([]mcp.ToolOption{mcp.WithDescription(description), issueKeyArg()}, opts...)
	return mcp.NewTool(name, opts...)
}

func issueKeyArg() mcp.ToolOption {
	return mcp.WithString("issue_key", mcp.Required(), mcp.Description("Key of the issue, e.g. PROJ-123."))
}

// anyValueArg declares a required argument that accepts any JSON value.
func anyValueArg(name, description string) mcp.ToolOption {
	return func(t *mcp.Tool) {
		if t.InputSchema.Properties == nil {
			t.InputSchema.Properties = map[string]any{}
		}
		t.InputSchema.Properties[name] = map[string]any{"description": description}
		t.InputSchema.Required = append(t.InputSchema.Required, name)
	}
}

func projectKeyArg() mcp.ToolOption {
	return mcp.WithString("project_key", mcp.Required(), mcp.Description("Key of the project, e.g. PROJ."))
}

// --- Handlers ---

func (t *toolset) noArgs(call func(JiraAPI, context.Context) (*jira.Result, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := call(t.api, ctx)
		return render(req.Params.Name, res, err)
	}
}

func (t *toolset) issueString(arg string, call func(JiraAPI, context.Context, string, string) (*jira.Result, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := requireString(req, "issue_key")
		if err != nil {
			return argumentError(req.Params.Name, err)
		}
		value, err := requireString(req, arg)
		if err != nil {
			return argumentError(req.Params.Name, err)
		}
		res, err := call(t.api, ctx, issueKey, value)
		return render(req.Params.Name, res, err)
	}
}

func (t *toolset) issueObject(arg string, call func(JiraAPI, context.Context, string, map[string]any) (*jira.Result, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := requireString(req, "issue_key")
		if err != nil {
			return argumentError(req.Params.Name, err)
		}
		value, err := requireObject(req, arg)
		if err != nil {
			return argumentError(req.Params.Name, err)
		}
		res, err := call(t.api, ctx, issueKey, value)
		return render(req.Params.Name, res, err)
	}
}

func (t *toolset) issueLabels(arg string, call func(JiraAPI, context.Context, string, []string) (*jira.Result, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := requireString(req, "issue_key")
		if err != nil {
			return argumentError(req.Params.Name, err)
		}
		labels, err := stringList(req, arg, true)
		if err != nil {
			return argumentError(req.Params.Name, err)
		}
		res, err := call(t.api, ctx, issueKey, labels)
		return render(req.Params.Name, res, err)
	}
}

func (t *toolset) getLabels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := t.api.ListLabels(ctx, req.GetInt("max_results", jira.DefaultLabelsMaxResults))
	return render(req.Params.Name, res, err)
}

func (t *toolset) getProjectUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys, err := requireString(req, "project_keys")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	res, err := t.api.ProjectUsers(ctx, keys)
	return render(req.Params.Name, res, err)
}

func (t *toolset) getProjectIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectKey, err := requireString(req, "project_key")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	res, err := t.api.ProjectIssues(ctx, projectKey)
	return render(req.Params.Name, res, err)
}

func (t *toolset) getProjectIssueTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectKey, err := requireString(req, "project_key")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	res, err := t.api.ProjectIssueTypes(ctx, projectKey, req.GetInt("max_results", jira.DefaultIssueTypesMaxResults))
	return render(req.Params.Name, res, err)
}

func (t *toolset) getIssueCreationMetadata(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectKey, err := requireString(req, "project_key")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	issueTypeID, err := requireString(req, "issue_type_id")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	res, err := t.api.IssueCreationMetadata(ctx, projectKey, issueTypeID, req.GetInt("max_results", jira.DefaultMetadataMaxResults))
	return render(req.Params.Name, res, err)
}

func (t *toolset) createIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in jira.IssueInput
	var err error
	required := []struct {
		arg string
		dst *string
	}{
		{"project_key", &in.ProjectKey},
		{"title", &in.Summary},
		{"description", &in.Description},
		{"issuetype", &in.IssueType},
	}
	for _, r := range required {
		if *r.dst, err = requireString(req, r.arg); err != nil {
			return argumentError(req.Params.Name, err)
		}
	}
	optional := []struct {
		arg string
		dst *string
	}{
		{"duedate", &in.DueDate},
		{"assignee_id", &in.AssigneeID},
		{"priority_id", &in.PriorityID},
		{"reporter_id", &in.ReporterID},
	}
	for _, o := range optional {
		if *o.dst, err = optionalString(req, o.arg); err != nil {
			return argumentError(req.Params.Name, err)
		}
	}
	if in.Labels, err = stringList(req, "labels", false); err != nil {
		return argumentError(req.Params.Name, err)
	}

	res, err := t.api.CreateIssue(ctx, in)
	return render(req.Params.Name, res, err)
}

func (t *toolset) getIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := requireString(req, "issue_key")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	params, err := queryParams(req, "params")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	res, err := t.api.GetIssue(ctx, issueKey, params)
	return render(req.Params.Name, res, err)
}

func (t *toolset) editIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := requireString(req, "issue_key")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	field, err := requireString(req, "value_key")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	value, err := requireValue(req, "value_to_update")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	action, err := optionalString(req, "action")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	res, err := t.api.EditIssue(ctx, issueKey, field, value, action)
	return render(req.Params.Name, res, err)
}

func (t *toolset) linkIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in jira.LinkInput
	var err error
	if in.InwardIssue, err = requireString(req, "inward_issue"); err != nil {
		return argumentError(req.Params.Name, err)
	}
	if in.OutwardIssue, err = requireString(req, "outward_issue"); err != nil {
		return argumentError(req.Params.Name, err)
	}
	if in.LinkType, err = requireString(req, "link_type"); err != nil {
		return argumentError(req.Params.Name, err)
	}
	if in.InwardComment, err = optionalString(req, "inward_comment"); err != nil {
		return argumentError(req.Params.Name, err)
	}
	if in.OutwardComment, err = optionalString(req, "outward_comment"); err != nil {
		return argumentError(req.Params.Name, err)
	}

	res, err := t.api.LinkIssues(ctx, in)
	return render(req.Params.Name, res, err)
}

func (t *toolset) deleteIssueLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	linkID, err := requireString(req, "link_id")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	res, err := t.api.DeleteIssueLink(ctx, linkID)
	return render(req.Params.Name, res, err)
}

func (t *toolset) deleteIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := requireString(req, "issue_key")
	if err != nil {
		return argumentError(req.Params.Name, err)
	}
	res, err := t.api.DeleteIssue(ctx, issueKey)
	return render(req.Params.Name, res, err)
}
