// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-jira-kit/internal/jira"
)

func newCreateIssueCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create-issue",
		Short: "Create an issue from JSON on stdin",
		Long: `Create a Jira issue from JSON input on stdin.

Required: project_key, summary, issue_type.
Optional: description (converted to ADF), assignee_id, labels (array or
comma-separated string), priority, parent_key (for sub-tasks).`,
		Example: `  echo '{"project_key": "PROJ", "summary": "Test", "issue_type": "Task"}' | jira create-issue`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := readParams(cmd.InOrStdin())
			if err != nil {
				return err
			}

			fields, err := createIssueFields(params)
			if err != nil {
				return err
			}

			client, err := newClient(*configDir)
			if err != nil {
				return err
			}

			result, err := client.Post(cmd.Context(), "issue", map[string]any{"fields": fields})
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

// createIssueFields maps snake_case input parameters onto the camelCase
// fields structure of the issue-create endpoint.
func createIssueFields(params map[string]any) (map[string]any, error) {
	if err := requireParams(params, "project_key", "summary", "issue_type"); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"project":   map[string]any{"key": params["project_key"]},
		"summary":   params["summary"],
		"issuetype": map[string]any{"name": params["issue_type"]},
	}

	if desc := stringParam(params, "description"); desc != "" {
		fields["description"] = jira.TextToADF(desc)
	}
	if id := stringParam(params, "assignee_id"); id != "" {
		fields["assignee"] = map[string]any{"accountId": id}
	}
	if truthy(params["labels"]) {
		fields["labels"] = stringList(params["labels"])
	}
	if p := stringParam(params, "priority"); p != "" {
		fields["priority"] = map[string]any{"name": p}
	}
	if pk := stringParam(params, "parent_key"); pk != "" {
		fields["parent"] = map[string]any{"key": pk}
	}

	return fields, nil
}

func newGetIssueCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get-issue",
		Short: "Retrieve an issue from JSON on stdin",
		Long: `Retrieve a Jira issue from JSON input on stdin.

Required: issue_key.
Optional: fields, expand (passed through as query parameters).`,
		Example: `  echo '{"issue_key": "PROJ-123"}' | jira get-issue`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := readParams(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := requireParams(params, "issue_key"); err != nil {
				return err
			}

			query := map[string]string{}
			if v := stringParam(params, "fields"); v != "" {
				query["fields"] = v
			}
			if v := stringParam(params, "expand"); v != "" {
				query["expand"] = v
			}

			client, err := newClient(*configDir)
			if err != nil {
				return err
			}

			result, err := client.Get(cmd.Context(), "issue/"+stringParam(params, "issue_key"), query)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func newUpdateIssueCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "update-issue",
		Short: "Update, assign, or delete an issue from JSON on stdin",
		Long: `Update, assign, or delete a Jira issue from JSON input on stdin.

Actions:
  update  Update issue fields (summary, description, priority, labels,
          assignee_id). Explicit null/empty description or assignee_id
          clears the field.
  assign  Assign (account_id) or unassign (no account_id) an issue.
  delete  Delete an issue (delete_subtasks=true to remove its sub-tasks
          as well).`,
		Example: `  echo '{"action": "update", "issue_key": "PROJ-123", "summary": "New title"}' | jira update-issue`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := readParams(cmd.InOrStdin())
			if err != nil {
				return err
			}

			action := stringParam(params, "action")
			if action == "" {
				return errors.New("missing required parameter: action")
			}

			client, err := newClient(*configDir)
			if err != nil {
				return err
			}

			var result any
			switch action {
			case "update":
				result, err = updateIssue(cmd.Context(), client, params)
			case "assign":
				result, err = assignIssue(cmd.Context(), client, params)
			case "delete":
				result, err = deleteIssue(cmd.Context(), client, params)
			default:
				return invalidAction(action, "assign", "delete", "update")
			}
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

// updateIssue builds the fields payload from the parameters that are
// present. Presence matters, not truthiness: an explicit empty
// description or assignee_id clears the field on the issue.
func updateIssue(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "issue_key"); err != nil {
		return nil, err
	}
	issueKey := stringParam(params, "issue_key")

	fields := map[string]any{}

	if v, ok := params["summary"]; ok {
		fields["summary"] = v
	}
	if v, ok := params["description"]; ok {
		if desc := asString(v); desc != "" {
			fields["description"] = jira.TextToADF(desc)
		} else {
			fields["description"] = nil
		}
	}
	if v, ok := params["priority"]; ok {
		fields["priority"] = map[string]any{"name": v}
	}
	if v, ok := params["labels"]; ok {
		if truthy(v) {
			fields["labels"] = stringList(v)
		} else {
			fields["labels"] = []string{}
		}
	}
	if v, ok := params["assignee_id"]; ok {
		if id := asString(v); id != "" {
			fields["assignee"] = map[string]any{"accountId": id}
		} else {
			fields["assignee"] = nil
		}
	}

	if len(fields) == 0 {
		return nil, errors.New("no fields to update provided")
	}

	if _, err := client.Put(ctx, "issue/"+issueKey, map[string]any{"fields": fields}); err != nil {
		return nil, err
	}

	return successMessage("Issue %s updated successfully", issueKey), nil
}

func assignIssue(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "issue_key"); err != nil {
		return nil, err
	}
	issueKey := stringParam(params, "issue_key")

	// A null accountId unassigns the issue.
	accountID := params["account_id"]
	if _, err := client.Put(ctx, "issue/"+issueKey+"/assignee", map[string]any{"accountId": accountID}); err != nil {
		return nil, err
	}

	if asString(accountID) != "" {
		return successMessage("Issue %s assigned successfully", issueKey), nil
	}
	return successMessage("Issue %s unassigned successfully", issueKey), nil
}

func deleteIssue(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "issue_key"); err != nil {
		return nil, err
	}
	issueKey := stringParam(params, "issue_key")

	query := map[string]string{}
	if truthy(params["delete_subtasks"]) {
		query["deleteSubtasks"] = "true"
	}

	if _, err := client.Delete(ctx, "issue/"+issueKey, query); err != nil {
		return nil, err
	}

	return successMessage("Issue %s deleted successfully", issueKey), nil
}

func newSearchIssuesCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search-issues",
		Short: "Search issues with JQL from JSON on stdin",
		Long: `Search for Jira issues using JQL from JSON input on stdin.

Required: jql.
Optional: fields, expand (array or comma-separated string),
max_results (default 50), start_at (default 0).`,
		Example: `  echo '{"jql": "project = PROJ AND status = Open"}' | jira search-issues`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := readParams(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := requireParams(params, "jql"); err != nil {
				return err
			}

			body := map[string]any{"jql": params["jql"]}

			if truthy(params["fields"]) {
				body["fields"] = stringList(params["fields"])
			}

			maxResults, err := intParam(params, "max_results", 50)
			if err != nil {
				return err
			}
			body["maxResults"] = maxResults

			startAt, err := intParam(params, "start_at", 0)
			if err != nil {
				return err
			}
			body["startAt"] = startAt

			if truthy(params["expand"]) {
				body["expand"] = stringList(params["expand"])
			}

			client, err := newClient(*configDir)
			if err != nil {
				return err
			}

			result, err := client.Post(cmd.Context(), "search", body)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}
