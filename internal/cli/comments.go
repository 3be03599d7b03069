// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-jira-kit/internal/jira"
)

func newManageCommentsCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "manage-comments",
		Short: "List, add, update, or delete issue comments from JSON on stdin",
		Long: `Manage comments on Jira issues.

Actions:
  list    List comments (optional max_results, start_at, order_by).
  add     Add a comment (body, converted to ADF).
  update  Update a comment (comment_id, body).
  delete  Delete a comment (comment_id).

All actions require issue_key.`,
		Example: `  echo '{"action": "list", "issue_key": "PROJ-123"}' | jira manage-comments`,
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
			case "list":
				result, err = listComments(cmd.Context(), client, params)
			case "add":
				result, err = addComment(cmd.Context(), client, params)
			case "update":
				result, err = updateComment(cmd.Context(), client, params)
			case "delete":
				result, err = deleteComment(cmd.Context(), client, params)
			default:
				return invalidAction(action, "add", "delete", "list", "update")
			}
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func listComments(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "issue_key"); err != nil {
		return nil, err
	}

	query := map[string]string{}
	if v, ok := params["max_results"]; ok && v != nil {
		query["maxResults"] = asString(v)
	}
	if v, ok := params["start_at"]; ok && v != nil {
		query["startAt"] = asString(v)
	}
	if v := stringParam(params, "order_by"); v != "" {
		query["orderBy"] = v
	}

	return client.Get(ctx, "issue/"+stringParam(params, "issue_key")+"/comment", query)
}

func addComment(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "issue_key", "body"); err != nil {
		return nil, err
	}

	body := map[string]any{"body": jira.TextToADF(stringParam(params, "body"))}
	return client.Post(ctx, "issue/"+stringParam(params, "issue_key")+"/comment", body)
}

func updateComment(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "issue_key", "comment_id", "body"); err != nil {
		return nil, err
	}

	body := map[string]any{"body": jira.TextToADF(stringParam(params, "body"))}
	path := "issue/" + stringParam(params, "issue_key") + "/comment/" + stringParam(params, "comment_id")
	return client.Put(ctx, path, body)
}

func deleteComment(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "issue_key", "comment_id"); err != nil {
		return nil, err
	}

	issueKey := stringParam(params, "issue_key")
	commentID := stringParam(params, "comment_id")

	if _, err := client.Delete(ctx, "issue/"+issueKey+"/comment/"+commentID, nil); err != nil {
		return nil, err
	}

	return successMessage("Comment %s deleted from %s", commentID, issueKey), nil
}
