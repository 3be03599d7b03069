// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-jira-kit/internal/jira"
)

func newManageIssueLinksCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "manage-issue-links",
		Short: "Manage links between issues from JSON on stdin",
		Long: `Manage Jira issue links.

Actions:
  get_types  List available link types.
  create     Link two issues (link_type, inward_issue_key, outward_issue_key).
  get        Get a link by link_id.
  delete     Delete a link by link_id.`,
		Example: `  echo '{"action": "get_types"}' | jira manage-issue-links
  echo '{"action": "create", "link_type": "Blocks", "inward_issue_key": "PROJ-1", "outward_issue_key": "PROJ-2"}' | jira manage-issue-links`,
		Args: cobra.NoArgs,
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
			case "get_types":
				result, err = client.Get(cmd.Context(), "issueLinkType", nil)
			case "create":
				result, err = createLink(cmd.Context(), client, params)
			case "get":
				result, err = getLink(cmd.Context(), client, params)
			case "delete":
				result, err = deleteLink(cmd.Context(), client, params)
			default:
				return invalidAction(action, "create", "delete", "get", "get_types")
			}
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func createLink(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "link_type", "inward_issue_key", "outward_issue_key"); err != nil {
		return nil, err
	}

	body := map[string]any{
		"type":         map[string]any{"name": params["link_type"]},
		"inwardIssue":  map[string]any{"key": params["inward_issue_key"]},
		"outwardIssue": map[string]any{"key": params["outward_issue_key"]},
	}

	result, err := client.Post(ctx, "issueLink", body)
	if err != nil {
		return nil, err
	}

	// The endpoint answers 201 with no content.
	if result == nil {
		result = map[string]any{"success": true}
	}
	return result, nil
}

func getLink(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "link_id"); err != nil {
		return nil, err
	}

	return client.Get(ctx, "issueLink/"+stringParam(params, "link_id"), nil)
}

func deleteLink(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "link_id"); err != nil {
		return nil, err
	}
	linkID := stringParam(params, "link_id")

	if _, err := client.Delete(ctx, "issueLink/"+linkID, nil); err != nil {
		return nil, err
	}

	return successMessage("Link %s deleted successfully", linkID), nil
}
