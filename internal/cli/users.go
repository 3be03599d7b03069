// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-jira-kit/internal/jira"
)

func newFindUsersCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "find-users",
		Short: "Look up users from JSON on stdin",
		Long: `Find Jira users.

Actions:
  get         Retrieve a user by account_id.
  search      Search users by query string (optional pagination).
  assignable  Find users assignable to a project_key or issue_key.`,
		Example: `  echo '{"action": "search", "query": "john"}' | jira find-users`,
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
			case "get":
				result, err = getUser(cmd.Context(), client, params)
			case "search":
				result, err = searchUsers(cmd.Context(), client, params)
			case "assignable":
				result, err = assignableUsers(cmd.Context(), client, params)
			default:
				return invalidAction(action, "assignable", "get", "search")
			}
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func getUser(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "account_id"); err != nil {
		return nil, err
	}

	return client.Get(ctx, "user", map[string]string{"accountId": stringParam(params, "account_id")})
}

func searchUsers(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "query"); err != nil {
		return nil, err
	}

	query := map[string]string{"query": stringParam(params, "query")}
	if v, ok := params["max_results"]; ok && v != nil {
		query["maxResults"] = asString(v)
	}
	if v, ok := params["start_at"]; ok && v != nil {
		query["startAt"] = asString(v)
	}

	return client.Get(ctx, "user/search", query)
}

func assignableUsers(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	projectKey := stringParam(params, "project_key")
	issueKey := stringParam(params, "issue_key")
	if projectKey == "" && issueKey == "" {
		return nil, errors.New("at least one of project_key or issue_key is required")
	}

	query := map[string]string{}
	if projectKey != "" {
		query["project"] = projectKey
	}
	if issueKey != "" {
		query["issueKey"] = issueKey
	}
	if v := stringParam(params, "query"); v != "" {
		query["query"] = v
	}
	if v, ok := params["max_results"]; ok && v != nil {
		query["maxResults"] = asString(v)
	}

	return client.Get(ctx, "user/assignable/search", query)
}
