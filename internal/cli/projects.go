// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-jira-kit/internal/jira"
)

func newManageProjectCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "manage-project",
		Short: "List, get, create, update, or delete projects from JSON on stdin",
		Long: `Manage Jira projects.

Actions:
  list    List projects (optional max_results, start_at, expand).
  get     Get a project by project_key (optional expand).
  create  Create a project (key, name, project_type_key,
          project_template_key, lead_account_id; optional description).
  update  Update a project (project_key plus name, description, or
          lead_account_id).
  delete  Delete a project (project_key; enable_undo=false to skip the
          recycle bin).`,
		Example: `  echo '{"action": "list"}' | jira manage-project`,
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
				result, err = listProjects(cmd.Context(), client, params)
			case "get":
				result, err = getProject(cmd.Context(), client, params)
			case "create":
				result, err = createProject(cmd.Context(), client, params)
			case "update":
				result, err = updateProject(cmd.Context(), client, params)
			case "delete":
				result, err = deleteProject(cmd.Context(), client, params)
			default:
				return invalidAction(action, "create", "delete", "get", "list", "update")
			}
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func listProjects(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	query := map[string]string{}
	if v, ok := params["max_results"]; ok && v != nil {
		query["maxResults"] = asString(v)
	}
	if v, ok := params["start_at"]; ok && v != nil {
		query["startAt"] = asString(v)
	}
	if v, ok := params["expand"]; ok && v != nil {
		query["expand"] = asString(v)
	}

	return client.Get(ctx, "project/search", query)
}

func getProject(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "project_key"); err != nil {
		return nil, err
	}

	query := map[string]string{}
	if v, ok := params["expand"]; ok && v != nil {
		query["expand"] = asString(v)
	}

	return client.Get(ctx, "project/"+stringParam(params, "project_key"), query)
}

func createProject(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	err := requireParams(params, "key", "name", "project_type_key", "project_template_key", "lead_account_id")
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"key":                params["key"],
		"name":               params["name"],
		"projectTypeKey":     params["project_type_key"],
		"projectTemplateKey": params["project_template_key"],
		"leadAccountId":      params["lead_account_id"],
	}
	if v, ok := params["description"]; ok {
		body["description"] = v
	}

	result, err := client.Post(ctx, "project", body)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"success": true,
		"message": "Project " + stringParam(params, "key") + " created successfully",
		"project": result,
	}, nil
}

func updateProject(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "project_key"); err != nil {
		return nil, err
	}
	projectKey := stringParam(params, "project_key")

	body := map[string]any{}
	if v, ok := params["name"]; ok {
		body["name"] = v
	}
	if v, ok := params["description"]; ok {
		body["description"] = v
	}
	if v, ok := params["lead_account_id"]; ok {
		body["leadAccountId"] = v
	}

	if len(body) == 0 {
		return nil, errors.New("no fields to update provided")
	}

	if _, err := client.Put(ctx, "project/"+projectKey, body); err != nil {
		return nil, err
	}

	return successMessage("Project %s updated successfully", projectKey), nil
}

func deleteProject(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "project_key"); err != nil {
		return nil, err
	}
	projectKey := stringParam(params, "project_key")

	query := map[string]string{}
	// enable_undo defaults to true; only pass it when explicitly disabled.
	if v, ok := params["enable_undo"]; ok {
		if b, isBool := v.(bool); isBool && !b {
			query["enableUndo"] = "false"
		}
	}

	if _, err := client.Delete(ctx, "project/"+projectKey, query); err != nil {
		return nil, err
	}

	return successMessage("Project %s deleted successfully", projectKey), nil
}
