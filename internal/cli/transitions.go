// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-jira-kit/internal/jira"
)

func newTransitionIssueCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "transition-issue",
		Short: "List or apply issue status transitions from JSON on stdin",
		Long: `Transition a Jira issue to a new status.

Actions:
  get_transitions  List the transitions currently available for an issue.
  transition       Apply a transition (transition_id), with an optional
                   comment added alongside.`,
		Example: `  echo '{"action": "get_transitions", "issue_key": "PROJ-123"}' | jira transition-issue
  echo '{"action": "transition", "issue_key": "PROJ-123", "transition_id": "31"}' | jira transition-issue`,
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
			if action != "get_transitions" && action != "transition" {
				return invalidAction(action, "get_transitions", "transition")
			}
			if err := requireParams(params, "issue_key"); err != nil {
				return err
			}

			client, err := newClient(*configDir)
			if err != nil {
				return err
			}

			var result any
			if action == "get_transitions" {
				result, err = getTransitions(cmd.Context(), client, stringParam(params, "issue_key"))
			} else {
				result, err = applyTransition(cmd.Context(), client, params)
			}
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

// getTransitions reduces the API response to id/name pairs for cleaner
// output.
func getTransitions(ctx context.Context, client *jira.Client, issueKey string) (any, error) {
	result, err := client.Get(ctx, "issue/"+issueKey+"/transitions", nil)
	if err != nil {
		return nil, err
	}

	transitions := []any{}
	if payload, ok := result.(map[string]any); ok {
		if list, ok := payload["transitions"].([]any); ok {
			for _, item := range list {
				if t, ok := item.(map[string]any); ok {
					transitions = append(transitions, map[string]any{
						"id":   t["id"],
						"name": t["name"],
					})
				}
			}
		}
	}

	return map[string]any{"transitions": transitions}, nil
}

func applyTransition(ctx context.Context, client *jira.Client, params map[string]any) (any, error) {
	if err := requireParams(params, "transition_id"); err != nil {
		return nil, err
	}

	body := map[string]any{
		"transition": map[string]any{"id": params["transition_id"]},
	}

	if comment := stringParam(params, "comment"); comment != "" {
		body["update"] = map[string]any{
			"comment": []any{
				map[string]any{"add": map[string]any{"body": jira.TextToADF(comment)}},
			},
		}
	}

	result, err := client.Post(ctx, "issue/"+stringParam(params, "issue_key")+"/transitions", body)
	if err != nil {
		return nil, err
	}

	// The endpoint answers 204 on success.
	if result == nil {
		result = map[string]any{}
	}
	return result, nil
}
