// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-jira-kit/internal/config"
	"github.com/MKhiriev/go-jira-kit/internal/jira"
)

func newValidateAuthCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-auth",
		Short: "Check configuration and test authentication against the server",
		Long: `Validate the Jira authentication configuration.

Checks that a .claude/env file exists with a complete credential scheme,
then performs a lightweight authenticated call to verify the credentials
against the server.

Exit codes:
  0  configuration valid and authentication works
  1  configuration problem (missing file or variables)
  2  credentials rejected by the server`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateAuth(cmd, *configDir)
		},
	}
}

func runValidateAuth(cmd *cobra.Command, configDir string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Checking configuration...")
	fmt.Fprintln(out)

	envPath, err := config.Locate(configDir)
	if err != nil {
		return configFailure(out, err)
	}
	vars, err := config.ParseEnvFile(envPath)
	if err != nil {
		return configFailure(out, err)
	}
	creds, err := config.ResolveAuth(vars)
	if err != nil {
		return configFailure(out, err)
	}

	fmt.Fprintln(out, "Configuration OK:")
	fmt.Fprintf(out, "  %s: %s\n", config.KeyBaseURL, creds.BaseURL)
	switch creds.Auth.Scheme {
	case config.AuthPAT:
		fmt.Fprintln(out, "  Authentication: PAT (Bearer token)")
		fmt.Fprintf(out, "  %s: %s\n", config.KeyPAT, maskToken(vars[config.KeyPAT]))
	case config.AuthBasic:
		fmt.Fprintln(out, "  Authentication: Basic (email + API token)")
		fmt.Fprintf(out, "  %s: %s\n", config.KeyUserEmail, vars[config.KeyUserEmail])
		fmt.Fprintf(out, "  %s: %s\n", config.KeyAPIToken, maskToken(vars[config.KeyAPIToken]))
	}
	fmt.Fprintf(out, "  Config file: %s\n", envPath)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Testing authentication...")
	fmt.Fprintln(out)

	client, err := newClient(configDir)
	if err != nil {
		return configFailure(out, err)
	}

	result, err := client.Get(cmd.Context(), "myself", nil)
	if err != nil {
		apiErr, ok := jira.AsAPIError(err)
		if !ok {
			// The server was never reached; not an authentication verdict.
			return fmt.Errorf("authentication probe failed: %w", err)
		}

		fmt.Fprintln(out, "Authentication ERROR:")
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			fmt.Fprintf(out, "  Invalid or expired credentials\n  HTTP 401: %s\n", apiErr.Body)
		case http.StatusForbidden:
			fmt.Fprintf(out, "  Credentials lack required permissions\n  HTTP 403: %s\n", apiErr.Body)
		default:
			fmt.Fprintf(out, "  API request failed\n  HTTP %d: %s\n", apiErr.StatusCode, apiErr.Body)
		}
		return &exitCodeError{code: ExitAuthError}
	}

	user, _ := result.(map[string]any)
	active := false
	if v, ok := user["active"].(bool); ok {
		active = v
	}

	fmt.Fprintln(out, "Authentication OK:")
	fmt.Fprintf(out, "  User: %s (%s)\n", userField(user, "displayName"), userField(user, "emailAddress"))
	fmt.Fprintf(out, "  Account ID: %s\n", userField(user, "accountId"))
	fmt.Fprintf(out, "  Active: %v\n", active)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "All checks passed.")

	return nil
}

// configFailure prints the configuration report footer and maps the error
// to the configuration exit code.
func configFailure(out io.Writer, err error) error {
	fmt.Fprintln(out, "Configuration ERROR:")
	fmt.Fprintf(out, "  %v\n", err)
	return &exitCodeError{code: ExitError}
}

func userField(user map[string]any, key string) string {
	if v := asString(user[key]); v != "" {
		return v
	}
	return "Unknown"
}

// maskToken hides a credential for display: first 8 and last 4 characters
// when it is long enough to stay unguessable, otherwise fully masked.
func maskToken(token string) string {
	if len(token) > 16 {
		return token[:8] + "..." + token[len(token)-4:]
	}
	return "****"
}
